package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lammpsutil",
	Short:        "Analysis tools for LAMMPS text dumps",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `lammpsutil reads LAMMPS dump files and runs the spatial analyses shared by
the sputtering studies: cluster detection, crater/rim extraction, radial
distribution and density profiles. Dumps ending in .gz or .zst are
(de)compressed transparently.`,
}

// Execute is called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseSteps turns a comma-separated timestep list into a slice. An empty
// string selects every timestep.
func parseSteps(s string) ([]uint64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var steps []uint64
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad timestep %q: %v", tok, err)
		}
		steps = append(steps, v)
	}
	return steps, nil
}

// checkNonNegative validates a distance or cutoff flag before it reaches the
// library, which expects them already checked.
func checkNonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("--%s must be >= 0, got %v", name, v)
	}
	return nil
}
