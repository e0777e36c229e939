package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	lammps "github.com/PolykekBros/lammps-util-go"
	"github.com/PolykekBros/lammps-util-go/lmpplot"
	"github.com/PolykekBros/lammps-util-go/simstat"
)

var (
	rdfStep   float64
	rdfEnd    float64
	rdfCenter string
	rdfPlot   string
)

var rdfCmd = &cobra.Command{
	Use:   "rdf <dump>",
	Short: "Radial density around a point",
	Long: `Rdf bins the atoms of the first snapshot into spherical shells around the
given center (the box center when none is given) and prints the shell radius
and radial density, one shell per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := firstSnapshot(args[0])
		if err != nil {
			return err
		}
		center, err := parseCenter(rdfCenter, snap)
		if err != nil {
			return err
		}
		r, dens := simstat.RDF(snap.Coordinates(), center, rdfStep, rdfEnd)
		for i := range r {
			fmt.Printf("%.4f %.6f\n", r[i], dens[i])
		}
		if rdfPlot != "" {
			return lmpplot.RDF(r, dens, rdfPlot)
		}
		return nil
	},
}

// parseCenter reads an "x,y,z" flag value, defaulting to the box center.
func parseCenter(s string, snap *lammps.Snapshot) ([3]float64, error) {
	var center [3]float64
	if strings.TrimSpace(s) == "" {
		lo, hi := snap.Box().Lo(), snap.Box().Hi()
		for i := 0; i < 3; i++ {
			center[i] = (lo[i] + hi[i]) / 2
		}
		return center, nil
	}
	toks := strings.Split(s, ",")
	if len(toks) != 3 {
		return center, fmt.Errorf("bad center %q: want x,y,z", s)
	}
	for i, tok := range toks {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return center, fmt.Errorf("bad center %q: %v", s, err)
		}
		center[i] = v
	}
	return center, nil
}

func init() {
	rdfCmd.Flags().Float64Var(&rdfStep, "step", 0.1, "shell width")
	rdfCmd.Flags().Float64Var(&rdfEnd, "end", 10, "largest shell radius")
	rdfCmd.Flags().StringVar(&rdfCenter, "center", "", "center as x,y,z (default box center)")
	rdfCmd.Flags().StringVar(&rdfPlot, "plot", "", "also render the curve to this image file")
	rootCmd.AddCommand(rdfCmd)
}
