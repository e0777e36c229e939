package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// runsParams are the knobs of a batch crater analysis over run_N directories.
// They can come from flags or from a YAML parameter file; flags win when both
// are given.
type runsParams struct {
	Runs     int     `yaml:"runs"`
	Workers  int     `yaml:"workers"`
	Distance float64 `yaml:"distance"`
	Cutoff   float64 `yaml:"cutoff"`
	Initial  string  `yaml:"initial"`
	Final    string  `yaml:"final"`
}

var (
	runsFlags  runsParams
	runsConfig string
)

var runsCmd = &cobra.Command{
	Use:   "runs <target>",
	Short: "Crater analysis over a batch of independent simulation runs",
	Long: `Runs applies the crater pipeline to <target>/run_1 ... <target>/run_N,
several runs in flight at once, and prints one summary line per run, sorted
by run index. Each run directory must hold the initial and final dump files.
Runs are fully independent: no snapshot or index is shared between workers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadRunsParams(cmd)
		if err != nil {
			return err
		}
		if err := checkNonNegative("distance", p.Distance); err != nil {
			return err
		}
		if err := checkNonNegative("cutoff", p.Cutoff); err != nil {
			return err
		}
		if p.Runs < 1 {
			return fmt.Errorf("--runs must be >= 1, got %d", p.Runs)
		}
		if p.Workers < 1 {
			p.Workers = 1
		}
		lines := make([]string, p.Runs)
		var g errgroup.Group
		g.SetLimit(p.Workers)
		for i := 0; i < p.Runs; i++ {
			i := i
			g.Go(func() error {
				dir := filepath.Join(args[0], fmt.Sprintf("run_%d", i+1))
				line, err := craterReport(
					filepath.Join(dir, p.Initial),
					filepath.Join(dir, p.Final),
					p.Distance, p.Cutoff, "")
				if err != nil {
					return fmt.Errorf("run_%d: %w", i+1, err)
				}
				lines[i] = line
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i, line := range lines {
			fmt.Printf("%d %s\n", i+1, line)
		}
		return nil
	},
}

// loadRunsParams merges the YAML parameter file (when given) with the flags;
// a flag set on the command line overrides the file.
func loadRunsParams(cmd *cobra.Command) (runsParams, error) {
	p := runsFlags
	if runsConfig == "" {
		return p, nil
	}
	raw, err := os.ReadFile(runsConfig)
	if err != nil {
		return p, err
	}
	var file runsParams
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return p, fmt.Errorf("%s: %v", runsConfig, err)
	}
	if !cmd.Flags().Changed("runs") && file.Runs != 0 {
		p.Runs = file.Runs
	}
	if !cmd.Flags().Changed("workers") && file.Workers != 0 {
		p.Workers = file.Workers
	}
	if !cmd.Flags().Changed("distance") && file.Distance != 0 {
		p.Distance = file.Distance
	}
	if !cmd.Flags().Changed("cutoff") && file.Cutoff != 0 {
		p.Cutoff = file.Cutoff
	}
	if !cmd.Flags().Changed("initial") && file.Initial != "" {
		p.Initial = file.Initial
	}
	if !cmd.Flags().Changed("final") && file.Final != "" {
		p.Final = file.Final
	}
	return p, nil
}

func init() {
	runsCmd.Flags().IntVarP(&runsFlags.Runs, "runs", "n", 100, "number of run_N directories")
	runsCmd.Flags().IntVar(&runsFlags.Workers, "workers", 10, "runs analyzed in parallel")
	runsCmd.Flags().Float64VarP(&runsFlags.Distance, "distance", "d", 3.0, "neighbor distance for vanished-atom detection")
	runsCmd.Flags().Float64VarP(&runsFlags.Cutoff, "cutoff", "c", 1.75, "clustering cutoff for the crater region")
	runsCmd.Flags().StringVar(&runsFlags.Initial, "initial", "dump.initial", "initial dump file name inside each run directory")
	runsCmd.Flags().StringVar(&runsFlags.Final, "final", "dump.final", "final dump file name inside each run directory")
	runsCmd.Flags().StringVar(&runsConfig, "config", "", "YAML parameter file")
	rootCmd.AddCommand(runsCmd)
}
