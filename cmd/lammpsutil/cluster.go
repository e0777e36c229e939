package main

import (
	"github.com/spf13/cobra"

	lammps "github.com/PolykekBros/lammps-util-go"
)

var (
	clusterSteps  string
	clusterCutoff float64
)

var clusterCmd = &cobra.Command{
	Use:   "cluster <in> <out>",
	Short: "Label spatial clusters in each snapshot of a dump",
	Long: `Cluster partitions the atoms of every selected snapshot into connected
groups under the given distance cutoff and writes a dump extended with a
"cluster" column holding the group labels.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkNonNegative("cutoff", clusterCutoff); err != nil {
			return err
		}
		steps, err := parseSteps(clusterSteps)
		if err != nil {
			return err
		}
		dump, err := lammps.ReadFile(args[0], steps)
		if err != nil {
			return err
		}
		snaps := dump.Snapshots()
		labeled := make([]*lammps.Snapshot, len(snaps))
		for i, snap := range snaps {
			labeled[i], err = lammps.Clusterize(snap, clusterCutoff)
			if err != nil {
				return err
			}
		}
		out, err := lammps.NewDumpFile(labeled...)
		if err != nil {
			return err
		}
		return out.SaveFile(args[1])
	},
}

func init() {
	clusterCmd.Flags().Float64VarP(&clusterCutoff, "cutoff", "c", 3.0, "clustering distance cutoff")
	clusterCmd.Flags().StringVar(&clusterSteps, "steps", "", "comma-separated timesteps to process (default all)")
	rootCmd.AddCommand(clusterCmd)
}
