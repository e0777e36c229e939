package main

import (
	"github.com/spf13/cobra"

	lammps "github.com/PolykekBros/lammps-util-go"
)

var convertSteps string

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Re-write a dump, optionally selecting timesteps or changing compression",
	Long: `Convert reads a dump and writes it back out. The output compression follows
the output extension, so "convert dump.final dump.final.zst" compresses and
"convert dump.final.gz dump.final" decompresses.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(convertSteps)
		if err != nil {
			return err
		}
		dump, err := lammps.ReadFile(args[0], steps)
		if err != nil {
			return err
		}
		return dump.SaveFile(args[1])
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertSteps, "steps", "", "comma-separated timesteps to keep (default all)")
	rootCmd.AddCommand(convertCmd)
}
