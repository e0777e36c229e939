package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolykekBros/lammps-util-go/lmpplot"
	"github.com/PolykekBros/lammps-util-go/simstat"
)

var (
	densityBins int
	densityPlot string
)

var densityCmd = &cobra.Command{
	Use:   "density <dump>",
	Short: "Atom count profile along z",
	Long: `Density slices the box of the first snapshot into horizontal slabs and
prints the slab center and the number of atoms in each slab. The surface
reference (highest z, the zero level) is printed first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := firstSnapshot(args[0])
		if err != nil {
			return err
		}
		lo, hi := snap.Box().Lo(), snap.Box().Hi()
		centers, counts := simstat.DensityProfile(snap.Property("z"), lo[2], hi[2], densityBins)
		fmt.Printf("zero level %.4f\n", snap.ZeroLevel())
		for i := range centers {
			fmt.Printf("%.4f %.0f\n", centers[i], counts[i])
		}
		if densityPlot != "" {
			return lmpplot.DensityProfile(centers, counts, densityPlot)
		}
		return nil
	},
}

func init() {
	densityCmd.Flags().IntVar(&densityBins, "bins", 100, "number of z slabs")
	densityCmd.Flags().StringVar(&densityPlot, "plot", "", "also render the profile to this image file")
	rootCmd.AddCommand(densityCmd)
}
