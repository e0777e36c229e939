package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	lammps "github.com/PolykekBros/lammps-util-go"
)

var (
	craterDist   float64
	craterCutoff float64
	craterOut    string
)

var craterCmd = &cobra.Command{
	Use:   "crater <initial> <final>",
	Short: "Extract the crater region between two dumps",
	Long: `Crater finds the atoms of the initial snapshot that have no atom of the
final snapshot within the neighbor distance, groups them under the clustering
cutoff and keeps the largest connected region. It prints one summary line:
candidate count, crater atom count and crater depth below the initial
surface. With --out the crater region is also written as a dump.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkNonNegative("distance", craterDist); err != nil {
			return err
		}
		if err := checkNonNegative("cutoff", craterCutoff); err != nil {
			return err
		}
		line, err := craterReport(args[0], args[1], craterDist, craterCutoff, craterOut)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	},
}

// craterReport runs the crater pipeline on one pair of dump files and returns
// the summary line. It is shared with the runs command.
func craterReport(initialPath, finalPath string, d, c float64, out string) (string, error) {
	initial, err := firstSnapshot(initialPath)
	if err != nil {
		return "", err
	}
	final, err := firstSnapshot(finalPath)
	if err != nil {
		return "", err
	}
	cands, err := lammps.Candidates(initial, final, d)
	if err != nil {
		return "", err
	}
	crater, err := lammps.CraterRegion(initial, final, d, c)
	if err != nil {
		return "", err
	}
	depth := 0.0
	if crater.Len() > 0 {
		minZ := math.Inf(1)
		for _, z := range crater.Property("z") {
			if z < minZ {
				minZ = z
			}
		}
		depth = initial.ZeroLevel() - minZ
	}
	if out != "" {
		dump, err := lammps.NewDumpFile(crater)
		if err != nil {
			return "", err
		}
		if err := dump.SaveFile(out); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%d %d %.4f", len(cands), crater.Len(), depth), nil
}

// firstSnapshot reads a dump and returns its earliest snapshot.
func firstSnapshot(path string) (*lammps.Snapshot, error) {
	dump, err := lammps.ReadFile(path, nil)
	if err != nil {
		return nil, err
	}
	snaps := dump.Snapshots()
	if len(snaps) == 0 {
		return nil, fmt.Errorf("%s: dump holds no snapshots", path)
	}
	return snaps[0], nil
}

func init() {
	craterCmd.Flags().Float64VarP(&craterDist, "distance", "d", 3.0, "neighbor distance for vanished-atom detection")
	craterCmd.Flags().Float64VarP(&craterCutoff, "cutoff", "c", 3.0, "clustering cutoff for the crater region")
	craterCmd.Flags().StringVarP(&craterOut, "out", "o", "", "write the crater region to this dump file")
	rootCmd.AddCommand(craterCmd)
}
