package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lammps "github.com/PolykekBros/lammps-util-go"
)

var printSteps string

var printCmd = &cobra.Command{
	Use:   "print <dump>",
	Short: "Print the snapshots of a dump as plain tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(printSteps)
		if err != nil {
			return err
		}
		dump, err := lammps.ReadFile(args[0], steps)
		if err != nil {
			return err
		}
		for _, snap := range dump.Snapshots() {
			keys := snap.Keys()
			fmt.Printf("\ntimestep: %d\n", snap.Step())
			fmt.Printf("keys: %s\n", strings.Join(keys, " "))
			cols := make([][]float64, len(keys))
			for j, key := range keys {
				cols[j] = snap.Property(key)
			}
			for i := 0; i < snap.Len(); i++ {
				row := make([]string, len(cols))
				for j := range cols {
					row[j] = fmt.Sprintf("%v", cols[j][i])
				}
				fmt.Println(strings.Join(row, "\t"))
			}
		}
		return nil
	},
}

func init() {
	printCmd.Flags().StringVar(&printSteps, "steps", "", "comma-separated timesteps to print (default all)")
	rootCmd.AddCommand(printCmd)
}
