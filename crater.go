/*
 * crater.go, part of lammps-util-go.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package lammps

import (
	"fmt"

	"github.com/PolykekBros/lammps-util-go/xyz"
)

//Crater, rim and sputtered-matter detection all reduce to the same two-step
//question over a pair of snapshots: which atoms of the reference have no
//counterpart left in the comparison within some distance, and what is the
//largest spatially connected group among them.

// Candidates returns, in increasing order, the rows of ref whose neighborhood
// in comp is empty: no comp atom lies within d of them. With ref and comp the
// same snapshot every atom finds at least itself, so the result is empty. A
// negative d is an error.
func Candidates(ref, comp *Snapshot, d float64) ([]int, error) {
	if d < 0 {
		return nil, fmt.Errorf("Candidates: negative neighbor distance %v", d)
	}
	var rows []int
	if comp.Len() == 0 {
		//nothing to match against, every reference atom qualifies
		for i := 0; i < ref.Len(); i++ {
			rows = append(rows, i)
		}
		return rows, nil
	}
	tree := xyz.NewTree(comp.Coordinates())
	for _, p := range ref.Coordinates() {
		if len(tree.WithinRadius(p, d)) == 0 {
			rows = append(rows, p.Row)
		}
	}
	return rows, nil
}

// CraterRegion returns the largest connected group, under the grouping cutoff
// c, of the atoms of ref that have no comp atom within d. The result is a new
// snapshot carrying ref's schema plus the "cluster" column; with no candidate
// atoms at all it has zero rows, which is a normal outcome (no crater), not
// an error.
func CraterRegion(ref, comp *Snapshot, d, c float64) (*Snapshot, error) {
	rows, err := Candidates(ref, comp, d)
	if err != nil {
		return nil, err
	}
	cand, err := Subset(ref, rows)
	if err != nil {
		return nil, err
	}
	if cand.Len() == 0 {
		return ExtendSchema(cand, []string{ClusterKey})
	}
	clustered, err := Clusterize(cand, c)
	if err != nil {
		return nil, err
	}
	max, err := MaxCluster(clustered)
	if err != nil {
		return nil, err
	}
	keep := FilterRows(clustered, ClusterKey, func(v float64) bool { return v == max })
	return Subset(clustered, keep)
}
