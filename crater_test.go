/*
 * crater_test.go, part of lammps-util-go.
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

import "testing"

// TestCandidatesSameSnapshot: comparing a snapshot against itself finds no
// candidates, since every atom matches at least itself within any d >= 0.
func TestCandidatesSameSnapshot(Te *testing.T) {
	snap := testSnapshot(Te, 0, [][4]float64{
		{1, 0, 0, 0},
		{2, 3, 3, 3},
		{3, 7, 7, 7},
	})
	for _, d := range []float64{0, 0.5, 10} {
		rows, err := Candidates(snap, snap, d)
		if err != nil {
			Te.Fatal(err)
		}
		if len(rows) != 0 {
			Te.Errorf("d=%v: want no candidates, got %v", d, rows)
		}
	}
}

func TestCandidatesNegativeDistance(Te *testing.T) {
	snap := testSnapshot(Te, 0, [][4]float64{{1, 0, 0, 0}})
	if _, err := Candidates(snap, snap, -0.1); err == nil {
		Te.Error("expected an error for a negative distance")
	}
}

func TestCandidatesEmptyComparison(Te *testing.T) {
	ref := testSnapshot(Te, 0, [][4]float64{{1, 0, 0, 0}, {2, 1, 1, 1}})
	comp := testSnapshot(Te, 1, nil)
	rows, err := Candidates(ref, comp, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rows) != 2 {
		Te.Errorf("against an empty snapshot every atom is a candidate, got %v", rows)
	}
}

// TestCraterRegion removes a tight 3-atom group and one stray atom from the
// comparison snapshot; the crater region must be the group, not the stray.
func TestCraterRegion(Te *testing.T) {
	ref := testSnapshot(Te, 0, [][4]float64{
		{1, 1.0, 1.0, 1.0}, //the vanished group
		{2, 1.8, 1.0, 1.0},
		{3, 1.4, 1.7, 1.0},
		{4, 9.0, 9.0, 9.0}, //vanished stray
		{5, 5.0, 5.0, 5.0}, //survivors
		{6, 5.8, 5.0, 5.0},
	})
	comp, err := Subset(ref, []int{4, 5})
	if err != nil {
		Te.Fatal(err)
	}
	rows, err := Candidates(ref, comp, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rows) != 4 {
		Te.Fatalf("want candidates [0 1 2 3], got %v", rows)
	}
	crater, err := CraterRegion(ref, comp, 0.5, 1.2)
	if err != nil {
		Te.Fatal(err)
	}
	if crater.Len() != 3 {
		Te.Fatalf("want the 3-atom group, got %d atoms", crater.Len())
	}
	ids := crater.Property("id")
	for i, want := range []float64{1, 2, 3} {
		if ids[i] != want {
			Te.Errorf("crater id[%d]: want %v, got %v", i, want, ids[i])
		}
	}
	if !crater.HasProperty(ClusterKey) {
		Te.Error("crater snapshot must carry the cluster column")
	}
}

// TestCraterRegionNoCandidates: identical snapshots mean no crater; the
// result is an empty snapshot, not an error.
func TestCraterRegionNoCandidates(Te *testing.T) {
	snap := testSnapshot(Te, 0, [][4]float64{{1, 0, 0, 0}, {2, 2, 2, 2}})
	crater, err := CraterRegion(snap, snap, 1, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if crater.Len() != 0 {
		Te.Errorf("want an empty crater, got %d atoms", crater.Len())
	}
	if !crater.HasProperty(ClusterKey) {
		Te.Error("even an empty crater snapshot carries the cluster column")
	}
}
