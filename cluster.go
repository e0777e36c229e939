/*
 * cluster.go, part of lammps-util-go.
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
	"sort"

	"github.com/PolykekBros/lammps-util-go/xyz"
)

// ClusterKey is the property column Clusterize adds to its result.
const ClusterKey = "cluster"

// Clusterize partitions the atoms of s into connected components under
// "distance <= cutoff" adjacency and returns a new snapshot extended with a
// "cluster" column holding, for every atom, its cluster's label. The label of
// a cluster is the "id" property value of the seed atom that discovered it,
// so s must carry an "id" column. Two atoms end up with the same label iff
// they are connected by a chain of within-cutoff steps; the partition is
// deterministic because seeds are taken in increasing row order and each
// component is fully drained before the next seed. A cutoff of 0 gives every
// atom its own cluster unless two atoms share exact coordinates. A negative
// cutoff is an error.
func Clusterize(s *Snapshot, cutoff float64) (*Snapshot, error) {
	if cutoff < 0 {
		return nil, fmt.Errorf("Clusterize: negative cutoff %v", cutoff)
	}
	out, err := ExtendSchema(s, []string{ClusterKey})
	if err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return out, nil
	}
	ids := out.Property("id")
	labels := out.Property(ClusterKey)
	for row, seed := range clusterSeeds(out.Coordinates(), cutoff) {
		labels[row] = ids[seed]
	}
	return out, nil
}

// clusterSeeds runs the flood fill and returns, for every row, the row index
// of the seed that discovered its component. The adjacency graph is never
// materialized: edges are answered lazily by radius queries against one k-d
// tree built over all the points. State is a visited flag per row plus an
// explicit stack, no recursion.
func clusterSeeds(coords xyz.Points, cutoff float64) []int {
	tree := xyz.NewTree(coords)
	visited := make([]bool, len(coords))
	seeds := make([]int, len(coords))
	stack := make([]int, 0, 64)
	for seed := range coords {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		seeds[seed] = seed
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range tree.WithinRadius(coords[r], cutoff) {
				if !visited[n.Row] {
					visited[n.Row] = true
					seeds[n.Row] = seed
					stack = append(stack, n.Row)
				}
			}
		}
	}
	return seeds
}

// ClusterCounts returns how many atoms carry each cluster label in a
// clusterized snapshot.
func ClusterCounts(s *Snapshot) map[float64]int {
	counts := make(map[float64]int)
	for _, label := range s.Property(ClusterKey) {
		counts[label]++
	}
	return counts
}

// MaxCluster returns the label of the cluster with the most atoms in a
// clusterized snapshot. Ties go to the smallest label; the reduction walks
// the labels in sorted order, never in map order, so the answer does not
// depend on map iteration. An empty snapshot is an error.
func MaxCluster(s *Snapshot) (float64, error) {
	counts := ClusterCounts(s)
	if len(counts) == 0 {
		return 0, fmt.Errorf("MaxCluster: snapshot has no atoms")
	}
	labels := make([]float64, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Float64s(labels)
	best := labels[0]
	for _, label := range labels[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best, nil
}
