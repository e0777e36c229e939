/*
 * xyz.go, part of lammps-util-go.
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

//Package xyz provides the indexed 3D point type used by the analyses in the
//parent package, and a k-d tree over slices of such points for radius queries.
//A Point remembers the snapshot row it was built from, so query results can be
//mapped back to atoms. The tree is a static structure: build it once per point
//list and rebuild whenever the list changes. It is never written after
//construction, so a single tree may be queried from several goroutines.
package xyz

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Point is one atom position tagged with the row index it came from.
type Point struct {
	X, Y, Z float64
	Row     int
}

// New returns a Point at the given coordinates, remembering row.
func New(x, y, z float64, row int) Point {
	return Point{X: x, Y: y, Z: z, Row: row}
}

// Coords returns the coordinates as an array, in x, y, z order.
func (p Point) Coords() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Compare satisfies kdtree.Comparable.
func (p Point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(Point)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	default:
		return p.Z - q.Z
	}
}

// Dims satisfies kdtree.Comparable.
func (p Point) Dims() int { return 3 }

// Distance returns the squared Euclidean distance to c. All distance
// comparisons in this package are done in squared form, which is what
// the kd-tree expects and saves the square roots.
func (p Point) Distance(c kdtree.Comparable) float64 {
	q := c.(Point)
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

// WithinCutoff returns whether a and b lie within cutoff of each other.
func WithinCutoff(a, b Point, cutoff float64) bool {
	return a.Distance(b) <= cutoff*cutoff
}

// Points is a collection of points satisfying kdtree.Interface.
type Points []Point

func (p Points) Index(i int) kdtree.Comparable { return p[i] }

func (p Points) Len() int { return len(p) }

func (p Points) Pivot(d kdtree.Dim) int { return plane{Dim: d, Points: p}.Pivot() }

func (p Points) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is a wrapping type that allows Points to be pivoted on a dimension.
type plane struct {
	kdtree.Dim
	Points
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.Points[i].X < p.Points[j].X
	case 1:
		return p.Points[i].Y < p.Points[j].Y
	default:
		return p.Points[i].Z < p.Points[j].Z
	}
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.Points = p.Points[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
}

// Tree is a k-d tree over a fixed list of points, answering radius queries.
type Tree struct {
	tree *kdtree.Tree
}

// NewTree builds a tree over the given points. The input slice is copied,
// since building reorders it.
func NewTree(pts Points) *Tree {
	cp := make(Points, len(pts))
	copy(cp, pts)
	return &Tree{tree: kdtree.New(cp, false)}
}

// Len returns the number of indexed points.
func (t *Tree) Len() int { return t.tree.Count }

// WithinRadius returns every indexed point with Euclidean distance <= r from
// q, the query point itself included if it is a member of the indexed set.
// Callers that need irreflexive adjacency must drop the query's own row from
// the result. A negative radius is a programmer error and panics; r = 0
// returns only exact-coordinate duplicates of q.
func (t *Tree) WithinRadius(q Point, r float64) []Point {
	if r < 0 {
		panic("xyz: WithinRadius called with a negative radius")
	}
	if t.tree.Count == 0 {
		return nil
	}
	keep := kdtree.NewDistKeeper(r * r)
	t.tree.NearestSet(keep, q)
	ret := make([]Point, 0, len(keep.Heap))
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		ret = append(ret, c.Comparable.(Point))
	}
	return ret
}

// Supercell appends to pts the periodic images, across the box given by lo and
// hi, of every point lying within cutoff of a boundary, and returns the grown
// slice. Images keep the Row of their source point, so neighbor results over
// the expanded set still map back to real atoms. Only the original points are
// replicated, never the images themselves.
func Supercell(pts Points, lo, hi [3]float64, cutoff float64) Points {
	shift := [3]float64{hi[0] - lo[0], hi[1] - lo[1], hi[2] - lo[2]}
	n := len(pts)
	for px := -1; px <= 1; px++ {
		for py := -1; py <= 1; py++ {
			for pz := -1; pz <= 1; pz++ {
				if px == 0 && py == 0 && pz == 0 {
					continue
				}
				period := [3]int{px, py, pz}
				for i := 0; i < n; i++ {
					if !nearFaces(pts[i], period, lo, hi, cutoff) {
						continue
					}
					img := pts[i]
					img.X += float64(px) * shift[0]
					img.Y += float64(py) * shift[1]
					img.Z += float64(pz) * shift[2]
					pts = append(pts, img)
				}
			}
		}
	}
	return pts
}

// nearFaces reports whether p lies within cutoff of every boundary face the
// period vector shifts it across.
func nearFaces(p Point, period [3]int, lo, hi [3]float64, cutoff float64) bool {
	c := p.Coords()
	for i := 0; i < 3; i++ {
		switch period[i] {
		case 1:
			if c[i] >= lo[i]+cutoff {
				return false
			}
		case -1:
			if c[i] <= hi[i]-cutoff {
				return false
			}
		}
	}
	return true
}
