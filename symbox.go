/*
 * symbox.go, part of lammps-util-go.
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

import "fmt"

// SymBox is the simulation cell of one snapshot: per-axis lower and upper
// bounds plus the boundary-condition tag from the dump header (e.g. "pp pp pp").
// A SymBox is immutable after construction; derived snapshots receive a clone.
type SymBox struct {
	boundaries string
	lo, hi     [3]float64
}

// NewSymBox builds a box from the given bounds and boundary tag. It returns an
// error if any axis has its lower bound above its upper bound.
func NewSymBox(boundaries string, xlo, xhi, ylo, yhi, zlo, zhi float64) (*SymBox, error) {
	b := &SymBox{
		boundaries: boundaries,
		lo:         [3]float64{xlo, ylo, zlo},
		hi:         [3]float64{xhi, yhi, zhi},
	}
	for i := 0; i < 3; i++ {
		if b.lo[i] > b.hi[i] {
			return nil, fmt.Errorf("SymBox: axis %d lower bound %v above upper bound %v", i, b.lo[i], b.hi[i])
		}
	}
	return b, nil
}

// Boundaries returns the boundary-condition tag as read from the dump header.
func (b *SymBox) Boundaries() string {
	return b.boundaries
}

// Lo returns the lower bounds for the x, y and z axes.
func (b *SymBox) Lo() [3]float64 {
	return b.lo
}

// Hi returns the upper bounds for the x, y and z axes.
func (b *SymBox) Hi() [3]float64 {
	return b.hi
}

// Dimensions returns the edge lengths of the box.
func (b *SymBox) Dimensions() [3]float64 {
	return [3]float64{b.hi[0] - b.lo[0], b.hi[1] - b.lo[1], b.hi[2] - b.lo[2]}
}

// Clone returns a copy of the box.
func (b *SymBox) Clone() *SymBox {
	if b == nil {
		panic("SymBox: attempted to clone a nil box")
	}
	n := *b
	return &n
}
