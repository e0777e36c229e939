/*
 * snapshot.go, part of lammps-util-go.
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
	"math"

	"github.com/PolykekBros/lammps-util-go/xyz"
)

/**Note: the accessors here panic instead of returning errors when given a
 * property name absent from the schema or an out-of-range row. These are
 * fundamental functions: if such a call is made, the calling program is
 * wrong, not the data, and it should crash loudly rather than get an empty
 * or default value back.**/

// Snapshot holds the complete per-atom data of one timestep: the simulation
// box, a property-name to column-index map and a flat buffer of exactly
// natoms*nproperties values. The buffer is property-major: the value of
// property p for atom row i lives at column(p)*natoms + i, so a whole column
// is always contiguous. The atom count and the schema are fixed for the life
// of the snapshot; growing either means building a new one (see Subset and
// ExtendSchema).
type Snapshot struct {
	step   uint64
	natoms int
	box    *SymBox
	cols   map[string]int
	order  []string //keys in column order
	data   []float64
}

// NewSnapshot builds a zero-filled snapshot for the given step, atom count,
// box and property keys, columns laid out in the declared key order. It
// returns an error on a nil box, a negative atom count or a repeated key.
func NewSnapshot(step uint64, natoms int, box *SymBox, keys []string) (*Snapshot, error) {
	if box == nil {
		return nil, fmt.Errorf("NewSnapshot: supplied a nil box")
	}
	if natoms < 0 {
		return nil, fmt.Errorf("NewSnapshot: negative atom count %d", natoms)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("NewSnapshot: no property keys given")
	}
	cols := make(map[string]int, len(keys))
	for _, k := range keys {
		if _, dup := cols[k]; dup {
			return nil, fmt.Errorf("NewSnapshot: duplicate property key %q", k)
		}
		cols[k] = len(cols)
	}
	return &Snapshot{
		step:   step,
		natoms: natoms,
		box:    box,
		cols:   cols,
		order:  append([]string(nil), keys...),
		data:   make([]float64, natoms*len(keys)),
	}, nil
}

// Step returns the timestep the snapshot was taken at.
func (s *Snapshot) Step() uint64 { return s.step }

// Len returns the number of atoms in the snapshot.
func (s *Snapshot) Len() int { return s.natoms }

// Box returns the simulation box. The box is shared, not copied; it is
// immutable so sharing is safe.
func (s *Snapshot) Box() *SymBox { return s.box }

// Keys returns the property names in column order.
func (s *Snapshot) Keys() []string {
	return append([]string(nil), s.order...)
}

// HasProperty returns whether key names a column of the snapshot.
func (s *Snapshot) HasProperty(key string) bool {
	_, ok := s.cols[key]
	return ok
}

// PropertyIndex returns the column index of key. Panics if the snapshot has
// no such property.
func (s *Snapshot) PropertyIndex(key string) int {
	j, ok := s.cols[key]
	if !ok {
		panic(fmt.Sprintf("Snapshot: requested property %q not in schema %v", key, s.order))
	}
	return j
}

// Property returns the column for key as a view into the snapshot's buffer,
// one value per atom row. Writing to it writes the snapshot; only the
// component currently constructing or deriving the snapshot may do so.
// Panics if the snapshot has no such property.
func (s *Snapshot) Property(key string) []float64 {
	start := s.PropertyIndex(key) * s.natoms
	return s.data[start : start+s.natoms]
}

// Value returns the value of property key at atom row.
func (s *Snapshot) Value(key string, row int) float64 {
	return s.Property(key)[row]
}

// Set sets the value of property key at atom row.
func (s *Snapshot) Set(key string, row int, v float64) {
	s.Property(key)[row] = v
}

// Coordinates materializes the "x", "y", "z" columns as a point list, each
// point tagged with its row index, ready to be indexed by xyz.NewTree.
func (s *Snapshot) Coordinates() xyz.Points {
	xs := s.Property("x")
	ys := s.Property("y")
	zs := s.Property("z")
	pts := make(xyz.Points, s.natoms)
	for i := 0; i < s.natoms; i++ {
		pts[i] = xyz.New(xs[i], ys[i], zs[i], i)
	}
	return pts
}

// ZeroLevel returns the highest z coordinate in the snapshot, used by the
// surface analyses as the reference surface height. Returns -Inf for an
// empty snapshot.
func (s *Snapshot) ZeroLevel() float64 {
	max := math.Inf(-1)
	for _, z := range s.Property("z") {
		if z > max {
			max = z
		}
	}
	return max
}
