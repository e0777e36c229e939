/*
 * transform.go, part of lammps-util-go.
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

//Pure snapshot-to-snapshot transforms. All of them return a newly allocated
//snapshot and never touch the input; the box and the timestep are carried
//over unchanged.

// Subset builds a snapshot holding only the given atom rows of s, schema and
// box unchanged. Output row i is input row rows[i], so the output keeps the
// iteration order of rows; callers that need a deterministic order must sort
// first. An out-of-range row index is an error.
func Subset(s *Snapshot, rows []int) (*Snapshot, error) {
	out, err := NewSnapshot(s.step, len(rows), s.box.Clone(), s.order)
	if err != nil {
		return nil, err
	}
	for k, r := range rows {
		if r < 0 || r >= s.natoms {
			return nil, fmt.Errorf("Subset: row index %d (value %d) out of range", k, r)
		}
	}
	for j := range s.order {
		src := s.data[j*s.natoms : (j+1)*s.natoms]
		dst := out.data[j*out.natoms : (j+1)*out.natoms]
		for i, r := range rows {
			dst[i] = src[r]
		}
	}
	return out, nil
}

// ExtendSchema builds a snapshot with the same rows and values as s plus the
// named new properties, appended as all-zero columns after the existing ones
// in the declared order. A name already present in s, or repeated in newKeys,
// is an error.
func ExtendSchema(s *Snapshot, newKeys []string) (*Snapshot, error) {
	keys := make([]string, 0, len(s.order)+len(newKeys))
	keys = append(keys, s.order...)
	keys = append(keys, newKeys...)
	out, err := NewSnapshot(s.step, s.natoms, s.box.Clone(), keys)
	if err != nil {
		return nil, err
	}
	copy(out.data, s.data) //old columns first, new ones stay zero
	return out, nil
}

// SubsetExtend composes Subset and ExtendSchema in one allocation: the output
// holds the chosen rows of s and additionally the named zero-filled columns.
// It is the transform to reach for when a derived value (say, a cluster
// label) has to be written for a filtered set of atoms.
func SubsetExtend(s *Snapshot, newKeys []string, rows []int) (*Snapshot, error) {
	keys := make([]string, 0, len(s.order)+len(newKeys))
	keys = append(keys, s.order...)
	keys = append(keys, newKeys...)
	out, err := NewSnapshot(s.step, len(rows), s.box.Clone(), keys)
	if err != nil {
		return nil, err
	}
	for k, r := range rows {
		if r < 0 || r >= s.natoms {
			return nil, fmt.Errorf("SubsetExtend: row index %d (value %d) out of range", k, r)
		}
	}
	for j := range s.order {
		src := s.data[j*s.natoms : (j+1)*s.natoms]
		dst := out.data[j*out.natoms : (j+1)*out.natoms]
		for i, r := range rows {
			dst[i] = src[r]
		}
	}
	return out, nil
}

// FilterRows returns, in increasing order, the rows of s whose value for
// property key satisfies keep. It is the usual producer of the row list
// handed to Subset.
func FilterRows(s *Snapshot, key string, keep func(float64) bool) []int {
	var rows []int
	for i, v := range s.Property(key) {
		if keep(v) {
			rows = append(rows, i)
		}
	}
	return rows
}
