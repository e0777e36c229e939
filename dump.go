/*
 * dump.go, part of lammps-util-go.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	headerTimestep = "ITEM: TIMESTEP"
	headerNAtoms   = "ITEM: NUMBER OF ATOMS"
	headerSymBox   = "ITEM: BOX BOUNDS"
	headerAtoms    = "ITEM: ATOMS"
)

// DumpFile is a collection of snapshots keyed by timestep, as read from (or
// to be written as) one LAMMPS dump. Timesteps are unique; iteration through
// Snapshots is always in ascending timestep order.
type DumpFile struct {
	snapshots map[uint64]*Snapshot
}

// NewDumpFile collects the given snapshots into a dump. Two snapshots with
// the same timestep are an error.
func NewDumpFile(snaps ...*Snapshot) (*DumpFile, error) {
	d := &DumpFile{snapshots: make(map[uint64]*Snapshot, len(snaps))}
	for _, s := range snaps {
		if _, dup := d.snapshots[s.Step()]; dup {
			return nil, fmt.Errorf("NewDumpFile: %s: %d", DuplicateStep, s.Step())
		}
		d.snapshots[s.Step()] = s
	}
	return d, nil
}

// Len returns the number of snapshots in the dump.
func (d *DumpFile) Len() int { return len(d.snapshots) }

// Steps returns the timesteps present, in ascending order.
func (d *DumpFile) Steps() []uint64 {
	steps := make([]uint64, 0, len(d.snapshots))
	for step := range d.snapshots {
		steps = append(steps, step)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i] < steps[j] })
	return steps
}

// Snapshots returns the snapshots in ascending timestep order.
func (d *DumpFile) Snapshots() []*Snapshot {
	steps := d.Steps()
	snaps := make([]*Snapshot, len(steps))
	for i, step := range steps {
		snaps[i] = d.snapshots[step]
	}
	return snaps
}

// Snapshot returns the snapshot for the given timestep. Asking for a timestep
// that is not in the dump is a programmer error and panics.
func (d *DumpFile) Snapshot(step uint64) *Snapshot {
	s, ok := d.snapshots[step]
	if !ok {
		panic(fmt.Sprintf("DumpFile: requested timestep %d not in dump", step))
	}
	return s
}

// Property is shorthand for Snapshot(step).Property(key).
func (d *DumpFile) Property(step uint64, key string) []float64 {
	return d.Snapshot(step).Property(key)
}

// dumpScanner wraps a line scanner with a line counter, so parse errors can
// point at the offending line.
type dumpScanner struct {
	sc   *bufio.Scanner
	name string
	line int
}

func (d *dumpScanner) next() (string, bool) {
	if d.sc.Scan() {
		d.line++
		return d.sc.Text(), true
	}
	return "", false
}

func (d *dumpScanner) fail(msg string) *ParseError {
	return &ParseError{message: msg, filename: d.name, line: d.line}
}

// Read reads a dump from r. If steps is non-empty only the blocks for the
// requested timesteps are materialized: other blocks are skipped without
// allocation, and reading stops as soon as a block's timestep exceeds the
// largest requested one (blocks are assumed to appear in non-decreasing
// timestep order). An empty steps list reads everything. Running out of input
// where a new block would start is normal termination, not an error; any
// structural problem inside a block aborts the whole read.
func Read(r io.Reader, steps []uint64) (*DumpFile, error) {
	return read(r, "", steps)
}

func read(r io.Reader, name string, steps []uint64) (*DumpFile, error) {
	wanted := append([]uint64(nil), steps...)
	sort.Slice(wanted, func(i, j int) bool { return wanted[i] < wanted[j] })

	dump := &DumpFile{snapshots: make(map[uint64]*Snapshot)}
	sc := &dumpScanner{sc: bufio.NewScanner(r), name: name}
	for {
		line, ok := sc.next()
		//trailing blank lines at a block boundary are tolerated, anything
		//else in place of a timestep header is not
		for ok && strings.TrimSpace(line) == "" {
			line, ok = sc.next()
		}
		if !ok {
			if err := sc.sc.Err(); err != nil {
				return nil, &ParseError{message: "Read error: " + err.Error(), filename: name, line: sc.line}
			}
			return dump, nil
		}
		if line != headerTimestep {
			return nil, sc.fail(InvalidTimestep)
		}
		line, ok = sc.next()
		if !ok {
			return nil, sc.fail(InvalidTimestep)
		}
		step, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, sc.fail(InvalidTimestep)
		}
		line, ok = sc.next()
		if !ok || line != headerNAtoms {
			return nil, sc.fail(InvalidNAtoms)
		}
		line, ok = sc.next()
		if !ok {
			return nil, sc.fail(InvalidNAtoms)
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms < 0 {
			return nil, sc.fail(InvalidNAtoms)
		}
		if len(wanted) > 0 {
			if step > wanted[len(wanted)-1] {
				//no later block can be relevant anymore
				return dump, nil
			}
			if !containsUint64(wanted, step) {
				//skip the block body: box header, 3 bounds lines, atoms
				//header and one line per atom
				for i := 0; i < natoms+5; i++ {
					if _, ok := sc.next(); !ok {
						break
					}
				}
				continue
			}
		}
		if _, dup := dump.snapshots[step]; dup {
			return nil, sc.fail(DuplicateStep)
		}
		snap, err := readSnapshot(sc, step, natoms)
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
		dump.snapshots[step] = snap
	}
}

// readSnapshot parses the remainder of one block (everything after the atom
// count) into a snapshot.
func readSnapshot(sc *dumpScanner, step uint64, natoms int) (*Snapshot, error) {
	line, ok := sc.next()
	if !ok || !strings.HasPrefix(line, headerSymBox) {
		return nil, sc.fail(InvalidSymBox)
	}
	boundaries := strings.TrimSpace(line[len(headerSymBox):])
	var bounds [3][2]float64
	for i := 0; i < 3; i++ {
		line, ok = sc.next()
		if !ok {
			return nil, sc.fail(InvalidSymBox)
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, sc.fail(InvalidSymBox)
		}
		for j := 0; j < 2; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, sc.fail(InvalidSymBox)
			}
			bounds[i][j] = v
		}
	}
	box, err := NewSymBox(boundaries,
		bounds[0][0], bounds[0][1],
		bounds[1][0], bounds[1][1],
		bounds[2][0], bounds[2][1])
	if err != nil {
		return nil, sc.fail(InvalidSymBox + ": " + err.Error())
	}
	line, ok = sc.next()
	if !ok || !strings.HasPrefix(line, headerAtoms) {
		return nil, sc.fail(MissingAtomKeys)
	}
	keys := strings.Fields(line[len(headerAtoms):])
	if len(keys) == 0 {
		return nil, sc.fail(MissingAtomKeys)
	}
	snap, err := NewSnapshot(step, natoms, box, keys)
	if err != nil {
		return nil, sc.fail(DuplicateKeys)
	}
	for i := 0; i < natoms; i++ {
		line, ok = sc.next()
		if !ok {
			return nil, sc.fail(InvalidAtomRow)
		}
		fields := strings.Fields(line)
		if len(fields) != len(keys) {
			return nil, sc.fail(InvalidAtomRow)
		}
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, sc.fail(InvalidAtomRow)
			}
			snap.data[j*natoms+i] = v
		}
	}
	return snap, nil
}

// write writes the snapshot as one dump block.
func (s *Snapshot) write(w *bufio.Writer) error {
	fmt.Fprintf(w, "%s\n%d\n", headerTimestep, s.step)
	fmt.Fprintf(w, "%s\n%d\n", headerNAtoms, s.natoms)
	if s.box.Boundaries() != "" {
		fmt.Fprintf(w, "%s %s\n", headerSymBox, s.box.Boundaries())
	} else {
		fmt.Fprintf(w, "%s\n", headerSymBox)
	}
	lo, hi := s.box.Lo(), s.box.Hi()
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "%s %s\n", formatFloat(lo[i]), formatFloat(hi[i]))
	}
	fmt.Fprintf(w, "%s %s\n", headerAtoms, strings.Join(s.order, " "))
	for i := 0; i < s.natoms; i++ {
		for j := range s.order {
			if j > 0 {
				if err := w.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := w.WriteString(formatFloat(s.data[j*s.natoms+i])); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write writes the whole dump to w, blocks in ascending timestep order, in
// exactly the structure Read expects, so a written dump reads back equal.
func (d *DumpFile) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range d.Snapshots() {
		if err := s.write(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFile reads a dump from the named file, decompressing transparently when
// the name ends in .gz, .zst or .zstd.
func ReadFile(path string, steps []uint64) (*DumpFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, &ParseError{message: "Can't read gzip header: " + err.Error(), filename: path}
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, &ParseError{message: "Can't read zstd header: " + err.Error(), filename: path}
		}
		defer zr.Close()
		r = zr
	}
	return read(r, path, steps)
}

// SaveFile writes the dump to the named file, compressing when the name ends
// in .gz, .zst or .zstd.
func (d *DumpFile) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var closer io.Closer
	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(f)
		w, closer = zw, zw
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return err
		}
		w, closer = zw, zw
	}
	if err := d.Write(w); err != nil {
		f.Close()
		return err
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// containsUint64 reports whether sorted contains x. The slice must be in
// ascending order.
func containsUint64(sorted []uint64, x uint64) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })
	return i < len(sorted) && sorted[i] == x
}
