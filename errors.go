/*
 * errors.go, part of lammps-util-go.
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

// Error is the interface implemented by errors of this library. The Decorate
// method allows the caller to add information to the error as it is passed up,
// without changing its type or wrapping it in something else. Each call returns
// the current decoration slice; an empty string only retrieves it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// ParseError describes a structural problem found while reading a dump file.
// It aborts the whole read: there is no recovery from a malformed block.
type ParseError struct {
	message  string
	filename string //empty if the source was not a file
	line     int    //1-based line of the offending element, 0 if unknown
	deco     []string
}

func (err *ParseError) Error() string {
	name := err.filename
	if name == "" {
		name = "dump"
	}
	if err.line > 0 {
		return fmt.Sprintf("%s, line %d: %s", name, err.line, err.message)
	}
	return fmt.Sprintf("%s: %s", name, err.message)
}

// Decorate adds new information to the error.
func (err *ParseError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file the failing read was associated to, or an empty
// string if the source was a plain reader.
func (err *ParseError) FileName() string { return err.filename }

// Line returns the 1-based line number where the problem was found.
func (err *ParseError) Line() int { return err.line }

// The messages used by the dump parser, one per structural expectation that
// can be violated.
const (
	InvalidTimestep  = "Invalid or missing timestep line"
	InvalidNAtoms    = "Invalid or missing number-of-atoms line"
	InvalidSymBox    = "Invalid or missing box bounds"
	MissingAtomKeys  = "Missing atom property keys"
	DuplicateKeys    = "Duplicate atom property key"
	DuplicateStep    = "Duplicate timestep"
	InvalidAtomRow   = "Invalid or missing atom data row"
	TruncatedSection = "Unexpected end of dump inside a block"
)

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Using it on any other error is a bug and
// will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
