/*
 * dump_test.go, part of lammps-util-go.
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
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const sampleDump = `ITEM: TIMESTEP
100
ITEM: NUMBER OF ATOMS
3
ITEM: BOX BOUNDS pp pp pp
0 10
0 10
0 10
ITEM: ATOMS id x y z
1 0 0 0
2 1.6 0 0
3 0.8 1.3856 0
`

// block builds a minimal well-formed dump block for the given timestep.
func block(step string, rows ...string) string {
	var b strings.Builder
	b.WriteString("ITEM: TIMESTEP\n" + step + "\n")
	b.WriteString("ITEM: NUMBER OF ATOMS\n")
	b.WriteString(strconv.Itoa(len(rows)) + "\n")
	b.WriteString("ITEM: BOX BOUNDS pp pp pp\n0 10\n0 10\n0 10\n")
	b.WriteString("ITEM: ATOMS id x y z\n")
	for _, r := range rows {
		b.WriteString(r + "\n")
	}
	return b.String()
}

func TestReadDump(Te *testing.T) {
	dump, err := Read(strings.NewReader(sampleDump), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 1 {
		Te.Fatalf("want 1 snapshot, got %d", dump.Len())
	}
	snap := dump.Snapshot(100)
	if snap.Len() != 3 {
		Te.Errorf("want 3 atoms, got %d", snap.Len())
	}
	keys := snap.Keys()
	want := []string{"id", "x", "y", "z"}
	for i, k := range want {
		if keys[i] != k {
			Te.Errorf("key %d: want %q, got %q", i, k, keys[i])
		}
	}
	if b := snap.Box(); b.Boundaries() != "pp pp pp" || b.Lo()[0] != 0 || b.Hi()[2] != 10 {
		Te.Errorf("box read wrong: %v %v %v", b.Boundaries(), b.Lo(), b.Hi())
	}
	if v := snap.Value("x", 1); v != 1.6 {
		Te.Errorf("x[1]: want 1.6, got %v", v)
	}
	if v := snap.Value("y", 2); v != 1.3856 {
		Te.Errorf("y[2]: want 1.3856, got %v", v)
	}
	if v := dump.Property(100, "id")[2]; v != 3 {
		Te.Errorf("id[2]: want 3, got %v", v)
	}
}

// TestReadSelectedSteps checks that an unselected block is skipped without
// being materialized, and that the scanner lands exactly at the start of the
// next block: the later timestep 300 must still parse.
func TestReadSelectedSteps(Te *testing.T) {
	src := block("100", "1 0 0 0") + block("200", "2 1 1 1") + block("300", "3 2 2 2")
	dump, err := Read(strings.NewReader(src), []uint64{200})
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 1 {
		Te.Fatalf("want only timestep 200, got steps %v", dump.Steps())
	}
	if dump.Snapshot(200).Value("id", 0) != 2 {
		Te.Error("wrong block materialized for timestep 200")
	}

	dump, err = Read(strings.NewReader(src), []uint64{200, 300})
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 2 || dump.Snapshot(300).Value("x", 0) != 2 {
		Te.Errorf("skipping block 100 broke the following blocks: steps %v", dump.Steps())
	}
}

// TestReadStepBeyondEnd asks for a timestep past everything in the file; the
// selected blocks must come back and the read must end cleanly at EOF.
func TestReadStepBeyondEnd(Te *testing.T) {
	src := block("100", "1 0 0 0") + block("200", "2 1 1 1")
	dump, err := Read(strings.NewReader(src), []uint64{200, 99999})
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 1 || dump.Steps()[0] != 200 {
		Te.Errorf("want just timestep 200, got %v", dump.Steps())
	}
}

// TestReadEarlyStop checks that reading stops as soon as a block's timestep
// exceeds the largest requested one, even if later blocks are malformed.
func TestReadEarlyStop(Te *testing.T) {
	src := block("100", "1 0 0 0") + block("200", "2 1 1 1") + "ITEM: TIMESTEP\ngarbage\n"
	dump, err := Read(strings.NewReader(src), []uint64{100})
	if err != nil {
		Te.Fatalf("read should have stopped before the malformed block: %v", err)
	}
	if dump.Len() != 1 {
		Te.Errorf("want 1 snapshot, got %d", dump.Len())
	}
}

func TestReadTrailingBlankLines(Te *testing.T) {
	if _, err := Read(strings.NewReader(sampleDump+"\n\n"), nil); err != nil {
		Te.Errorf("trailing blank lines should be tolerated: %v", err)
	}
}

func TestReadErrors(Te *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"garbage instead of a timestep header", "NOT A DUMP\n"},
		{"non-numeric timestep", "ITEM: TIMESTEP\nxyz\n"},
		{"missing atom count", "ITEM: TIMESTEP\n100\nITEM: BOX BOUNDS\n"},
		{"short box bounds", "ITEM: TIMESTEP\n100\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS pp pp pp\n0 10\n0 10\nITEM: ATOMS id\n1\n"},
		{"inverted box bounds", strings.Replace(sampleDump, "0 10\n0 10\n0 10", "10 0\n0 10\n0 10", 1)},
		{"duplicate property key", strings.Replace(sampleDump, "id x y z", "id x x z", 1)},
		{"no property keys", strings.Replace(sampleDump, "ITEM: ATOMS id x y z", "ITEM: ATOMS", 1)},
		{"short atom row", strings.Replace(sampleDump, "2 1.6 0 0", "2 1.6 0", 1)},
		{"non-numeric atom row", strings.Replace(sampleDump, "2 1.6 0 0", "2 1.6 zero 0", 1)},
		{"missing atom rows", strings.Replace(sampleDump, "3 0.8 1.3856 0\n", "", 1)},
		{"duplicate timestep", sampleDump + sampleDump},
	}
	for _, c := range cases {
		if _, err := Read(strings.NewReader(c.src), nil); err == nil {
			Te.Errorf("%s: expected a parse error", c.name)
		}
	}
}

func TestParseErrorLine(Te *testing.T) {
	src := strings.Replace(sampleDump, "2 1.6 0 0", "2 1.6 zero 0", 1)
	_, err := Read(strings.NewReader(src), nil)
	perr, ok := err.(*ParseError)
	if !ok {
		Te.Fatalf("want *ParseError, got %T", err)
	}
	if perr.Line() != 11 {
		Te.Errorf("bad row is line 11, error points at %d", perr.Line())
	}
	perr.Decorate("TestParseErrorLine")
	if !strings.Contains(perr.Error(), InvalidAtomRow) {
		Te.Errorf("unexpected message: %v", perr)
	}
}

// TestRoundTrip writes a parsed dump back out and expects byte-identical
// text, then re-reads it for good measure.
func TestRoundTrip(Te *testing.T) {
	dump, err := Read(strings.NewReader(sampleDump), nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dump.Write(&buf); err != nil {
		Te.Fatal(err)
	}
	if buf.String() != sampleDump {
		Te.Errorf("round trip changed the dump:\n%s", buf.String())
	}
	again, err := Read(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if again.Len() != 1 || again.Snapshot(100).Value("y", 2) != 1.3856 {
		Te.Error("re-read of the written dump lost data")
	}
}

func TestReadWriteCompressed(Te *testing.T) {
	dir := Te.TempDir()

	gzPath := filepath.Join(dir, "dump.simple.gz")
	f, err := os.Create(gzPath)
	if err != nil {
		Te.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(sampleDump)); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	dump, err := ReadFile(gzPath, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 1 {
		Te.Fatalf("gz read: want 1 snapshot, got %d", dump.Len())
	}

	zstPath := filepath.Join(dir, "dump.simple.zst")
	if err := dump.SaveFile(zstPath); err != nil {
		Te.Fatal(err)
	}
	dump, err = ReadFile(zstPath, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if dump.Len() != 1 || dump.Snapshot(100).Value("x", 1) != 1.6 {
		Te.Error("zst round trip lost data")
	}
}

func TestNewDumpFileDuplicate(Te *testing.T) {
	dump, err := Read(strings.NewReader(sampleDump), nil)
	if err != nil {
		Te.Fatal(err)
	}
	snap := dump.Snapshot(100)
	if _, err := NewDumpFile(snap, snap); err == nil {
		Te.Error("expected a duplicate-timestep error")
	}
}
