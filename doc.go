/*
 * doc.go, part of lammps-util-go.
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

/*Package lammps reads, transforms and analyzes LAMMPS text dump files.

	**Capabilities**

    Reads and writes LAMMPS dumps, with optional timestep selection and
	transparent gzip/zstd (de)compression based on the file extension.

    Stores each snapshot as a property-major flat buffer, so a whole
	property column is always contiguous in memory.

    Builds derived snapshots by row subsetting and schema extension,
	without ever mutating the source snapshot.

    Partitions the atoms of a snapshot into spatial clusters under a
	distance cutoff, using a k-d tree for the neighbor queries.

    Detects "vanished" atoms between two snapshots (crater, rim and
	sputtered-matter detection) and extracts the largest connected
	region among them.

The heavier numerical work (statistics, binning, plotting) lives in the
simstat and lmpplot subpackages; the xyz subpackage provides the indexed
point type and the spatial index the analyses are built on.*/
package lammps
