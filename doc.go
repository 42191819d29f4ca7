/*
 * doc.go, part of godock.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package dock prepares potential-energy grids for rigid-body FFT docking.

Given a receptor (and, optionally, a small-molecule probe) the package
discretizes a 3D region of space into a regular lattice and computes, for
every lattice point, the electrostatic, van der Waals attractive and van der
Waals repulsive interaction potentials. The resulting grids are the input of
a correlation/search step which is outside the scope of this library.

	**godock capabilities**

    Four lattice geometries: cube, bounding box, truncated sphere and
	enlarged convex hull. The non-box geometries keep an index mapping to
	the equivalent bounding-box lattice, so grids computed only over the
	smaller point set can still be presented as full 3D arrays, with the
	points outside the geometry set to zero.

    Receptor grids over any of the four geometries, with conversion
	between shape-ordered and box-ordered values.

    Pocket grids: a fixed-size box anchored at an explicit center or at the
	centroid of a reference ligand, with an edge-repulsion guard on the
	repulsive channel so poses do not drift out of the scored region.

    Probe grids: a probe centered at the origin and evaluated over a whole
	set of quaternion rotations in one batched call, with the
	orientation-invariant van der Waals factors computed only once.

    Per-atom nonbonded parameter resolution from force-field tables keyed on
	the chemical category of each chain.

    Export of any grid to the DX volumetric text format.

The innermost numerics (pairwise distances, per-point potential sums, the
rotated-ligand grid batch) live behind the Kernel interface. The kernel
subpackage provides a reference implementation in pure Go; a native one can
be swapped in without touching this package.

All coordinate sets are gonum *mat.Dense matrices with one row per atom and
3 columns, following the conventions of goChem.

This package does not perform structure parsing, topology assignment or
force-field file reading. Those are expected from the caller, through the
Entity and ParamSource types.

Generators are not safe for concurrent use. Each generator owns its caches;
use one generator per goroutine if parallel grid preparation is needed. The
only process-wide state is the packaged rotation-quaternion cache, which is
immutable after its first load.
*/
package dock
