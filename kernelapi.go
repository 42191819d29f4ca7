/*
 * kernelapi.go, part of godock.
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

package dock

import (
	"github.com/rmera/godock/kernel"
	"gonum.org/v1/gonum/mat"
)

// Kernel is the contract with the numeric engine the generators delegate
// to. kernel.Reference fulfills it in pure Go; implementations backed by
// native code can be swapped in through SetKernel on each generator.
//
// All flat grids use the package point order (x fastest). Calls are
// synchronous and cannot be interrupted; parallelism, if any, belongs
// inside the implementation.
type Kernel interface {
	//PairwiseDist returns the (grid points, atoms) Euclidean distance
	//matrix.
	PairwiseDist(gridPoints, atomCoords *mat.Dense) *mat.Dense
	//GenerateGrids computes the electrostatic, van der Waals attractive
	//and van der Waals repulsive potentials at every grid point, each
	//value clamped to the limits in opts.
	GenerateGrids(gridPoints, atomCoords *mat.Dense, charges, epsilons, vdwRs []float64, opts *kernel.Options) (elec, vdwAttr, vdwRep []float64)
	//VdwEnergyFactors returns the orientation-invariant per-atom van der
	//Waals coefficients reused across all rotations.
	VdwEnergyFactors(epsilons, vdwRs []float64) (attr, rep []float64)
	//RotateLigGrids applies every quaternion (scalar-first rows of quats)
	//to coords and produces one grid triple per orientation over a shared
	//origin-centered cube of the returned dimension and minimum corner.
	RotateLigGrids(spacing float64, charges, attrFactor, repFactor []float64, coords, quats *mat.Dense) (rotated []*mat.Dense, elec, vdwAttr, vdwRep [][]float64, dim int, min float64)
}

// PotentialGrids is one co-generated triple of flat potential grids,
// sharing a single point order.
type PotentialGrids struct {
	Elec    []float64
	VdwAttr []float64
	VdwRep  []float64
}

// Potential3D is a triple of box-shaped 3D potential grids.
type Potential3D struct {
	Elec    *Grid3
	VdwAttr *Grid3
	VdwRep  *Grid3
}
