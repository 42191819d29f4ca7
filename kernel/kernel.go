/*
 * kernel.go, part of godock.
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

/*Package kernel implements the numeric routines behind grid generation:
pairwise distances, per-grid-point potential sums, van der Waals energy
factors and the batched rotated-ligand grids.

This is the reference implementation, in pure Go. It defines the behavior a
native (cgo/SIMD/GPU) kernel must reproduce; any such kernel can replace it
through the dock.Kernel interface.

All flat grids produced here are ordered with x varying fastest, matching
the point order of the dock package.*/
package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

//minDist keeps a grid point sitting exactly on an atom from producing an
//infinity. With the clamps of any sane Options the clamped value is reached
//long before this distance.
const minDist = 1e-6

// Reference is the pure-Go kernel. It is stateless; the zero value is ready
// to use.
type Reference struct{}

// PairwiseDist returns the Euclidean distances between every grid point and
// every atom, as a (grid points, atoms) matrix.
func (Reference) PairwiseDist(gridPoints, atomCoords *mat.Dense) *mat.Dense {
	ng, _ := gridPoints.Dims()
	na, _ := atomCoords.Dims()
	ret := mat.NewDense(ng, na, nil)
	for i := 0; i < ng; i++ {
		gx, gy, gz := gridPoints.At(i, 0), gridPoints.At(i, 1), gridPoints.At(i, 2)
		for j := 0; j < na; j++ {
			dx := gx - atomCoords.At(j, 0)
			dy := gy - atomCoords.At(j, 1)
			dz := gz - atomCoords.At(j, 2)
			ret.Set(i, j, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
	}
	return ret
}

// GenerateGrids computes the three potential channels over the given grid
// points: electrostatic, van der Waals attractive (the -2*eps*(rmin/r)^6
// half of the Lennard-Jones potential) and van der Waals repulsive (the
// eps*(rmin/r)^12 half). Each point of each channel is clamped to the
// limits in opts. vdwRs holds rmin values (not rmin/2), parallel to charges
// and epsilons.
func (Reference) GenerateGrids(gridPoints, atomCoords *mat.Dense, charges, epsilons, vdwRs []float64, opts *Options) (elec, vdwAttr, vdwRep []float64) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ng, _ := gridPoints.Dims()
	na, _ := atomCoords.Dims()
	elec = make([]float64, ng)
	vdwAttr = make([]float64, ng)
	vdwRep = make([]float64, ng)
	cc := opts.Coulomb() / opts.Dielectric()
	cdie := opts.ConstantDielectric()
	for i := 0; i < ng; i++ {
		gx, gy, gz := gridPoints.At(i, 0), gridPoints.At(i, 1), gridPoints.At(i, 2)
		var e, a, r float64
		for j := 0; j < na; j++ {
			dx := gx - atomCoords.At(j, 0)
			dy := gy - atomCoords.At(j, 1)
			dz := gz - atomCoords.At(j, 2)
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d < minDist {
				d = minDist
			}
			if cdie {
				e += cc * charges[j] / d
			} else {
				//distance-dependent dielectric: an extra 1/r
				e += cc * charges[j] / (d * d)
			}
			s2 := vdwRs[j] * vdwRs[j] / (d * d)
			s6 := s2 * s2 * s2
			eps := math.Abs(epsilons[j])
			a -= 2 * eps * s6
			r += eps * s6 * s6
		}
		elec[i] = clamp(e, opts.ElecAttrMax(), opts.ElecRepMax())
		vdwAttr[i] = clamp(a, opts.VdwAttrMax(), 0)
		vdwRep[i] = clamp(r, 0, opts.VdwRepMax())
	}
	return elec, vdwAttr, vdwRep
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VdwEnergyFactors returns the per-atom coefficients sqrt(|eps|)*rmin^3 and
// sqrt(|eps|)*rmin^6, by which the geometric-mean combination rule
// factorizes the attractive and repulsive Lennard-Jones terms. They depend
// only on the parameters, never on positions, so they are computed once per
// probe and reused for every orientation.
func (Reference) VdwEnergyFactors(epsilons, vdwRs []float64) (attr, rep []float64) {
	attr = make([]float64, len(epsilons))
	rep = make([]float64, len(epsilons))
	for i := range epsilons {
		se := math.Sqrt(math.Abs(epsilons[i]))
		r3 := vdwRs[i] * vdwRs[i] * vdwRs[i]
		attr[i] = se * r3
		rep[i] = se * r3 * r3
	}
	return attr, rep
}

//rotateQ applies the unit quaternion q to the vector (x,y,z).
func rotateQ(q quat.Number, x, y, z float64) (float64, float64, float64) {
	p := quat.Number{Imag: x, Jmag: y, Kmag: z}
	r := quat.Mul(quat.Mul(q, p), quat.Inv(q))
	return r.Imag, r.Jmag, r.Kmag
}

// RotateLigGrids applies every quaternion in quats (one scalar-first
// w,x,y,z per row) to coords, then deposits the charges and the two van der
// Waals factors of each rotated atom onto a cubic grid by trilinear
// (cloud-in-cell) weighting, producing one elec/attractive/repulsive triple
// per orientation.
//
// The cube is centered on the origin and its dimension depends only on the
// largest atom distance from the origin, so every orientation shares it.
// The function returns the rotated coordinates, the three grid batches, the
// cube dimension in points, and the minimum coordinate of the cube (the
// same for the three axes).
func (Reference) RotateLigGrids(spacing float64, charges, attrFactor, repFactor []float64, coords, quats *mat.Dense) (rotated []*mat.Dense, elec, vdwAttr, vdwRep [][]float64, dim int, min float64) {
	na, _ := coords.Dims()
	nq, _ := quats.Dims()
	maxR := 0.0
	for i := 0; i < na; i++ {
		x, y, z := coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)
		if r := math.Sqrt(x*x + y*y + z*z); r > maxR {
			maxR = r
		}
	}
	//one spare cell so the upper cloud-in-cell neighbor always exists
	half := int(math.Ceil(maxR/spacing)) + 1
	dim = 2*half + 1
	min = -float64(half) * spacing

	rotated = make([]*mat.Dense, nq)
	elec = make([][]float64, nq)
	vdwAttr = make([][]float64, nq)
	vdwRep = make([][]float64, nq)
	npts := dim * dim * dim
	for k := 0; k < nq; k++ {
		q := quat.Number{
			Real: quats.At(k, 0),
			Imag: quats.At(k, 1),
			Jmag: quats.At(k, 2),
			Kmag: quats.At(k, 3),
		}
		rot := mat.NewDense(na, 3, nil)
		eg := make([]float64, npts)
		ag := make([]float64, npts)
		rg := make([]float64, npts)
		for i := 0; i < na; i++ {
			x, y, z := rotateQ(q, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
			rot.Set(i, 0, x)
			rot.Set(i, 1, y)
			rot.Set(i, 2, z)
			deposit(eg, ag, rg, dim, spacing, min, x, y, z, charges[i], attrFactor[i], repFactor[i])
		}
		rotated[k] = rot
		elec[k] = eg
		vdwAttr[k] = ag
		vdwRep[k] = rg
	}
	return rotated, elec, vdwAttr, vdwRep, dim, min
}

//deposit spreads the three per-atom quantities over the 8 grid points
//surrounding (x,y,z), with trilinear weights. The total deposited per atom
//and channel is exactly the atom's value.
func deposit(eg, ag, rg []float64, dim int, spacing, min, x, y, z, q, fa, fr float64) {
	fx := (x - min) / spacing
	fy := (y - min) / spacing
	fz := (z - min) / spacing
	ix, iy, iz := int(math.Floor(fx)), int(math.Floor(fy)), int(math.Floor(fz))
	tx, ty, tz := fx-float64(ix), fy-float64(iy), fz-float64(iz)
	wx := [2]float64{1 - tx, tx}
	wy := [2]float64{1 - ty, ty}
	wz := [2]float64{1 - tz, tz}
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				w := wx[dx] * wy[dy] * wz[dz]
				if w == 0 {
					continue
				}
				id := (ix + dx) + dim*((iy+dy)+dim*(iz+dz))
				eg[id] += w * q
				ag[id] += w * fa
				rg[id] += w * fr
			}
		}
	}
}
