/*
 * probe.go, part of godock.
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
	"log"

	"github.com/rmera/godock/kernel"
	"gonum.org/v1/gonum/mat"
)

// RotatedGrids is the batch produced for a probe: one potential triple per
// orientation, all over the same origin-centered cube of Dim points per
// axis, Min minimum coordinate (the same for the three axes) and Spacing.
// Quats holds the orientations themselves, one scalar-first w,x,y,z row per
// pose.
type RotatedGrids struct {
	Quats   *mat.Dense
	Dim     int
	Min     float64
	Spacing float64
	Elec    [][]float64
	VdwAttr [][]float64
	VdwRep  [][]float64
}

// NRot returns the number of orientations in the batch.
func (R *RotatedGrids) NRot() int {
	if R.Quats == nil {
		return 0
	}
	r, _ := R.Quats.Dims()
	return r
}

// Pose returns the grid triple of the ith orientation. It panics if i is out
// of range, as it reflects a bug in the caller, not a recoverable condition.
func (R *RotatedGrids) Pose(i int) *PotentialGrids {
	if i < 0 || i >= R.NRot() {
		panic("godock: pose index out of range")
	}
	return &PotentialGrids{Elec: R.Elec[i], VdwAttr: R.VdwAttr[i], VdwRep: R.VdwRep[i]}
}

// ProbeGridGenerator produces the ligand-side grids for FFT docking: for
// every orientation in a rotation set, the probe's charges and van der Waals
// factors deposited on a small origin-centered cube. The probe is centered
// on load, so the cube is shared by all orientations.
//
// Not safe for concurrent use.
type ProbeGridGenerator struct {
	gridData
	kern   Kernel
	level  int
	custom *mat.Dense

	originalCenter [3]float64
	attrFactor     []float64
	repFactor      []float64
	rotated        []*mat.Dense
	batch          *RotatedGrids
}

// NewProbeGridGenerator returns a probe-grid generator. level selects one of
// the packaged rotation sets (0 to 3; 0 is the identity only). If custom is
// not nil it must be an N x 4 matrix of scalar-first quaternions, which is
// used instead and makes level irrelevant.
func NewProbeGridGenerator(src ParamSource, spacing float64, level int, custom *mat.Dense) (*ProbeGridGenerator, error) {
	if custom != nil {
		if r, c := custom.Dims(); r == 0 || c != 4 {
			return nil, errorf(ErrConfiguration, "custom rotations must be an Nx4 matrix of quaternions, got (%d,%d)", r, c)
		}
		log.Printf("godock: custom rotations given: the rotation level is ignored")
	} else if level < 0 || level > maxRotationLevel {
		return nil, errorf(ErrConfiguration, "rotation level must be between 0 and %d, got %d", maxRotationLevel, level)
	}
	P := new(ProbeGridGenerator)
	P.gridData = gridData{spacing: spacing, src: src}
	P.level = level
	P.custom = custom
	P.kern = kernel.Reference{}
	return P, nil
}

// SetKernel replaces the numeric kernel. Cached batches are invalidated.
func (P *ProbeGridGenerator) SetKernel(k Kernel) {
	P.kern = k
	P.batch = nil
	P.rotated = nil
}

// LoadProbe loads a probe molecule. The coordinates are translated so the
// center of the probe (the midpoint of its per-axis extremes) sits on the
// origin; the original center is kept and can be recovered with
// OriginalCenter. The orientation-invariant van der Waals factors are
// computed here, once, and reused for every rotation. On failure the
// previous state is kept.
func (P *ProbeGridGenerator) LoadProbe(coords *mat.Dense, probe Entity) error {
	prev := P.gridData
	prevCenter := P.originalCenter
	prevAttr, prevRep := P.attrFactor, P.repFactor
	if err := P.load(coords, probe); err != nil {
		return err
	}
	restore := func() {
		P.gridData = prev
		P.originalCenter = prevCenter
		P.attrFactor, P.repFactor = prevAttr, prevRep
	}
	center, err := P.CoordCenter()
	if err != nil {
		restore()
		return errDecorate(err, "LoadProbe")
	}
	rows, _ := P.coords.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < 3; j++ {
			P.coords.Set(i, j, P.coords.At(i, j)-center[j])
		}
	}
	if err := P.collectParams(); err != nil {
		restore()
		return err
	}
	P.originalCenter = center
	P.attrFactor, P.repFactor = P.kern.VdwEnergyFactors(P.epsilons, P.vdwRs)
	P.batch = nil
	P.rotated = nil
	return nil
}

// OriginalCenter returns the center the probe coordinates had before they
// were moved to the origin.
func (P *ProbeGridGenerator) OriginalCenter() ([3]float64, error) {
	if !P.loaded() {
		return [3]float64{}, errorf(ErrState, "no probe has been loaded")
	}
	return P.originalCenter, nil
}

// RotationLevel returns the rotation level the generator was built with.
func (P *ProbeGridGenerator) RotationLevel() int { return P.level }

//quaternions returns the orientation set in effect: the custom matrix if
//one was given, the packaged set for the level otherwise.
func (P *ProbeGridGenerator) quaternions() (*mat.Dense, error) {
	if P.custom != nil {
		return P.custom, nil
	}
	return RotationSet(P.level)
}

// GenerateGrids rotates the probe through every orientation of the rotation
// set and deposits its charges and van der Waals factors on an
// origin-centered cube, one grid triple per orientation. The batch is cached
// until the next load.
func (P *ProbeGridGenerator) GenerateGrids() (*RotatedGrids, error) {
	if P.batch != nil {
		return P.batch, nil
	}
	if !P.loaded() || P.charges == nil {
		return nil, errorf(ErrState, "no probe has been loaded")
	}
	quats, err := P.quaternions()
	if err != nil {
		return nil, errDecorate(err, "GenerateGrids")
	}
	rotated, e, a, r, dim, min := P.kern.RotateLigGrids(P.spacing, P.charges, P.attrFactor, P.repFactor, P.coords, quats)
	P.rotated = rotated
	P.batch = &RotatedGrids{
		Quats:   quats,
		Dim:     dim,
		Min:     min,
		Spacing: P.spacing,
		Elec:    e,
		VdwAttr: a,
		VdwRep:  r,
	}
	return P.batch, nil
}

// GenerateGridsSinglePose deposits the loaded probe's parameters for one
// explicit pose, without rotating it. pose must have the same shape as the
// loaded coordinates; it is used as given, so it should already be centered
// the way LoadProbe centers (pass nil to use the loaded coordinates). The
// result equals Pose(0) of a batch run with the identity as its only
// quaternion.
func (P *ProbeGridGenerator) GenerateGridsSinglePose(pose *mat.Dense) (*PotentialGrids, int, float64, error) {
	if !P.loaded() || P.charges == nil {
		return nil, 0, 0, errorf(ErrState, "no probe has been loaded")
	}
	if pose == nil {
		pose = P.coords
	} else {
		pr, pc := pose.Dims()
		cr, _ := P.coords.Dims()
		if pr != cr || pc != 3 {
			return nil, 0, 0, errorf(ErrShapeMismatch, "pose is (%d,%d), the loaded probe has %d atoms", pr, pc, cr)
		}
	}
	identity := mat.NewDense(1, 4, []float64{1, 0, 0, 0})
	_, e, a, r, dim, min := P.kern.RotateLigGrids(P.spacing, P.charges, P.attrFactor, P.repFactor, pose, identity)
	return &PotentialGrids{Elec: e[0], VdwAttr: a[0], VdwRep: r[0]}, dim, min, nil
}

// RotatedCoords returns the probe coordinates under every orientation of the
// last generated batch, one matrix per pose.
func (P *ProbeGridGenerator) RotatedCoords() ([]*mat.Dense, error) {
	if _, err := P.GenerateGrids(); err != nil {
		return nil, errDecorate(err, "RotatedCoords")
	}
	return P.rotated, nil
}

// Quats returns the orientation set of the batch.
func (P *ProbeGridGenerator) Quats() (*mat.Dense, error) {
	b, err := P.GenerateGrids()
	if err != nil {
		return nil, errDecorate(err, "Quats")
	}
	return b.Quats, nil
}

// SaveDX writes one flat cube-ordered grid of the batch (or of a single
// pose) to a DX file with the batch cube's metadata.
func (P *ProbeGridGenerator) SaveDX(filename string, gridVals []float64) error {
	b, err := P.GenerateGrids()
	if err != nil {
		return errDecorate(err, "SaveDX")
	}
	dims := [3]int{b.Dim, b.Dim, b.Dim}
	min := [3]float64{b.Min, b.Min, b.Min}
	return SaveDX(filename, gridVals, dims, min, b.Spacing)
}
