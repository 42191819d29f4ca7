/*
 * pocket.go, part of godock.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//edgeRepFactor scales the maximum of the repulsive channel to build the
//boundary guard value.
const edgeRepFactor = 100

// PocketGridGenerator computes potential-energy grids over a fixed-size box
// around a point of interest (a binding pocket), rather than over a shape
// hugging the whole molecule. After generation, the points on the six faces
// of the box are overwritten, in the repulsive van der Waals channel only,
// with 100 times the channel's maximum, so poses cannot drift out of the
// scored region.
//
// Not safe for concurrent use.
type PocketGridGenerator struct {
	gridData
	kern      Kernel
	opts      *kernel.Options
	coordGrid *BoundingBoxGrid

	pots *PotentialGrids
}

// NewPocketGridGenerator returns a pocket-grid generator with the given
// spacing. Pocket grids use no padding; the box is sized exactly as asked.
// A nil opts selects kernel.DefaultOptions().
func NewPocketGridGenerator(src ParamSource, spacing float64, fftOpt bool, opts *kernel.Options) *PocketGridGenerator {
	if opts == nil {
		opts = kernel.DefaultOptions()
	}
	P := new(PocketGridGenerator)
	P.gridData = gridData{spacing: spacing, padding: 0, fftOpt: fftOpt, src: src}
	P.opts = opts
	P.kern = kernel.Reference{}
	return P
}

// SetKernel replaces the numeric kernel. Cached grids are invalidated.
func (P *PocketGridGenerator) SetKernel(k Kernel) {
	P.kern = k
	P.pots = nil
}

// Options returns the energy options passed verbatim to the kernel.
func (P *PocketGridGenerator) Options() *kernel.Options { return P.opts }

// LoadReceptor loads a receptor and defines the pocket box. boxDims may
// hold a single value (a cube) or three per-axis lengths, in Angstrom.
// Exactly one of center and refLigand must be given: either the explicit
// box center, or the coordinates of a reference ligand whose centroid
// becomes the center. On failure the previous state is kept.
func (P *PocketGridGenerator) LoadReceptor(coords *mat.Dense, receptor Entity, boxDims []float64, center []float64, refLigand *mat.Dense) error {
	if (center == nil) == (refLigand == nil) {
		return errorf(ErrConfiguration, "exactly one of the box center and the reference ligand must be given")
	}
	var boxCenter [3]float64
	if center != nil {
		if len(center) != 3 {
			return errorf(ErrConfiguration, "box center needs 3 components, got %d", len(center))
		}
		copy(boxCenter[:], center)
	} else {
		if r, c := refLigand.Dims(); r == 0 || c != 3 {
			return errorf(ErrConfiguration, "malformed reference ligand coordinates (%d,%d)", r, c)
		}
		boxCenter = Centroid(refLigand)
	}
	var dims [3]float64
	switch len(boxDims) {
	case 1:
		dims = [3]float64{boxDims[0], boxDims[0], boxDims[0]}
	case 3:
		copy(dims[:], boxDims)
	default:
		return errorf(ErrConfiguration, "box dimensions need 1 or 3 values, got %d", len(boxDims))
	}
	for i, d := range dims {
		if d <= 0 {
			return errorf(ErrConfiguration, "box dimension %d is not positive: %g", i, d)
		}
	}
	prev := P.gridData
	prevGrid := P.coordGrid
	if err := P.load(coords, receptor); err != nil {
		return err
	}
	grid, err := NewBoundingBoxGrid(dims, boxCenter, P.spacing, 0, P.fftOpt)
	if err == nil {
		err = P.collectParams()
	}
	if err != nil {
		P.gridData = prev
		P.coordGrid = prevGrid
		return err
	}
	P.coordGrid = grid
	P.pots = nil
	return nil
}

// BoundingBoxGrid returns the pocket box lattice.
func (P *PocketGridGenerator) BoundingBoxGrid() (*BoundingBoxGrid, error) {
	if P.coordGrid == nil {
		return nil, errorf(ErrState, "no receptor has been loaded")
	}
	return P.coordGrid, nil
}

// GenerateGrids computes the three channels in one kernel call and then
// applies the edge-repulsion guard: every point on any of the six box faces
// of the repulsive channel is overwritten with 100 times the channel's
// maximum. For boxes of 2 or fewer points per axis every point is a
// boundary point, and the guard overwrites the whole channel.
func (P *PocketGridGenerator) GenerateGrids() error {
	grid, err := P.BoundingBoxGrid()
	if err != nil {
		return errDecorate(err, "GenerateGrids")
	}
	if P.charges == nil {
		return errorf(ErrState, "parameters have not been collected: load a receptor first")
	}
	e, a, rep := P.kern.GenerateGrids(grid.Points(), P.coords, P.charges, P.epsilons, P.vdwRs, P.opts)

	n := grid.PointsPerDim()
	rep3, err := NewGrid3(n, rep)
	if err != nil {
		return errDecorate(err, "GenerateGrids")
	}
	guard := floats.Max(rep) * edgeRepFactor
	for z := 0; z < n[2]; z++ {
		for y := 0; y < n[1]; y++ {
			for x := 0; x < n[0]; x++ {
				if x == 0 || x == n[0]-1 || y == 0 || y == n[1]-1 || z == 0 || z == n[2]-1 {
					rep3.Set(x, y, z, guard)
				}
			}
		}
	}
	P.pots = &PotentialGrids{Elec: e, VdwAttr: a, VdwRep: rep3.Data}
	return nil
}

func (P *PocketGridGenerator) ensureGrids() error {
	if P.pots != nil {
		return nil
	}
	return P.GenerateGrids()
}

// ConvertTo3DGrid reshapes a flat box-ordered grid to 3D. Pocket grids are
// always box-shaped, so no scattering is involved.
func (P *PocketGridGenerator) ConvertTo3DGrid(gridVals []float64) (*Grid3, error) {
	grid, err := P.BoundingBoxGrid()
	if err != nil {
		return nil, errDecorate(err, "ConvertTo3DGrid")
	}
	g3, err := NewGrid3(grid.PointsPerDim(), gridVals)
	if err != nil {
		return nil, errDecorate(err, "ConvertTo3DGrid")
	}
	return g3, nil
}

// ElecGrid returns the electrostatic grid as a 3D array.
func (P *PocketGridGenerator) ElecGrid() (*Grid3, error) {
	if err := P.ensureGrids(); err != nil {
		return nil, err
	}
	return P.ConvertTo3DGrid(P.pots.Elec)
}

// AttrVdwGrid returns the attractive van der Waals grid as a 3D array.
func (P *PocketGridGenerator) AttrVdwGrid() (*Grid3, error) {
	if err := P.ensureGrids(); err != nil {
		return nil, err
	}
	return P.ConvertTo3DGrid(P.pots.VdwAttr)
}

// RepVdwGrid returns the repulsive van der Waals grid, with the boundary
// guard applied, as a 3D array.
func (P *PocketGridGenerator) RepVdwGrid() (*Grid3, error) {
	if err := P.ensureGrids(); err != nil {
		return nil, err
	}
	return P.ConvertTo3DGrid(P.pots.VdwRep)
}

// PotentialGrids returns the three channels as 3D arrays.
func (P *PocketGridGenerator) PotentialGrids() (*Potential3D, error) {
	if err := P.ensureGrids(); err != nil {
		return nil, err
	}
	e, err := P.ConvertTo3DGrid(P.pots.Elec)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	a, err := P.ConvertTo3DGrid(P.pots.VdwAttr)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	r, err := P.ConvertTo3DGrid(P.pots.VdwRep)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	return &Potential3D{Elec: e, VdwAttr: a, VdwRep: r}, nil
}

// PocketAtomIndices returns the indices of the receptor atoms lying inside
// the pocket box, for inspection of what the grid actually "sees".
func (P *PocketGridGenerator) PocketAtomIndices() ([]int, error) {
	grid, err := P.BoundingBoxGrid()
	if err != nil {
		return nil, errDecorate(err, "PocketAtomIndices")
	}
	min := grid.MinCoords()
	n := grid.PointsPerDim()
	var max [3]float64
	for i := 0; i < 3; i++ {
		max[i] = min[i] + grid.Spacing()*float64(n[i]-1)
	}
	var ret []int
	rows, _ := P.coords.Dims()
	for i := 0; i < rows; i++ {
		in := true
		for j := 0; j < 3; j++ {
			v := P.coords.At(i, j)
			if v < min[j] || v > max[j] {
				in = false
				break
			}
		}
		if in {
			ret = append(ret, i)
		}
	}
	return ret, nil
}

// SaveDX writes a box-ordered grid to a DX file using the pocket box
// metadata.
func (P *PocketGridGenerator) SaveDX(filename string, gridVals []float64) error {
	grid, err := P.BoundingBoxGrid()
	if err != nil {
		return errDecorate(err, "SaveDX")
	}
	return SaveDX(filename, gridVals, grid.PointsPerDim(), grid.MinCoords(), grid.Spacing())
}
