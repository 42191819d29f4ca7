/*
 * receptor.go, part of godock.
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

// ReceptorGridGenerator computes potential-energy grids for a receptor
// molecule over any of the four grid geometries. Values are clamped by the
// kernel options but carry no boundary guard; see PocketGridGenerator for
// the guarded, fixed-size variant.
//
// Not safe for concurrent use.
type ReceptorGridGenerator struct {
	gridData
	kern      Kernel
	opts      *kernel.Options
	shapeName string
	coordGrid Shape

	dists *mat.Dense
	pots  *PotentialGrids
}

// NewReceptorGridGenerator returns a generator producing grids with the
// given spacing and padding (both in Angstrom). If fftOpt, per-axis point
// counts are rounded up to FFT-friendly sizes. A nil opts selects
// kernel.DefaultOptions().
func NewReceptorGridGenerator(src ParamSource, spacing, padding float64, fftOpt bool, opts *kernel.Options) *ReceptorGridGenerator {
	if opts == nil {
		opts = kernel.DefaultOptions()
	}
	R := new(ReceptorGridGenerator)
	R.gridData = gridData{spacing: spacing, padding: padding, fftOpt: fftOpt, src: src}
	R.opts = opts
	R.kern = kernel.Reference{}
	return R
}

// SetKernel replaces the numeric kernel. Cached grids are invalidated.
func (R *ReceptorGridGenerator) SetKernel(k Kernel) {
	R.kern = k
	R.clearGrids()
}

// Options returns the energy options passed verbatim to the kernel.
func (R *ReceptorGridGenerator) Options() *kernel.Options { return R.opts }

func (R *ReceptorGridGenerator) clearGrids() {
	R.dists = nil
	R.pots = nil
}

// LoadEntity loads an entity (and its coordinates, one row per atom, in
// atom order), selects the named grid geometry among "cubic",
// "bounding_box", "truncated_sphere" and "convex_hull", and collects the
// per-atom parameters. All grids and shapes cached from a previous load are
// invalidated; on failure the previous state is kept.
func (R *ReceptorGridGenerator) LoadEntity(coords *mat.Dense, mol Entity, gridShape string) error {
	valid := false
	for _, s := range GridShapes {
		if s == gridShape {
			valid = true
			break
		}
	}
	if !valid {
		return errorf(ErrConfiguration, "grid shape must be one of %v, got %q", GridShapes, gridShape)
	}
	prev := R.gridData //restored if anything below fails
	if err := R.load(coords, mol); err != nil {
		return err
	}
	var grid Shape
	var err error
	switch gridShape {
	case ShapeCubic:
		grid, err = R.CubicGrid()
	case ShapeBoundingBox:
		grid, err = R.BoundingBoxGrid()
	case ShapeTruncatedSphere:
		grid, err = R.TruncatedSphereGrid()
	case ShapeConvexHull:
		grid, err = R.ConvexHullGrid()
	}
	if err == nil {
		err = R.collectParams()
	}
	if err != nil {
		R.gridData = prev
		return err
	}
	R.shapeName = gridShape
	R.coordGrid = grid
	R.clearGrids()
	return nil
}

// GridShape returns the name of the active grid geometry.
func (R *ReceptorGridGenerator) GridShape() string { return R.shapeName }

// CoordGrid returns the lattice used for the energy calculations.
func (R *ReceptorGridGenerator) CoordGrid() (Shape, error) {
	if R.coordGrid == nil {
		return nil, errorf(ErrState, "no grid is loaded: load an entity first")
	}
	return R.coordGrid, nil
}

// PairwiseDists returns the distances between every grid point and every
// receptor atom. The matrix is computed on first call and cached until the
// next load.
func (R *ReceptorGridGenerator) PairwiseDists() (*mat.Dense, error) {
	grid, err := R.CoordGrid()
	if err != nil {
		return nil, errDecorate(err, "PairwiseDists")
	}
	if R.dists == nil {
		R.dists = R.kern.PairwiseDist(grid.Points(), R.coords)
	}
	return R.dists, nil
}

// GenerateGrids computes the three potential channels over the active
// shape's points in one kernel call. It is invoked lazily by the grid
// accessors; calling it directly forces recomputation.
func (R *ReceptorGridGenerator) GenerateGrids() error {
	grid, err := R.CoordGrid()
	if err != nil {
		return errDecorate(err, "GenerateGrids")
	}
	if R.charges == nil {
		return errorf(ErrState, "parameters have not been collected: load an entity first")
	}
	e, a, rep := R.kern.GenerateGrids(grid.Points(), R.coords, R.charges, R.epsilons, R.vdwRs, R.opts)
	R.pots = &PotentialGrids{Elec: e, VdwAttr: a, VdwRep: rep}
	return nil
}

func (R *ReceptorGridGenerator) ensureGrids() error {
	if R.pots != nil {
		return nil
	}
	return R.GenerateGrids()
}

// ElecGrid returns the electrostatic grid in the shape's own point order.
func (R *ReceptorGridGenerator) ElecGrid() ([]float64, error) {
	if err := R.ensureGrids(); err != nil {
		return nil, err
	}
	return R.pots.Elec, nil
}

// AttrVdwGrid returns the attractive van der Waals grid in the shape's own
// point order.
func (R *ReceptorGridGenerator) AttrVdwGrid() ([]float64, error) {
	if err := R.ensureGrids(); err != nil {
		return nil, err
	}
	return R.pots.VdwAttr, nil
}

// RepVdwGrid returns the repulsive van der Waals grid in the shape's own
// point order.
func (R *ReceptorGridGenerator) RepVdwGrid() ([]float64, error) {
	if err := R.ensureGrids(); err != nil {
		return nil, err
	}
	return R.pots.VdwRep, nil
}

// ConvertToBoxedGrid scatters a shape-ordered grid into a zero-initialized
// bounding-box-ordered flat grid, using the shape's in-box indices. Grids
// from the cubic and bounding-box geometries are already box-shaped and are
// returned unchanged.
func (R *ReceptorGridGenerator) ConvertToBoxedGrid(grid []float64) ([]float64, error) {
	shape, err := R.CoordGrid()
	if err != nil {
		return nil, errDecorate(err, "ConvertToBoxedGrid")
	}
	ib, ok := shape.(InBoxer)
	if !ok {
		return grid, nil
	}
	ids := ib.GridIndicesInBox()
	if len(grid) != len(ids) {
		return nil, errorf(ErrShapeMismatch, "grid has %d values but the shape has %d points", len(grid), len(ids))
	}
	n := shape.PointsPerDim()
	boxed := make([]float64, n[0]*n[1]*n[2])
	for k, id := range ids {
		boxed[id] = grid[k]
	}
	return boxed, nil
}

// ConvertTo3DGrid converts a shape-ordered grid to a 3D bounding-box grid,
// with the points outside the shape's domain set to zero.
func (R *ReceptorGridGenerator) ConvertTo3DGrid(grid []float64) (*Grid3, error) {
	boxed, err := R.ConvertToBoxedGrid(grid)
	if err != nil {
		return nil, errDecorate(err, "ConvertTo3DGrid")
	}
	shape, _ := R.CoordGrid()
	g3, err := NewGrid3(shape.PointsPerDim(), boxed)
	if err != nil {
		return nil, errDecorate(err, "ConvertTo3DGrid")
	}
	return g3, nil
}

// PotentialGrids returns the three channels converted to 3D bounding-box
// grids.
func (R *ReceptorGridGenerator) PotentialGrids() (*Potential3D, error) {
	if err := R.ensureGrids(); err != nil {
		return nil, err
	}
	e, err := R.ConvertTo3DGrid(R.pots.Elec)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	a, err := R.ConvertTo3DGrid(R.pots.VdwAttr)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	r, err := R.ConvertTo3DGrid(R.pots.VdwRep)
	if err != nil {
		return nil, errDecorate(err, "PotentialGrids")
	}
	return &Potential3D{Elec: e, VdwAttr: a, VdwRep: r}, nil
}

// SaveDX writes a box-ordered grid to a DX file using the metadata of the
// active shape's bounding box.
func (R *ReceptorGridGenerator) SaveDX(filename string, gridVals []float64) error {
	shape, err := R.CoordGrid()
	if err != nil {
		return errDecorate(err, "SaveDX")
	}
	return SaveDX(filename, gridVals, shape.PointsPerDim(), shape.MinCoords(), shape.Spacing())
}
