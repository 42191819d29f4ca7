/*
 * generator.go, part of godock.
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
	"gonum.org/v1/gonum/mat"
)

//gridData is the state shared by the three generators: the loaded entity
//and its coordinates, the resolved nonbonded table, the packed parameter
//slices and the four memoized shape caches. It is a two-state machine,
//unloaded then loaded; load() moves it to loaded and wipes every derived
//field in one step, never field by field.
type gridData struct {
	spacing float64
	padding float64
	fftOpt  bool
	src     ParamSource

	mol       Entity
	coords    *mat.Dense
	nonbonded NonbondedTable

	//packed parallel parameter arrays, in atom order
	charges  []float64
	epsilons []float64
	vdwRs    []float64

	//shape caches
	cubic  *CubeGrid
	bbox   *BoundingBoxGrid
	sphere *TruncatedSphereGrid
	hull   *ConvexHullGrid
}

//load records the entity and a copy of its coordinates, resolves the
//nonbonded tables and invalidates all cached shapes and parameters.
func (G *gridData) load(coords *mat.Dense, mol Entity) error {
	if coords == nil || mol == nil {
		return errorf(ErrConfiguration, "nil coordinates or entity")
	}
	r, c := coords.Dims()
	if c != 3 {
		return errorf(ErrShapeMismatch, "coordinates must have 3 columns, got %d", c)
	}
	if r == 0 {
		return errorf(ErrGeometry, "entity has no atoms")
	}
	if r != len(mol.Atoms()) {
		return errorf(ErrShapeMismatch, "%d coordinates for %d atoms", r, len(mol.Atoms()))
	}
	nb, err := NonbondedDict(G.src, mol)
	if err != nil {
		return err
	}
	G.mol = mol
	G.coords = mat.DenseCopyOf(coords)
	G.nonbonded = nb
	G.clearShapes()
	G.clearParams()
	return nil
}

func (G *gridData) loaded() bool { return G.coords != nil }

func (G *gridData) clearShapes() {
	G.cubic = nil
	G.bbox = nil
	G.sphere = nil
	G.hull = nil
}

func (G *gridData) clearParams() {
	G.charges = nil
	G.epsilons = nil
	G.vdwRs = nil
}

// Atoms returns the atoms the grids are generated from, in the order their
// parameters and coordinates are packed.
func (G *gridData) Atoms() []*Atom {
	if G.mol == nil {
		return nil
	}
	return G.mol.Atoms()
}

// Coords returns the loaded coordinates, or nil if nothing is loaded. The
// returned matrix is owned by the generator.
func (G *gridData) Coords() *mat.Dense { return G.coords }

// Spacing returns the grid spacing.
func (G *gridData) Spacing() float64 { return G.spacing }

// CoordCenter returns the center of the loaded coordinates: the midpoint of
// the per-axis minimum and maximum.
func (G *gridData) CoordCenter() ([3]float64, error) {
	if !G.loaded() {
		return [3]float64{}, errorf(ErrState, "no entity has been loaded")
	}
	min, max := coordExtents(G.coords)
	return [3]float64{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}, nil
}

// MaxDims returns the per-axis extents (in Angstrom) of the bounding box of
// the loaded coordinates.
func (G *gridData) MaxDims() ([3]float64, error) {
	if !G.loaded() {
		return [3]float64{}, errorf(ErrState, "no entity has been loaded")
	}
	min, max := coordExtents(G.coords)
	return [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}, nil
}

//Each shape accessor constructs its lattice on first use and caches it
//until the next load.

// CubicGrid returns the cubic lattice covering the loaded coordinates.
func (G *gridData) CubicGrid() (*CubeGrid, error) {
	if G.cubic != nil {
		return G.cubic, nil
	}
	dims, center, err := G.extentArgs()
	if err != nil {
		return nil, errDecorate(err, "CubicGrid")
	}
	G.cubic, err = NewCubeGrid(dims, center, G.spacing, G.padding, G.fftOpt)
	if err != nil {
		return nil, errDecorate(err, "CubicGrid")
	}
	return G.cubic, nil
}

// BoundingBoxGrid returns the bounding-box lattice covering the loaded
// coordinates.
func (G *gridData) BoundingBoxGrid() (*BoundingBoxGrid, error) {
	if G.bbox != nil {
		return G.bbox, nil
	}
	dims, center, err := G.extentArgs()
	if err != nil {
		return nil, errDecorate(err, "BoundingBoxGrid")
	}
	G.bbox, err = NewBoundingBoxGrid(dims, center, G.spacing, G.padding, G.fftOpt)
	if err != nil {
		return nil, errDecorate(err, "BoundingBoxGrid")
	}
	return G.bbox, nil
}

// TruncatedSphereGrid returns the truncated-sphere lattice covering the
// loaded coordinates.
func (G *gridData) TruncatedSphereGrid() (*TruncatedSphereGrid, error) {
	if G.sphere != nil {
		return G.sphere, nil
	}
	dims, center, err := G.extentArgs()
	if err != nil {
		return nil, errDecorate(err, "TruncatedSphereGrid")
	}
	G.sphere, err = NewTruncatedSphereGrid(dims, center, G.spacing, G.padding, G.fftOpt)
	if err != nil {
		return nil, errDecorate(err, "TruncatedSphereGrid")
	}
	return G.sphere, nil
}

// ConvexHullGrid returns the enlarged-convex-hull lattice covering the
// loaded coordinates.
func (G *gridData) ConvexHullGrid() (*ConvexHullGrid, error) {
	if G.hull != nil {
		return G.hull, nil
	}
	dims, center, err := G.extentArgs()
	if err != nil {
		return nil, errDecorate(err, "ConvexHullGrid")
	}
	G.hull, err = NewConvexHullGrid(G.coords, dims, center, G.spacing, G.padding, G.fftOpt)
	if err != nil {
		return nil, errDecorate(err, "ConvexHullGrid")
	}
	return G.hull, nil
}

func (G *gridData) extentArgs() ([3]float64, [3]float64, error) {
	dims, err := G.MaxDims()
	if err != nil {
		return dims, dims, err
	}
	center, err := G.CoordCenter()
	return dims, center, err
}

//collectParams walks the loaded atoms in order and packs charge, well
//depth and rmin (2*rmin_half) into the three parallel slices. Any atom
//without topology assignment fails the whole collection; no partial
//results are kept.
func (G *gridData) collectParams() error {
	if !G.loaded() {
		return errorf(ErrState, "no entity has been loaded")
	}
	ats := G.Atoms()
	charges := make([]float64, len(ats))
	epsilons := make([]float64, len(ats))
	vdwRs := make([]float64, len(ats))
	for i, at := range ats {
		if at.Topo == nil {
			return errorf(ErrMissingTopology,
				"no topology assigned for atom %s of %s %d: generate topology and parameters first",
				at.Name, at.MolName, at.MolID)
		}
		nb, ok := G.nonbonded[at.Topo.Type]
		if !ok {
			return errorf(ErrMissingTopology,
				"atom type %s (atom %s of %s %d) not present in the nonbonded tables",
				at.Topo.Type, at.Name, at.MolName, at.MolID)
		}
		charges[i] = at.Topo.Charge
		epsilons[i] = nb.Epsilon
		vdwRs[i] = 2 * nb.RminHalf //the tables store rmin/2
	}
	G.charges = charges
	G.epsilons = epsilons
	G.vdwRs = vdwRs
	return nil
}
