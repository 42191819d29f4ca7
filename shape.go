/*
 * shape.go, part of godock.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Grid point ordering: all lattices are stored flat with x varying fastest,
//i.e. the point (x,y,z) of a box with nx*ny*nz points sits at index
//x + nx*(y + ny*z). Every flat grid in this package follows this order.

// The recognized grid geometries, by name.
const (
	ShapeCubic           = "cubic"
	ShapeBoundingBox     = "bounding_box"
	ShapeTruncatedSphere = "truncated_sphere"
	ShapeConvexHull      = "convex_hull"
)

// GridShapes lists the valid grid geometry names.
var GridShapes = []string{ShapeCubic, ShapeBoundingBox, ShapeTruncatedSphere, ShapeConvexHull}

// Shape is a regular lattice of 3D points covering some geometric domain.
// It is immutable after construction.
type Shape interface {
	//Points returns the lattice points as an (N,3) matrix, in the
	//package's point order. For non-box geometries only the points inside
	//the geometry are present.
	Points() *mat.Dense
	//NPoints returns the number of points in the shape.
	NPoints() int
	//PointsPerDim returns the per-axis point counts of the (equivalent)
	//bounding-box lattice.
	PointsPerDim() [3]int
	//MinCoords returns the minimum corner of the (equivalent) bounding-box
	//lattice.
	MinCoords() [3]float64
	//Spacing returns the lattice spacing, in Angstrom.
	Spacing() float64
}

// InBoxer is implemented by the non-box shapes. It exposes, for every point
// of the shape (in the shape's own order), the index that point has in the
// equivalent bounding-box lattice. The indices are unique and strictly
// increasing.
type InBoxer interface {
	GridIndicesInBox() []int
}

//lattice is the shared implementation of a full rectangular grid. The box
//shapes use it directly; the truncated sphere and the convex hull embed it
//for the bounding-box metadata and keep their filtered points on the side.
type lattice struct {
	spacing      float64
	pointsPerDim [3]int
	minCoords    [3]float64
	points       *mat.Dense
}

func (L *lattice) Points() *mat.Dense    { return L.points }
func (L *lattice) NPoints() int          { r, _ := L.points.Dims(); return r }
func (L *lattice) PointsPerDim() [3]int  { return L.pointsPerDim }
func (L *lattice) MinCoords() [3]float64 { return L.minCoords }
func (L *lattice) Spacing() float64      { return L.spacing }

//newLattice builds the full rectangular lattice covering dims (per axis
//physical extents) around center, with the given spacing and padding added
//on both sides of each axis. If cubic, all three axes get the point count of
//the largest one. If fftOpt, point counts are rounded up to 5-smooth
//integers, which keep FFT sizes friendly.
func newLattice(dims, center [3]float64, spacing, padding float64, fftOpt, cubic bool) (*lattice, error) {
	if spacing <= 0 {
		return nil, errorf(ErrConfiguration, "grid spacing must be positive, got %g", spacing)
	}
	if padding < 0 {
		return nil, errorf(ErrConfiguration, "negative padding %g", padding)
	}
	var n [3]int
	for i := 0; i < 3; i++ {
		d := dims[i]
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, errorf(ErrGeometry, "degenerate extent %g on axis %d", d, i)
		}
		n[i] = int(math.Ceil((d+2*padding)/spacing)) + 1
	}
	if cubic {
		max := n[0]
		if n[1] > max {
			max = n[1]
		}
		if n[2] > max {
			max = n[2]
		}
		n = [3]int{max, max, max}
	}
	if fftOpt {
		for i := range n {
			n[i] = nextFFTSize(n[i])
		}
	}
	L := &lattice{spacing: spacing, pointsPerDim: n}
	for i := 0; i < 3; i++ {
		L.minCoords[i] = center[i] - spacing*float64(n[i]-1)/2
	}
	pts := mat.NewDense(n[0]*n[1]*n[2], 3, nil)
	row := 0
	for z := 0; z < n[2]; z++ {
		for y := 0; y < n[1]; y++ {
			for x := 0; x < n[0]; x++ {
				pts.Set(row, 0, L.minCoords[0]+spacing*float64(x))
				pts.Set(row, 1, L.minCoords[1]+spacing*float64(y))
				pts.Set(row, 2, L.minCoords[2]+spacing*float64(z))
				row++
			}
		}
	}
	L.points = pts
	return L, nil
}

//nextFFTSize returns the smallest integer >= n whose only prime factors are
//2, 3 and 5.
func nextFFTSize(n int) int {
	if n < 1 {
		return 1
	}
	for ; ; n++ {
		m := n
		for _, p := range []int{2, 3, 5} {
			for m%p == 0 {
				m /= p
			}
		}
		if m == 1 {
			return n
		}
	}
}

// CubeGrid is a lattice with the same extent, and the same number of points,
// on all three axes.
type CubeGrid struct {
	*lattice
}

// NewCubeGrid builds a cubic lattice sized to the largest of dims plus
// padding on both sides.
func NewCubeGrid(dims, center [3]float64, spacing, padding float64, fftOpt bool) (*CubeGrid, error) {
	L, err := newLattice(dims, center, spacing, padding, fftOpt, true)
	if err != nil {
		return nil, errDecorate(err, "NewCubeGrid")
	}
	return &CubeGrid{lattice: L}, nil
}

// BoundingBoxGrid is a rectangular lattice covering the per-axis extents
// plus padding.
type BoundingBoxGrid struct {
	*lattice
}

// NewBoundingBoxGrid builds a rectangular lattice with independently sized
// axes.
func NewBoundingBoxGrid(dims, center [3]float64, spacing, padding float64, fftOpt bool) (*BoundingBoxGrid, error) {
	L, err := newLattice(dims, center, spacing, padding, fftOpt, false)
	if err != nil {
		return nil, errDecorate(err, "NewBoundingBoxGrid")
	}
	return &BoundingBoxGrid{lattice: L}, nil
}

// TruncatedSphereGrid is the bounding-box lattice restricted to the points
// within a sphere of radius half the largest box extent, centered at the box
// center.
type TruncatedSphereGrid struct {
	*lattice //the full bounding-box lattice; PointsPerDim/MinCoords refer to it
	shapePts *mat.Dense
	inBox    []int
}

// NewTruncatedSphereGrid builds the truncated-sphere lattice.
func NewTruncatedSphereGrid(dims, center [3]float64, spacing, padding float64, fftOpt bool) (*TruncatedSphereGrid, error) {
	L, err := newLattice(dims, center, spacing, padding, fftOpt, false)
	if err != nil {
		return nil, errDecorate(err, "NewTruncatedSphereGrid")
	}
	n := L.pointsPerDim
	var boxCenter [3]float64
	radius := 0.0
	for i := 0; i < 3; i++ {
		ext := spacing * float64(n[i]-1)
		if ext/2 > radius {
			radius = ext / 2
		}
		boxCenter[i] = L.minCoords[i] + ext/2
	}
	r2 := radius * radius
	var inBox []int
	total := n[0] * n[1] * n[2]
	for i := 0; i < total; i++ {
		dx := L.points.At(i, 0) - boxCenter[0]
		dy := L.points.At(i, 1) - boxCenter[1]
		dz := L.points.At(i, 2) - boxCenter[2]
		if dx*dx+dy*dy+dz*dz <= r2 {
			inBox = append(inBox, i)
		}
	}
	pts := mat.NewDense(len(inBox), 3, nil)
	for k, id := range inBox {
		pts.Set(k, 0, L.points.At(id, 0))
		pts.Set(k, 1, L.points.At(id, 1))
		pts.Set(k, 2, L.points.At(id, 2))
	}
	return &TruncatedSphereGrid{lattice: L, shapePts: pts, inBox: inBox}, nil
}

func (S *TruncatedSphereGrid) Points() *mat.Dense { return S.shapePts }
func (S *TruncatedSphereGrid) NPoints() int       { r, _ := S.shapePts.Dims(); return r }

// GridIndicesInBox returns, for every point of the sphere, its index in the
// bounding-box lattice.
func (S *TruncatedSphereGrid) GridIndicesInBox() []int { return S.inBox }

// ConvexHullGrid is the bounding-box lattice restricted to the points inside
// the convex hull of the input coordinates, enlarged outward by the padding
// along every facet normal.
type ConvexHullGrid struct {
	*lattice //the full bounding-box lattice; PointsPerDim/MinCoords refer to it
	shapePts *mat.Dense
	inBox    []int
	hull     *Hull
	padding  float64
}

// NewConvexHullGrid computes the convex hull of coords, enlarges it by
// padding, and keeps the lattice points inside the enlarged hull. It fails
// with a geometry error if the hull cannot be computed (fewer than 4
// non-coplanar points).
func NewConvexHullGrid(coords *mat.Dense, dims, center [3]float64, spacing, padding float64, fftOpt bool) (*ConvexHullGrid, error) {
	L, err := newLattice(dims, center, spacing, padding, fftOpt, false)
	if err != nil {
		return nil, errDecorate(err, "NewConvexHullGrid")
	}
	hull, err := NewHull(coords)
	if err != nil {
		return nil, errDecorate(err, "NewConvexHullGrid")
	}
	var inBox []int
	total := L.pointsPerDim[0] * L.pointsPerDim[1] * L.pointsPerDim[2]
	for i := 0; i < total; i++ {
		p := [3]float64{L.points.At(i, 0), L.points.At(i, 1), L.points.At(i, 2)}
		if hull.Contains(p, padding) {
			inBox = append(inBox, i)
		}
	}
	pts := mat.NewDense(len(inBox), 3, nil)
	for k, id := range inBox {
		pts.Set(k, 0, L.points.At(id, 0))
		pts.Set(k, 1, L.points.At(id, 1))
		pts.Set(k, 2, L.points.At(id, 2))
	}
	return &ConvexHullGrid{lattice: L, shapePts: pts, inBox: inBox, hull: hull, padding: padding}, nil
}

func (H *ConvexHullGrid) Points() *mat.Dense { return H.shapePts }
func (H *ConvexHullGrid) NPoints() int       { r, _ := H.shapePts.Dims(); return r }

// GridIndicesInBox returns, for every point of the hull grid, its index in
// the bounding-box lattice.
func (H *ConvexHullGrid) GridIndicesInBox() []int { return H.inBox }

// Hull returns the convex hull of the input coordinates, for surface
// inspection by external viewers.
func (H *ConvexHullGrid) Hull() *Hull { return H.hull }

// EnlargedHullVertices returns the positions of the hull vertices displaced
// outward by the grid's padding, one row per hull vertex, in the order of
// Hull().VertexIDs().
func (H *ConvexHullGrid) EnlargedHullVertices() *mat.Dense {
	return H.hull.EnlargedVertices(H.padding)
}

// Grid3 is a 3D view over a flat, box-ordered grid. The flat index of the
// point (x,y,z) is x + Dims[0]*(y + Dims[1]*z).
type Grid3 struct {
	Dims [3]int
	Data []float64
}

// NewGrid3 wraps vals, which must have exactly dims[0]*dims[1]*dims[2]
// elements, as a 3D grid. The data is not copied.
func NewGrid3(dims [3]int, vals []float64) (*Grid3, error) {
	if len(vals) != dims[0]*dims[1]*dims[2] {
		return nil, errorf(ErrShapeMismatch, "%d values cannot fill a %dx%dx%d grid", len(vals), dims[0], dims[1], dims[2])
	}
	return &Grid3{Dims: dims, Data: vals}, nil
}

//Idx returns the flat index of the point (x,y,z). Panics if out of range,
//as this is a fundamental accessor.
func (g *Grid3) Idx(x, y, z int) int {
	if x < 0 || y < 0 || z < 0 || x >= g.Dims[0] || y >= g.Dims[1] || z >= g.Dims[2] {
		panic("Grid3: index out of range")
	}
	return x + g.Dims[0]*(y+g.Dims[1]*z)
}

// At returns the value at the point (x,y,z).
func (g *Grid3) At(x, y, z int) float64 { return g.Data[g.Idx(x, y, z)] }

// Set sets the value at the point (x,y,z).
func (g *Grid3) Set(x, y, z int, v float64) { g.Data[g.Idx(x, y, z)] = v }
