/*
 * shape_test.go, part of godock.
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
	"testing"
)

//A 10x10x10 A box at 1 A spacing must give 11 points per axis with the
//first one at -5: both ends of each axis carry a point.
func TestBoundingBoxSizing(Te *testing.T) {
	g, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1.0, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	if g.PointsPerDim() != [3]int{11, 11, 11} {
		Te.Error("wrong points per dim", g.PointsPerDim())
	}
	if g.MinCoords() != [3]float64{-5, -5, -5} {
		Te.Error("wrong min coords", g.MinCoords())
	}
	if g.NPoints() != 11*11*11 {
		Te.Error("wrong number of points", g.NPoints())
	}
	//x varies fastest
	pts := g.Points()
	if pts.At(0, 0) != -5 || pts.At(1, 0) != -4 || pts.At(1, 1) != -5 {
		Te.Error("wrong point order")
	}
	last := g.NPoints() - 1
	if pts.At(last, 0) != 5 || pts.At(last, 1) != 5 || pts.At(last, 2) != 5 {
		Te.Error("wrong last point")
	}
}

func TestPaddingGrowsTheGrid(Te *testing.T) {
	small, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1.0, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	big, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1.0, 2.0, false)
	if err != nil {
		Te.Fatal(err)
	}
	//padding goes on both sides of every axis
	if big.PointsPerDim() != [3]int{15, 15, 15} {
		Te.Error("wrong padded points per dim", big.PointsPerDim())
	}
	for i := 0; i < 3; i++ {
		if big.PointsPerDim()[i] < small.PointsPerDim()[i] {
			Te.Error("padding shrank the grid on axis", i)
		}
		if big.MinCoords()[i] > small.MinCoords()[i] {
			Te.Error("padding moved the min corner inward on axis", i)
		}
	}
	//finer spacing never loses points either
	fine, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 0.5, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if fine.PointsPerDim()[i] < small.PointsPerDim()[i] {
			Te.Error("finer spacing lost points on axis", i)
		}
	}
}

func TestCubeGridIsCubic(Te *testing.T) {
	g, err := NewCubeGrid([3]float64{10, 4, 6}, [3]float64{0, 0, 0}, 1.0, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	if g.PointsPerDim() != [3]int{11, 11, 11} {
		Te.Error("cube grid is not cubic", g.PointsPerDim())
	}
}

func TestBadLatticeArgs(Te *testing.T) {
	if _, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 0, 0, false); !IsConfiguration(err) {
		Te.Error("zero spacing accepted")
	}
	if _, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1, -1, false); !IsConfiguration(err) {
		Te.Error("negative padding accepted")
	}
	if _, err := NewBoundingBoxGrid([3]float64{math.NaN(), 10, 10}, [3]float64{0, 0, 0}, 1, 0, false); !IsGeometry(err) {
		Te.Error("NaN extent accepted")
	}
}

func TestNextFFTSize(Te *testing.T) {
	cases := map[int]int{1: 1, 6: 6, 11: 12, 13: 15, 17: 18, 121: 125}
	for in, want := range cases {
		if got := nextFFTSize(in); got != want {
			Te.Error("nextFFTSize", in, "gave", got, "want", want)
		}
	}
}

func TestFFTOptimizedLattice(Te *testing.T) {
	//11 points per axis round up to 12
	g, err := NewBoundingBoxGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1.0, 0, true)
	if err != nil {
		Te.Fatal(err)
	}
	if g.PointsPerDim() != [3]int{12, 12, 12} {
		Te.Error("fft rounding failed", g.PointsPerDim())
	}
	//the lattice stays centered: min = center - spacing*(n-1)/2
	if g.MinCoords() != [3]float64{-5.5, -5.5, -5.5} {
		Te.Error("fft rounding moved the center", g.MinCoords())
	}
}

func TestTruncatedSphere(Te *testing.T) {
	g, err := NewTruncatedSphereGrid([3]float64{10, 10, 10}, [3]float64{0, 0, 0}, 1.0, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	full := 11 * 11 * 11
	if g.NPoints() >= full || g.NPoints() == 0 {
		Te.Error("sphere point count out of range", g.NPoints())
	}
	//every kept point is within the radius (half the largest box extent)
	pts := g.Points()
	for i := 0; i < g.NPoints(); i++ {
		x, y, z := pts.At(i, 0), pts.At(i, 1), pts.At(i, 2)
		if x*x+y*y+z*z > 25+1e-9 {
			Te.Error("point", i, "outside the sphere")
		}
	}
	ids := g.GridIndicesInBox()
	if len(ids) != g.NPoints() {
		Te.Error("in-box indices do not match the points")
	}
	for k := 1; k < len(ids); k++ {
		if ids[k] <= ids[k-1] {
			Te.Fatal("in-box indices not strictly increasing")
		}
	}
	if ids[len(ids)-1] >= full {
		Te.Error("in-box index out of the box")
	}
}

func TestGrid3(Te *testing.T) {
	if _, err := NewGrid3([3]int{2, 2, 2}, make([]float64, 7)); !IsShapeMismatch(err) {
		Te.Error("size mismatch accepted")
	}
	g, err := NewGrid3([3]int{2, 3, 4}, make([]float64, 24))
	if err != nil {
		Te.Fatal(err)
	}
	if g.Idx(1, 0, 0) != 1 || g.Idx(0, 1, 0) != 2 || g.Idx(0, 0, 1) != 6 {
		Te.Error("wrong index order")
	}
	g.Set(1, 2, 3, 42)
	if g.At(1, 2, 3) != 42 || g.Data[23] != 42 {
		Te.Error("Set/At disagree with the flat layout")
	}
}
