/*
 * pocket_test.go, part of godock.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPocketLoad(Te *testing.T) {
	coords, prot := cornersProtein()
	P := NewPocketGridGenerator(testTables(), 1.0, false, nil)
	//exactly one of center and reference ligand
	if err := P.LoadReceptor(coords, prot, []float64{6}, nil, nil); !IsConfiguration(err) {
		Te.Error("neither center nor reference ligand rejected")
	}
	ref := mat.NewDense(2, 3, []float64{1, 1, 1, 3, 3, 3})
	if err := P.LoadReceptor(coords, prot, []float64{6}, []float64{0, 0, 0}, ref); !IsConfiguration(err) {
		Te.Error("both center and reference ligand accepted")
	}
	if err := P.LoadReceptor(coords, prot, []float64{6, 6}, []float64{0, 0, 0}, nil); !IsConfiguration(err) {
		Te.Error("two box dimensions accepted")
	}
	//a single dimension means a cubic box
	if err := P.LoadReceptor(coords, prot, []float64{6}, []float64{0, 0, 0}, nil); err != nil {
		Te.Fatal(err)
	}
	g, err := P.BoundingBoxGrid()
	if err != nil {
		Te.Fatal(err)
	}
	if g.PointsPerDim() != [3]int{7, 7, 7} {
		Te.Error("wrong pocket box size", g.PointsPerDim())
	}
	if g.MinCoords() != [3]float64{-3, -3, -3} {
		Te.Error("wrong pocket box corner", g.MinCoords())
	}
	//a reference ligand centers the box on its centroid
	if err := P.LoadReceptor(coords, prot, []float64{6}, nil, ref); err != nil {
		Te.Fatal(err)
	}
	g, _ = P.BoundingBoxGrid()
	if g.MinCoords() != [3]float64{-1, -1, -1} {
		Te.Error("reference ligand centroid not used", g.MinCoords())
	}
}

func TestPocketEdgeGuard(Te *testing.T) {
	coords, prot := cornersProtein()
	P := NewPocketGridGenerator(testTables(), 1.0, false, nil)
	if err := P.LoadReceptor(coords, prot, []float64{6}, []float64{0, 0, 0}, nil); err != nil {
		Te.Fatal(err)
	}
	//the unguarded repulsive channel, straight from the kernel
	g, _ := P.BoundingBoxGrid()
	_, _, raw := P.kern.GenerateGrids(g.Points(), P.coords, P.charges, P.epsilons, P.vdwRs, P.opts)
	max := raw[0]
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	rep, err := P.RepVdwGrid()
	if err != nil {
		Te.Fatal(err)
	}
	guard := max * 100
	n := g.PointsPerDim()
	raw3, _ := NewGrid3(n, raw)
	for z := 0; z < n[2]; z++ {
		for y := 0; y < n[1]; y++ {
			for x := 0; x < n[0]; x++ {
				onFace := x == 0 || x == n[0]-1 || y == 0 || y == n[1]-1 || z == 0 || z == n[2]-1
				if onFace && rep.At(x, y, z) != guard {
					Te.Fatal("face point not guarded at", x, y, z)
				}
				if !onFace && rep.At(x, y, z) != raw3.At(x, y, z) {
					Te.Fatal("interior point modified at", x, y, z)
				}
			}
		}
	}
	//the other channels carry no guard
	e, err := P.ElecGrid()
	if err != nil {
		Te.Fatal(err)
	}
	if e.Dims != n {
		Te.Error("wrong elec grid dims")
	}
}

func TestPocketAtomIndices(Te *testing.T) {
	//4 atoms, two inside the box and two outside
	coords := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1, 1, -1,
		8, 0, 0,
		0, -7, 2,
	})
	prot := testProtein(4)
	P := NewPocketGridGenerator(testTables(), 1.0, false, nil)
	if err := P.LoadReceptor(coords, prot, []float64{6}, []float64{0, 0, 0}, nil); err != nil {
		Te.Fatal(err)
	}
	ids, err := P.PocketAtomIndices()
	if err != nil {
		Te.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		Te.Error("wrong pocket atoms", ids)
	}
}
