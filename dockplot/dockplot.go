/*
 * dockplot.go, part of godock.
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

/*Package dockplot draws quick visual checks on generated grids: heatmaps of
grid planes, and Wavefront OBJ dumps of convex hulls to open in a molecular
viewer next to the structure.*/
package dockplot

import (
	"fmt"
	"io"
	"os"

	"github.com/rmera/godock"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//gridPlane adapts one z plane of a Grid3 to the plotter's GridXYZ, with the
//axes in Angstrom.
type gridPlane struct {
	g       *dock.Grid3
	z       int
	min     [3]float64
	spacing float64
}

func (p gridPlane) Dims() (int, int)   { return p.g.Dims[0], p.g.Dims[1] }
func (p gridPlane) X(c int) float64    { return p.min[0] + p.spacing*float64(c) }
func (p gridPlane) Y(r int) float64    { return p.min[1] + p.spacing*float64(r) }
func (p gridPlane) Z(c, r int) float64 { return p.g.At(c, r, p.z) }

// GridPlanePNG draws the z-th xy plane of a 3D grid as a heatmap and saves
// it as plotname.png. min and spacing place the axes in real coordinates;
// for a receptor grid they come from the shape's MinCoords and Spacing.
func GridPlanePNG(g *dock.Grid3, z int, min [3]float64, spacing float64, title, plotname string) error {
	if g == nil {
		return fmt.Errorf("dockplot: nil grid")
	}
	if z < 0 || z >= g.Dims[2] {
		return fmt.Errorf("dockplot: plane %d out of range for a grid of %d planes", z, g.Dims[2])
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (A)"
	p.Y.Label.Text = "y (A)"
	h := plotter.NewHeatMap(gridPlane{g: g, z: z, min: min, spacing: spacing}, palette.Heat(12, 1))
	p.Add(h)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

// WriteHullOBJ writes a hull as a Wavefront OBJ mesh. If enlarged is true
// the vertices are the ones displaced outward by padding; the facet
// topology is the same either way.
func WriteHullOBJ(w io.Writer, h *dock.Hull, enlarged bool, padding float64) error {
	if h == nil {
		return fmt.Errorf("dockplot: nil hull")
	}
	ids := h.VertexIDs()
	//OBJ indices are 1-based and only hull vertices are written
	objID := make(map[int]int, len(ids))
	if enlarged {
		verts := h.EnlargedVertices(padding)
		for i, id := range ids {
			objID[id] = i + 1
			if _, err := fmt.Fprintf(w, "v %f %f %f\n", verts.At(i, 0), verts.At(i, 1), verts.At(i, 2)); err != nil {
				return err
			}
		}
	} else {
		pts := h.Points()
		for i, id := range ids {
			objID[id] = i + 1
			if _, err := fmt.Fprintf(w, "v %f %f %f\n", pts.At(id, 0), pts.At(id, 1), pts.At(id, 2)); err != nil {
				return err
			}
		}
	}
	for _, s := range h.Simplices() {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", objID[s[0]], objID[s[1]], objID[s[2]]); err != nil {
			return err
		}
	}
	return nil
}

// SaveHullOBJ writes a hull mesh to a file.
func SaveHullOBJ(filename string, h *dock.Hull, enlarged bool, padding float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteHullOBJ(f, h, enlarged, padding); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
