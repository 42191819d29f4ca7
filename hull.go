/*
 * hull.go, part of godock.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//A small incremental 3D convex hull. Molecule-sized inputs are at most a few
//thousand points, so the O(n*f) visibility scan per insertion is fine and
//keeps the code simple.

//hullFace is one triangular facet, with its outward unit normal and plane
//offset (dot(normal, v) for any vertex v on the facet).
type hullFace struct {
	v      [3]int
	normal [3]float64
	offset float64
}

// Hull is the convex hull of a set of 3D points, as triangular facets with
// outward normals.
type Hull struct {
	points    *mat.Dense
	faces     []hullFace
	vertexIDs []int //sorted unique indices of points on the hull
	eps       float64
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func norm3(a [3]float64) float64 { return math.Sqrt(dot3(a, a)) }

func (h *Hull) point(i int) [3]float64 {
	return [3]float64{h.points.At(i, 0), h.points.At(i, 1), h.points.At(i, 2)}
}

//newFace builds a facet through the points a,b,c oriented so that its
//normal points away from the interior point.
func (h *Hull) newFace(a, b, c int, interior [3]float64) hullFace {
	pa, pb, pc := h.point(a), h.point(b), h.point(c)
	n := cross3(sub3(pb, pa), sub3(pc, pa))
	l := norm3(n)
	if l > 0 {
		n = [3]float64{n[0] / l, n[1] / l, n[2] / l}
	}
	f := hullFace{v: [3]int{a, b, c}, normal: n}
	f.offset = dot3(n, pa)
	if dot3(n, interior)-f.offset > 0 {
		//flip
		f.v = [3]int{a, c, b}
		f.normal = [3]float64{-n[0], -n[1], -n[2]}
		f.offset = -f.offset
	}
	return f
}

// NewHull computes the convex hull of coords, an (N,3) matrix. It fails
// with a geometry error when N < 4 or when all the points are (nearly)
// collinear or coplanar.
func NewHull(coords *mat.Dense) (*Hull, error) {
	n, c := coords.Dims()
	if c != 3 {
		return nil, errorf(ErrShapeMismatch, "coordinates must have 3 columns, got %d", c)
	}
	if n < 4 {
		return nil, errorf(ErrGeometry, "convex hull needs at least 4 points, got %d", n)
	}
	h := &Hull{points: mat.DenseCopyOf(coords)}
	//scale-aware tolerance
	min, max := coordExtents(h.points)
	scale := 0.0
	for i := 0; i < 3; i++ {
		if d := max[i] - min[i]; d > scale {
			scale = d
		}
	}
	h.eps = 1e-9 * math.Max(scale, 1)

	a, b, c2, d, err := h.initialTetra(n)
	if err != nil {
		return nil, errDecorate(err, "NewHull")
	}
	pa, pb, pc, pd := h.point(a), h.point(b), h.point(c2), h.point(d)
	interior := [3]float64{
		(pa[0] + pb[0] + pc[0] + pd[0]) / 4,
		(pa[1] + pb[1] + pc[1] + pd[1]) / 4,
		(pa[2] + pb[2] + pc[2] + pd[2]) / 4,
	}
	h.faces = []hullFace{
		h.newFace(a, b, c2, interior),
		h.newFace(a, b, d, interior),
		h.newFace(a, c2, d, interior),
		h.newFace(b, c2, d, interior),
	}
	used := map[int]bool{a: true, b: true, c2: true, d: true}
	for i := 0; i < n; i++ {
		if !used[i] {
			h.addPoint(i, interior)
		}
	}
	vset := map[int]bool{}
	for _, f := range h.faces {
		vset[f.v[0]] = true
		vset[f.v[1]] = true
		vset[f.v[2]] = true
	}
	for id := range vset {
		h.vertexIDs = append(h.vertexIDs, id)
	}
	sort.Ints(h.vertexIDs)
	return h, nil
}

//initialTetra finds 4 points spanning a non-degenerate tetrahedron.
func (h *Hull) initialTetra(n int) (int, int, int, int, error) {
	//two most distant points along some axis
	a, b := 0, 0
	best := -1.0
	for axis := 0; axis < 3; axis++ {
		lo, hi := 0, 0
		for i := 1; i < n; i++ {
			if h.points.At(i, axis) < h.points.At(lo, axis) {
				lo = i
			}
			if h.points.At(i, axis) > h.points.At(hi, axis) {
				hi = i
			}
		}
		if d := norm3(sub3(h.point(hi), h.point(lo))); d > best {
			best = d
			a, b = lo, hi
		}
	}
	if best <= h.eps {
		return 0, 0, 0, 0, errorf(ErrGeometry, "all points coincide, no hull")
	}
	//furthest from the a-b line
	ab := sub3(h.point(b), h.point(a))
	c := -1
	best = h.eps
	for i := 0; i < n; i++ {
		d := norm3(cross3(ab, sub3(h.point(i), h.point(a)))) / norm3(ab)
		if d > best {
			best = d
			c = i
		}
	}
	if c < 0 {
		return 0, 0, 0, 0, errorf(ErrGeometry, "points are collinear, no hull")
	}
	//furthest from the a-b-c plane
	nrm := cross3(ab, sub3(h.point(c), h.point(a)))
	l := norm3(nrm)
	nrm = [3]float64{nrm[0] / l, nrm[1] / l, nrm[2] / l}
	off := dot3(nrm, h.point(a))
	d := -1
	best = h.eps
	for i := 0; i < n; i++ {
		if dist := math.Abs(dot3(nrm, h.point(i)) - off); dist > best {
			best = dist
			d = i
		}
	}
	if d < 0 {
		return 0, 0, 0, 0, errorf(ErrGeometry, "points are coplanar, no hull")
	}
	return a, b, c, d, nil
}

//addPoint inserts point id into the hull: removes the facets it can see and
//re-triangulates the horizon towards it. Points inside the current hull are
//ignored.
func (h *Hull) addPoint(id int, interior [3]float64) {
	p := h.point(id)
	visible := make([]bool, len(h.faces))
	any := false
	for i, f := range h.faces {
		if dot3(f.normal, p)-f.offset > h.eps {
			visible[i] = true
			any = true
		}
	}
	if !any {
		return
	}
	//horizon: edges of visible faces shared with no other visible face
	type edge struct{ a, b int }
	count := map[edge]int{}
	norm := func(a, b int) edge {
		if a < b {
			return edge{a, b}
		}
		return edge{b, a}
	}
	for i, f := range h.faces {
		if !visible[i] {
			continue
		}
		count[norm(f.v[0], f.v[1])]++
		count[norm(f.v[1], f.v[2])]++
		count[norm(f.v[2], f.v[0])]++
	}
	keep := h.faces[:0:0]
	for i, f := range h.faces {
		if !visible[i] {
			keep = append(keep, f)
		}
	}
	for e, c := range count {
		if c == 1 {
			keep = append(keep, h.newFace(e.a, e.b, id, interior))
		}
	}
	h.faces = keep
}

// Contains returns whether p lies inside (or on) the hull enlarged outward
// by margin along every facet normal. A margin of 0 tests the hull itself.
func (h *Hull) Contains(p [3]float64, margin float64) bool {
	for _, f := range h.faces {
		if dot3(f.normal, p)-f.offset > margin+h.eps {
			return false
		}
	}
	return true
}

// Points returns the coordinates the hull was built from.
func (h *Hull) Points() *mat.Dense { return h.points }

// Simplices returns the vertex index triples of the hull facets. The
// indices refer to rows of Points.
func (h *Hull) Simplices() [][3]int {
	ret := make([][3]int, len(h.faces))
	for i, f := range h.faces {
		ret[i] = f.v
	}
	return ret
}

// VertexIDs returns the sorted indices of the points that are hull
// vertices.
func (h *Hull) VertexIDs() []int { return h.vertexIDs }

// EnlargedVertices returns the hull vertices displaced outward by padding,
// one row per vertex in the order of VertexIDs. Each vertex moves along the
// normalized average of the normals of its adjacent facets, which places
// the displaced vertices on (or near) the hull enlarged by the padding.
func (h *Hull) EnlargedVertices(padding float64) *mat.Dense {
	dir := map[int][3]float64{}
	for _, f := range h.faces {
		for _, v := range f.v {
			d := dir[v]
			d[0] += f.normal[0]
			d[1] += f.normal[1]
			d[2] += f.normal[2]
			dir[v] = d
		}
	}
	ret := mat.NewDense(len(h.vertexIDs), 3, nil)
	for i, id := range h.vertexIDs {
		d := dir[id]
		l := norm3(d)
		if l > 0 {
			d = [3]float64{d[0] / l, d[1] / l, d[2] / l}
		}
		p := h.point(id)
		ret.Set(i, 0, p[0]+padding*d[0])
		ret.Set(i, 1, p[1]+padding*d[1])
		ret.Set(i, 2, p[2]+padding*d[2])
	}
	return ret
}
