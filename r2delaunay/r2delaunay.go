// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes planar Delaunay triangulations by lifting the
// vertices onto a paraboloid and taking the lower convex hull.
package r2delaunay

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices  []r2.Point
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex. Hull vertices have an open fan that starts
	// at the hull edge.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Neighbors returns the vertices joined to vIdx by a triangulation edge, in
// CCW order around it.
func (dt *Triangulation) Neighbors(vIdx int) []int {
	it := dt.IncidentTriangles(vIdx)
	if len(it) == 0 {
		return nil
	}

	res := make([]int, 0, len(it)+1)
	first := NextVertex(dt.Triangles[it[0]], vIdx)
	last := PrevVertex(dt.Triangles[it[len(it)-1]], vIdx)
	if first != last {
		res = append(res, first)
	}
	for _, tIdx := range it {
		res = append(res, PrevVertex(dt.Triangles[tIdx], vIdx))
	}
	return res
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 3 {
		return nil,
			errors.New("r2delaunay: insufficient vertices for triangulation (minimum 3 required)")
	}

	lifted, err := liftVertices(vertices, opts.Eps)
	if err != nil {
		return nil, err
	}

	indices := []int{0, 1, 2}
	if numVertices > 3 {
		qh := new(quickhull.QuickHull)
		ch := qh.ConvexHull(lifted, true, true, opts.Eps)
		if len(ch.Indices)%3 != 0 {
			return nil, errors.New("r2delaunay: inconsistent number of indices returned from QuickHull")
		}
		indices = ch.Indices
	}

	var interior r3.Vector
	for _, v := range lifted {
		interior = interior.Add(v)
	}
	interior = interior.Mul(1 / float64(numVertices))

	dt := &Triangulation{
		Vertices:                vertices,
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}
	seen := make(map[[3]int]struct{})
	for i := 0; i+2 < len(indices); i += 3 {
		t := [3]int{indices[i], indices[i+1], indices[i+2]}
		if !isLowerFace(t, lifted, interior, opts.Eps) {
			continue
		}
		key := t
		slices.Sort(key[:])
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sortTriangleVerticesCCW(&t, vertices)
		dt.Triangles = append(dt.Triangles, t)
	}
	if len(dt.Triangles) == 0 {
		return nil, errors.New("r2delaunay: no triangles found (degenerate input)")
	}

	numTriangles := len(dt.Triangles)
	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	for _, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		incidentTriangles := dt.IncidentTriangles(i)
		sortIncidentTriangleIndicesCCW(i, incidentTriangles, dt.Triangles)
	}

	return dt, nil
}

// liftVertices maps the vertices onto z = x² + y² after centring them and
// scaling them into the unit disc.
func liftVertices(vertices []r2.Point, eps float64) ([]r3.Vector, error) {
	var center r2.Point
	for _, p := range vertices {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(vertices)))

	var scale float64
	far := vertices[0]
	for _, p := range vertices {
		if d := p.Sub(center).Norm(); d > scale {
			scale = d
			far = p
		}
	}
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, errors.New("r2delaunay: vertices are coincident or not finite")
	}

	// All vertices on one line lift onto a vertical plane and have no lower hull.
	dir := far.Sub(center).Mul(1 / scale)
	collinear := true
	for _, p := range vertices {
		if math.Abs(dir.Cross(p.Sub(center)))/scale > eps {
			collinear = false
			break
		}
	}
	if collinear {
		return nil, errors.New("r2delaunay: vertices are collinear")
	}

	lifted := make([]r3.Vector, len(vertices))
	for i, p := range vertices {
		q := p.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
	}
	return lifted, nil
}

// isLowerFace reports whether the hull face t faces down, away from the
// interior point of the hull. Cocircular vertices lift onto a single plane; in
// that case every non-vertical face is part of the triangulation.
func isLowerFace(t [3]int, lifted []r3.Vector, interior r3.Vector, eps float64) bool {
	a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
	norm := b.Sub(a).Cross(c.Sub(a))
	tol := eps * norm.Norm()
	d := norm.Dot(interior.Sub(a))
	if math.Abs(d) <= tol {
		return math.Abs(norm.Z) > tol
	}
	if d > 0 {
		norm = norm.Mul(-1)
	}
	return norm.Z < -tol
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n == 0 {
		return
	}

	// An open fan must start at the triangle with no CCW predecessor.
	for i := range n {
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		hasPred := false
		for j := range n {
			if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				hasPred = true
				break
			}
		}
		if !hasPred {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			nxt := NextVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
