// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// Polygon is a closed loop of vertices; the last vertex connects to the first.
// An empty Polygon is a cell with nothing to draw.
type Polygon []r2.Point

// polygonFromRect returns the corners of r counter-clockwise, starting at the
// bottom-left corner.
func polygonFromRect(r r2.Rect) Polygon {
	v := r.Vertices()
	return Polygon{v[0], v[1], v[2], v[3]}
}

// SignedArea returns the shoelace area, positive for counter-clockwise loops.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		sum += p[i].Cross(p[(i+1)%n])
	}
	return sum / 2
}

// Area returns the absolute area of p.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid of p. Degenerate polygons fall back to
// the vertex average; the empty polygon returns the origin and false.
func (p Polygon) Centroid() (r2.Point, bool) {
	n := len(p)
	if n == 0 {
		return r2.Point{}, false
	}

	a := p.SignedArea()
	if math.Abs(a) < DefaultEps {
		var sum r2.Point
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Mul(1 / float64(n)), true
	}

	// Shift to the first vertex to keep the products small.
	o := p[0]
	var cx, cy float64
	for i := range n {
		u := p[i].Sub(o)
		v := p[(i+1)%n].Sub(o)
		c := u.Cross(v)
		cx += (u.X + v.X) * c
		cy += (u.Y + v.Y) * c
	}
	k := 1 / (6 * a)
	return r2.Point{X: o.X + cx*k, Y: o.Y + cy*k}, true
}

// IsConvex reports whether the cross products of consecutive edges never
// change sign. Cross products within eps of zero are treated as collinear.
func (p Polygon) IsConvex(eps float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	var pos, neg bool
	for i := range n {
		e1 := p[(i+1)%n].Sub(p[i])
		e2 := p[(i+2)%n].Sub(p[(i+1)%n])
		c := e1.Cross(e2)
		switch {
		case c > eps:
			pos = true
		case c < -eps:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether q lies inside or on the boundary of the
// convex polygon p, with eps tolerance on the edge tests.
func (p Polygon) ContainsPoint(q r2.Point, eps float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	sign := 1.0
	if p.SignedArea() < 0 {
		sign = -1
	}
	for i := range n {
		e := p[(i+1)%n].Sub(p[i])
		if sign*e.Cross(q.Sub(p[i])) < -eps*e.Norm() {
			return false
		}
	}
	return true
}
