// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// HalfPlane is the set of points p with A*p.X + B*p.Y <= C.
type HalfPlane struct {
	A, B, C float64
}

// Bisector returns the half-plane of points at least as close to a as to b.
// It is |p-a|² <= |p-b|² expanded into linear form.
func Bisector(a, b r2.Point) HalfPlane {
	return HalfPlane{
		A: 2 * (b.X - a.X),
		B: 2 * (b.Y - a.Y),
		C: b.Dot(b) - a.Dot(a),
	}
}

// Eval returns the signed value of the linear form at p. It is non-positive
// inside the half-plane.
func (h HalfPlane) Eval(p r2.Point) float64 {
	return h.A*p.X + h.B*p.Y - h.C
}

// Contains reports whether p lies in the half-plane, counting points within
// eps of the boundary as inside.
func (h HalfPlane) Contains(p r2.Point, eps float64) bool {
	return h.Eval(p) <= eps
}

// ClipPolygon intersects poly with the half-plane h.
func ClipPolygon(poly Polygon, h HalfPlane, eps float64) Polygon {
	n := len(poly)
	if n == 0 {
		return Polygon{}
	}

	out := make(Polygon, 0, n+1)
	for i := range n {
		cur := poly[i]
		next := poly[(i+1)%n]
		curIn := h.Contains(cur, eps)
		nextIn := h.Contains(next, eps)

		switch {
		case curIn && nextIn:
			out = append(out, next)
		case curIn && !nextIn:
			if p, ok := edgeIntersection(cur, next, h, eps); ok {
				out = append(out, p)
			}
		case !curIn && nextIn:
			if p, ok := edgeIntersection(cur, next, h, eps); ok {
				out = append(out, p)
			}
			out = append(out, next)
		}
	}
	return out
}

// edgeIntersection returns the point where segment p1-p2 crosses the
// boundary of h. Edges parallel to the boundary and crossings outside the
// segment report false.
func edgeIntersection(p1, p2 r2.Point, h HalfPlane, eps float64) (r2.Point, bool) {
	v1 := h.Eval(p1)
	v2 := h.Eval(p2)
	denom := v1 - v2
	if math.Abs(denom) < eps {
		return r2.Point{}, false
	}
	t := v1 / denom
	if t < -eps || t > 1+eps {
		return r2.Point{}, false
	}
	return p1.Add(p2.Sub(p1).Mul(t)), true
}

// SanitizePolygon collapses consecutive vertices closer than tol, including
// a last vertex that repeats the first one.
func SanitizePolygon(poly Polygon, tol float64) Polygon {
	if len(poly) == 0 {
		return Polygon{}
	}

	out := make(Polygon, 1, len(poly))
	out[0] = poly[0]
	for _, p := range poly[1:] {
		if !PointsApproxEqual(out[len(out)-1], p, tol) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && PointsApproxEqual(out[0], out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}

// PointsApproxEqual reports whether a and b are no more than tol apart.
func PointsApproxEqual(a, b r2.Point, tol float64) bool {
	return a.Sub(b).Norm() <= tol
}
