// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pixelconv converts between r2voronoi diagrams and faiface/pixel
// geometry.
package pixelconv

import (
	"github.com/2dChan/r2voronoi"
	"github.com/faiface/pixel"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// VecToPoint converts a pixel vector to a point.
func VecToPoint(v pixel.Vec) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// PointToVec converts a point to a pixel vector.
func PointToVec(p r2.Point) pixel.Vec {
	return pixel.V(p.X, p.Y)
}

// RectFromPixel converts a pixel rectangle, normalizing swapped corners.
func RectFromPixel(r pixel.Rect) r2.Rect {
	r = r.Norm()
	return r2.Rect{
		X: r1.Interval{Lo: r.Min.X, Hi: r.Max.X},
		Y: r1.Interval{Lo: r.Min.Y, Hi: r.Max.Y},
	}
}

// PointsFromVecs converts sites given as pixel vectors.
func PointsFromVecs(vs []pixel.Vec) []r2.Point {
	points := make([]r2.Point, len(vs))
	for i, v := range vs {
		points[i] = VecToPoint(v)
	}
	return points
}

// CellEdges returns the boundary of every non-empty cell as pixel lines,
// keyed by site index. Each polygon is walked in order and closed back to its
// first vertex.
func CellEdges(d *r2voronoi.Diagram) map[int][]pixel.Line {
	cells := make(map[int][]pixel.Line, d.NumCells())
	for i, poly := range d.Polygons {
		n := len(poly)
		if n < 3 {
			continue
		}
		edges := make([]pixel.Line, 0, n)
		for j := range n {
			edges = append(edges, pixel.L(PointToVec(poly[j]), PointToVec(poly[(j+1)%n])))
		}
		cells[i] = edges
	}
	return cells
}
