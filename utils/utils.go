// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and framing planar sites for Voronoi diagrams.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// DefaultMargin is the padding BoundsFromPoints adds on each side, as a
// fraction of the point cloud's extent.
const DefaultMargin = 0.2

// GenerateRandomPoints generates cnt points uniformly distributed in bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, bounds r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := range cnt {
		sites[i] = r2.Point{
			X: bounds.X.Lo + random.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + random.Float64()*bounds.Y.Length(),
		}
	}

	return sites
}

// BoundsFromPoints returns the bounding box of points padded by margin times
// its width and height on each side. Extents below 1 are treated as 1, so a
// single point or a line of points still yields a proper rectangle.
// It returns an empty rectangle when points is empty.
func BoundsFromPoints(points []r2.Point, margin float64) r2.Rect {
	if len(points) == 0 {
		return r2.EmptyRect()
	}

	r := r2.RectFromPoints(points...)
	dx := math.Max(r.X.Length(), 1) * margin
	dy := math.Max(r.Y.Length(), 1) * margin
	return r2.Rect{
		X: r1.Interval{Lo: r.X.Lo - dx, Hi: r.X.Hi + dx},
		Y: r1.Interval{Lo: r.Y.Lo - dy, Hi: r.Y.Hi + dy},
	}
}
