// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// dedupScale quantizes coordinates to 12 fractional digits.
const dedupScale = 1e12

type siteKey struct {
	x, y float64
}

func keyOf(p r2.Point) siteKey {
	return siteKey{
		x: math.Round(p.X * dedupScale),
		y: math.Round(p.Y * dedupScale),
	}
}

// DedupSites returns points without coincident duplicates, keeping the first
// occurrence of each. Two points coincide when their coordinates are equal
// after rounding to 12 fractional digits.
func DedupSites(points []r2.Point) []r2.Point {
	seen := make(map[siteKey]struct{}, len(points))
	sites := make([]r2.Point, 0, len(points))
	for _, p := range points {
		k := keyOf(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		sites = append(sites, p)
	}
	return sites
}
