// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"math"

	"github.com/golang/geo/r2"
)

// Viewport maps world coordinates to image pixels. The world Y axis points up,
// the image Y axis points down.
type Viewport struct {
	World  r2.Rect
	Width  int
	Height int
}

// NewViewport fits world into an image of the given width. A zero height is
// derived from the aspect ratio of world.
func NewViewport(world r2.Rect, width, height int) Viewport {
	if height == 0 {
		height = max(1, int(math.Round(float64(width)*world.Y.Length()/world.X.Length())))
	}
	return Viewport{World: world, Width: width, Height: height}
}

// Project returns the pixel position of p.
func (v Viewport) Project(p r2.Point) (float64, float64) {
	x := (p.X - v.World.X.Lo) / v.World.X.Length() * float64(v.Width)
	y := (v.World.Y.Hi - p.Y) / v.World.Y.Length() * float64(v.Height)
	return x, y
}

// ProjectInt is Project rounded to whole pixels.
func (v Viewport) ProjectInt(p r2.Point) (int, int) {
	x, y := v.Project(p)
	return int(math.Round(x)), int(math.Round(y))
}
