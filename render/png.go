// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"io"

	"github.com/2dChan/r2voronoi"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// WritePNG rasterizes d the same way WriteSVG draws it and encodes the image
// as PNG to w.
func WritePNG(w io.Writer, d *r2voronoi.Diagram, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	vp := NewViewport(d.Bounds, style.Width, style.Height)

	c := gg.NewContext(vp.Width, vp.Height)
	c.SetColor(mustParseColor(style.Background))
	c.Clear()

	c.SetLineWidth(style.StrokeWidth)
	stroke := mustParseColor(style.Stroke)
	for i, poly := range d.Polygons {
		if len(poly) < 3 {
			continue
		}
		c.NewSubPath()
		for _, v := range poly {
			c.LineTo(vp.Project(v))
		}
		c.ClosePath()
		c.SetColor(style.CellColor(i))
		c.FillPreserve()
		c.SetColor(stroke)
		c.Stroke()
	}

	c.SetColor(mustParseColor(style.SiteColor))
	for _, s := range d.Sites {
		x, y := vp.Project(s)
		c.DrawCircle(x, y, style.SiteRadius)
		c.Fill()
	}

	return errors.Wrap(c.EncodePNG(w), "render: encode png")
}
