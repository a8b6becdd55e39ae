// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/2dChan/r2voronoi"
	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

// WriteSVG draws the cells of d that have at least three vertices, then every
// site, and writes the SVG document to w.
func WriteSVG(w io.Writer, d *r2voronoi.Diagram, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	vp := NewViewport(d.Bounds, style.Width, style.Height)
	stroke := mustParseColor(style.Stroke)
	siteStyle := "fill:" + rgb(mustParseColor(style.SiteColor))

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+rgb(mustParseColor(style.Background)))

	xPoints := make([]int, 0)
	yPoints := make([]int, 0)
	for i := range d.NumCells() {
		cell, err := d.Cell(i)
		if err != nil {
			return err
		}
		if cell.IsEmpty() {
			continue
		}

		xPoints = xPoints[:0]
		yPoints = yPoints[:0]
		for _, v := range cell.Polygon() {
			x, y := vp.ProjectInt(v)
			xPoints = append(xPoints, x)
			yPoints = append(yPoints, y)
		}
		fill := style.CellColor(i)
		canvas.Polygon(xPoints, yPoints, fmt.Sprintf(
			"fill:%s;fill-opacity:%.3f;stroke:%s;stroke-width:%g",
			rgb(fill), float64(fill.A)/255, rgb(stroke), style.StrokeWidth))
	}

	r := max(1, int(style.SiteRadius+0.5))
	for _, s := range d.Sites {
		x, y := vp.ProjectInt(s)
		canvas.Circle(x, y, r, siteStyle)
	}
	canvas.End()

	return errors.Wrap(bw.Flush(), "render: write svg")
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
