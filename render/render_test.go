// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/2dChan/r2voronoi"
	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyle(t *testing.T) {
	s, err := LoadStyle(strings.NewReader("width: 400\nstroke: black\nfill_alpha: 0.5\n"))
	require.NoError(t, err)

	want := DefaultStyle()
	want.Width = 400
	want.Stroke = "black"
	want.FillAlpha = 0.5
	assert.Equal(t, want, s)
}

func TestLoadStyle_Empty(t *testing.T) {
	s, err := LoadStyle(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), s)
}

func TestLoadStyle_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "colour: red\n"},
		{"bad yaml", "width: [1, 2\n"},
		{"zero width", "width: 0\n"},
		{"alpha out of range", "fill_alpha: 2\n"},
		{"bad colour", "background: notacolour\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStyle(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"Red", color.NRGBA{R: 255, A: 255}},
		{"#204060", color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 255}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#12", "#gggggg", "204060"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestStyle_CellColor(t *testing.T) {
	s := DefaultStyle()
	s.FillSaturation = 1
	s.FillLightness = 0.5
	s.FillAlpha = 1

	tests := []struct {
		idx  int
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{80, color.NRGBA{R: 0, G: 0, B: 255, A: 255}}, // 80*57 mod 360 = 240
		{360, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.CellColor(tt.idx), "cell %d", tt.idx)
	}

	// Consecutive cells never share a hue.
	assert.NotEqual(t, s.CellColor(1), s.CellColor(2))
}

func TestViewport(t *testing.T) {
	vp := NewViewport(r2voronoi.RectFromBounds(-10, 0, 10, 5), 400, 0)
	assert.Equal(t, 100, vp.Height)

	tests := []struct {
		p      r2.Point
		wx, wy int
	}{
		{r2.Point{X: -10, Y: 5}, 0, 0},
		{r2.Point{X: 10, Y: 0}, 400, 100},
		{r2.Point{X: 0, Y: 2.5}, 200, 50},
	}
	for _, tt := range tests {
		x, y := vp.ProjectInt(tt.p)
		assert.Equal(t, tt.wx, x, "x of %v", tt.p)
		assert.Equal(t, tt.wy, y, "y of %v", tt.p)
	}
}

func TestWriteSVG(t *testing.T) {
	// The last site dominates nothing inside the bounds and has no polygon.
	points := []r2.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 100, Y: 100}}
	d, err := r2voronoi.NewDiagram(points, r2voronoi.RectFromBounds(0, 0, 10, 10))
	require.NoError(t, err)
	require.Empty(t, d.Polygons[4])

	style := DefaultStyle()
	style.Width = 100

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, d, style))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "100", root.Attributes["width"])
	assert.Equal(t, "100", root.Attributes["height"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 4)
	assert.Len(t, root.FindAll("circle"), 5)

	// Cell 0 is the lower-left quadrant: world (0..5, 0..5), image rows 50..100.
	pts := strings.Fields(polygons[0].Attributes["points"])
	assert.ElementsMatch(t, []string{"0,100", "50,100", "50,50", "0,50"}, pts)
}

func TestWritePNG(t *testing.T) {
	points := []r2.Point{{X: 2, Y: 2}, {X: 8, Y: 8}}
	d, err := r2voronoi.NewDiagram(points, r2voronoi.RectFromBounds(0, 0, 20, 10))
	require.NoError(t, err)

	style := DefaultStyle()
	style.Width = 64

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, d, style))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestWrite_InvalidStyle(t *testing.T) {
	d, err := r2voronoi.NewDiagram([]r2.Point{{X: 1, Y: 1}}, r2voronoi.RectFromBounds(0, 0, 2, 2))
	require.NoError(t, err)

	style := DefaultStyle()
	style.Width = 0

	var buf bytes.Buffer
	assert.Error(t, WriteSVG(&buf, d, style))
	assert.Error(t, WritePNG(&buf, d, style))
}
