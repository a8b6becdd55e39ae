// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws Voronoi diagrams as SVG or PNG images.
package render

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Style controls the look of a rendered diagram. Colours are CSS names
// ("white") or hex triplets ("#204060").
type Style struct {
	// Width of the image in pixels.
	Width int `yaml:"width"`
	// Height of the image in pixels. Zero keeps the aspect ratio of the bounds.
	Height int `yaml:"height"`

	Background  string  `yaml:"background"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`

	// Cells are filled with hsla((i*57) mod 360, Saturation, Lightness, Alpha).
	FillSaturation float64 `yaml:"fill_saturation"`
	FillLightness  float64 `yaml:"fill_lightness"`
	FillAlpha      float64 `yaml:"fill_alpha"`

	SiteRadius float64 `yaml:"site_radius"`
	SiteColor  string  `yaml:"site_color"`
}

// DefaultStyle returns the built-in palette.
func DefaultStyle() Style {
	return Style{
		Width:          800,
		Background:     "white",
		Stroke:         "#204060",
		StrokeWidth:    1,
		FillSaturation: 0.68,
		FillLightness:  0.60,
		FillAlpha:      0.35,
		SiteRadius:     3.8,
		SiteColor:      "#0e2740",
	}
}

// LoadStyle decodes a YAML document over DefaultStyle. Keys missing from the
// document keep their default value; an empty document yields DefaultStyle.
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Style{}, errors.Wrap(err, "render: decode style")
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate checks sizes, ratios and colours.
func (s Style) Validate() error {
	if s.Width <= 0 {
		return errors.Errorf("render: width must be positive, got %d", s.Width)
	}
	if s.Height < 0 {
		return errors.Errorf("render: height must not be negative, got %d", s.Height)
	}
	for name, v := range map[string]float64{
		"fill_saturation": s.FillSaturation,
		"fill_lightness":  s.FillLightness,
		"fill_alpha":      s.FillAlpha,
	} {
		if v < 0 || v > 1 {
			return errors.Errorf("render: %s must be in [0, 1], got %v", name, v)
		}
	}
	if s.StrokeWidth < 0 || s.SiteRadius < 0 {
		return errors.New("render: stroke_width and site_radius must not be negative")
	}
	for _, c := range []string{s.Background, s.Stroke, s.SiteColor} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// CellColor returns the fill colour of the i-th cell. Hues step by 57 degrees
// so that consecutive cells contrast.
func (s Style) CellColor(i int) color.NRGBA {
	h := float64(((i*57)%360 + 360) % 360)
	r, g, b := hslToRGB(h, s.FillSaturation, s.FillLightness)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(s.FillAlpha*255 + 0.5)}
}

// ParseColor resolves a CSS colour name or a #rgb / #rrggbb hex triplet.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok {
		return color.NRGBA{}, errors.Errorf("render: unknown colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, errors.Errorf("render: bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "render: bad hex colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// hslToRGB converts a hue in degrees and saturation, lightness in [0, 1].
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	return to8(r + m), to8(g + m), to8(b + m)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
