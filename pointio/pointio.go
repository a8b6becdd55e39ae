// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pointio reads site lists from plain text, one point per line.
//
// A line holds two coordinates separated by a comma or by whitespace:
//
//	12.5, 40
//	-3 7.25
//
// Blank lines and lines starting with '#' are ignored.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrNoPoints is returned when the input contains no valid point.
var ErrNoPoints = errors.New("pointio: no points found")

// LineError describes a line that could not be parsed.
type LineError struct {
	Line int // 1-based
	Raw  string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Raw, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseErrors collects every bad line of an input.
type ParseErrors []*LineError

func (pe ParseErrors) Error() string {
	switch len(pe) {
	case 0:
		return "pointio: no errors"
	case 1:
		return "pointio: " + pe[0].Error()
	}
	return fmt.Sprintf("pointio: %s (and %d more errors)", pe[0].Error(), len(pe)-1)
}

var (
	errFieldCount = errors.New("expected two coordinates")
	errNotFinite  = errors.New("coordinate is not finite")
)

// Parse reads points from r. Valid points are returned even when some lines
// fail; the failures are reported as ParseErrors.
func Parse(r io.Reader) ([]r2.Point, error) {
	var (
		points []r2.Point
		bad    ParseErrors
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := parseLine(text)
		if err != nil {
			bad = append(bad, &LineError{Line: line, Raw: raw, Err: err})
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return points, errors.Wrap(err, "pointio: read")
	}

	if len(bad) > 0 {
		return points, bad
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]r2.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pointio: open %s", path)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(text string) (r2.Point, error) {
	var fields []string
	if strings.Contains(text, ",") {
		fields = strings.Split(text, ",")
	} else {
		fields = strings.Fields(text)
	}
	if len(fields) != 2 {
		return r2.Point{}, errFieldCount
	}

	var xy [2]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return r2.Point{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return r2.Point{}, errNotFinite
		}
		xy[i] = v
	}
	return r2.Point{X: xy[0], Y: xy[1]}, nil
}
