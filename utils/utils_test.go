// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var unitSquare = r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 0, Hi: 1}}

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed, unitSquare)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v, ...) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBounds(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	bounds := r2.Rect{X: r1.Interval{Lo: -50, Hi: 20}, Y: r1.Interval{Lo: 3, Hi: 4}}
	points := GenerateRandomPoints(cnt, seed, bounds)
	for i, p := range points {
		if !bounds.ContainsPoint(p) {
			t.Errorf("GenerateRandomPoints(%v, %v, %v)[%d] = %v, want inside bounds", cnt, seed,
				bounds, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed, unitSquare)
	b := GenerateRandomPoints(cnt, seed, unitSquare)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v, ...) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestBoundsFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []r2.Point
		margin float64
		want   r2.Rect
	}{
		{
			"square cloud",
			[]r2.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
			0.2,
			r2.Rect{X: r1.Interval{Lo: -2, Hi: 12}, Y: r1.Interval{Lo: -2, Hi: 12}},
		},
		{
			"single point",
			[]r2.Point{{X: 5, Y: 5}},
			0.2,
			r2.Rect{X: r1.Interval{Lo: 4.8, Hi: 5.2}, Y: r1.Interval{Lo: 4.8, Hi: 5.2}},
		},
		{
			"horizontal line",
			[]r2.Point{{X: 0, Y: 1}, {X: 4, Y: 1}, {X: 2, Y: 1}},
			0.5,
			r2.Rect{X: r1.Interval{Lo: -2, Hi: 6}, Y: r1.Interval{Lo: 0.5, Hi: 1.5}},
		},
		{
			"no margin",
			[]r2.Point{{X: -3, Y: 2}, {X: 7, Y: -1}},
			0,
			r2.Rect{X: r1.Interval{Lo: -3, Hi: 7}, Y: r1.Interval{Lo: -1, Hi: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundsFromPoints(tt.points, tt.margin)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("BoundsFromPoints(%v, %v) mismatch (-want +got):\n%s", tt.points, tt.margin, diff)
			}
		})
	}
}

func TestBoundsFromPoints_Empty(t *testing.T) {
	if got := BoundsFromPoints(nil, DefaultMargin); !got.IsEmpty() {
		t.Errorf("BoundsFromPoints(nil, %v) = %v, want empty", DefaultMargin, got)
	}
}
