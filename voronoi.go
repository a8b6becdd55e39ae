// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

const (
	// DefaultEps is the tolerance of the half-plane inside test and of the
	// edge/boundary intersection.
	DefaultEps = 1e-9
	// DefaultVertexTolerance is the distance under which consecutive polygon
	// vertices are merged. Errors compound over many clips, so it is coarser
	// than DefaultEps.
	DefaultVertexTolerance = 1e-7
)

type Diagram struct {
	Sites    []r2.Point
	Polygons []Polygon
	Bounds   r2.Rect

	// NOTE: Sort in CCW per Cell. Empty unless built WithNeighbors.
	CellNeighbors   []int
	NeighborOffsets []int

	opts DiagramOptions
}

type DiagramOptions struct {
	Eps             float64
	VertexTolerance float64
	Workers         int
	Neighbors       bool
}

type DiagramOption func(*DiagramOptions) error

func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func WithVertexTolerance(tol float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if tol <= 0 {
			return fmt.Errorf("WithVertexTolerance: tol must be positive, got %v", tol)
		}
		o.VertexTolerance = tol
		return nil
	}
}

// WithWorkers builds cells on n goroutines. The result does not depend on n.
func WithWorkers(n int) DiagramOption {
	return func(o *DiagramOptions) error {
		if n < 1 {
			return fmt.Errorf("WithWorkers: n must be at least 1, got %d", n)
		}
		o.Workers = n
		return nil
	}
}

// WithNeighbors fills CellNeighbors and NeighborOffsets.
func WithNeighbors() DiagramOption {
	return func(o *DiagramOptions) error {
		o.Neighbors = true
		return nil
	}
}

// RectFromBounds returns the rectangle [minX, maxX] x [minY, maxY].
func RectFromBounds(minX, minY, maxX, maxY float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}
}

// NewDiagram computes the Voronoi diagram of points clipped to bounds.
// Coincident points are merged, so Sites may be shorter than points. A cell
// that is clipped away entirely has an empty polygon.
func NewDiagram(points []r2.Point, bounds r2.Rect, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps:             DefaultEps,
		VertexTolerance: DefaultVertexTolerance,
		Workers:         1,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}

	return newDiagram(DedupSites(points), bounds, opts), nil
}

// Compute is NewDiagram with default options. It panics if bounds is not a
// rectangle with positive width and height.
func Compute(points []r2.Point, bounds r2.Rect) *Diagram {
	vd, err := NewDiagram(points, bounds)
	if err != nil {
		panic(err)
	}
	return vd
}

func newDiagram(sites []r2.Point, bounds r2.Rect, opts DiagramOptions) *Diagram {
	vd := &Diagram{
		Sites:    sites,
		Polygons: make([]Polygon, len(sites)),
		Bounds:   bounds,
		opts:     opts,
	}

	build := func(i int) {
		vd.Polygons[i] = CellPolygon(i, sites, bounds, opts.Eps, opts.VertexTolerance)
	}
	if opts.Workers <= 1 {
		for i := range sites {
			build(i)
		}
	} else {
		var wg sync.WaitGroup
		for w := range opts.Workers {
			wg.Go(func() {
				for i := w; i < len(sites); i += opts.Workers {
					build(i)
				}
			})
		}
		wg.Wait()
	}

	if opts.Neighbors {
		vd.computeNeighbors()
	}
	return vd
}

func validateBounds(r r2.Rect) error {
	for _, v := range []float64{r.X.Lo, r.X.Hi, r.Y.Lo, r.Y.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("r2voronoi: bounds must be finite")
		}
	}
	if !(r.X.Lo < r.X.Hi && r.Y.Lo < r.Y.Hi) {
		return fmt.Errorf("r2voronoi: bounds %v must have positive width and height", r)
	}
	return nil
}

// CellPolygon returns the polygon of sites[idx]: bounds clipped by the
// bisector half-plane against every other site, in list order.
func CellPolygon(idx int, sites []r2.Point, bounds r2.Rect, eps, tol float64) Polygon {
	site := sites[idx]
	poly := polygonFromRect(bounds)
	for i, other := range sites {
		if i == idx {
			continue
		}
		poly = SanitizePolygon(ClipPolygon(poly, Bisector(site, other), eps), tol)
		if len(poly) == 0 {
			return Polygon{}
		}
	}
	return poly
}

func (vd *Diagram) NumCells() int {
	return len(vd.Sites)
}

func (vd *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(vd.Sites) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(vd.Sites))
	}
	return Cell{idx: i, d: vd}, nil
}

// SiteFor returns the cell whose site is nearest to p. It reports false for
// a diagram without sites.
func (vd *Diagram) SiteFor(p r2.Point) (Cell, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range vd.Sites {
		d := s.Sub(p)
		if dist := d.Dot(d); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Cell{}, false
	}
	return Cell{idx: best, d: vd}, true
}

// Relax applies steps rounds of Lloyd relaxation: every site moves to the
// centroid of its cell and the diagram is rebuilt with the same options.
// Sites of empty cells stay in place. Sites that end up coincident are merged.
func (vd *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	for range steps {
		sites := make([]r2.Point, len(vd.Sites))
		for i, poly := range vd.Polygons {
			c, ok := poly.Centroid()
			if !ok {
				c = vd.Sites[i]
			}
			sites[i] = c
		}
		*vd = *newDiagram(DedupSites(sites), vd.Bounds, vd.opts)
	}
	return nil
}

// computeNeighbors keeps the Delaunay neighbours whose shared bisector is an
// edge of the clipped cell. Inputs without a triangulation fall back to
// testing every pair.
func (vd *Diagram) computeNeighbors() {
	n := len(vd.Sites)
	candidates := func(i int) []int {
		res := make([]int, 0, n-1)
		for j := range n {
			if j != i {
				res = append(res, j)
			}
		}
		return res
	}
	if dt, err := r2delaunay.NewTriangulation(vd.Sites); err == nil {
		candidates = dt.Neighbors
	}

	vd.CellNeighbors = vd.CellNeighbors[:0]
	vd.NeighborOffsets = make([]int, n+1)
	for i := range n {
		site := vd.Sites[i]
		var nb []int
		for _, j := range candidates(i) {
			h := Bisector(site, vd.Sites[j])
			if sharesEdge(vd.Polygons[i], h, vd.opts.VertexTolerance) {
				nb = append(nb, j)
			}
		}
		slices.SortFunc(nb, func(a, b int) int {
			da := vd.Sites[a].Sub(site)
			db := vd.Sites[b].Sub(site)
			return cmp.Compare(math.Atan2(da.Y, da.X), math.Atan2(db.Y, db.X))
		})
		vd.CellNeighbors = append(vd.CellNeighbors, nb...)
		vd.NeighborOffsets[i+1] = len(vd.CellNeighbors)
	}
}

// sharesEdge reports whether poly has an edge of positive length lying on
// the boundary line of h.
func sharesEdge(poly Polygon, h HalfPlane, tol float64) bool {
	n := len(poly)
	if n < 2 {
		return false
	}
	norm := math.Hypot(h.A, h.B)
	onLine := func(p r2.Point) bool {
		return math.Abs(h.Eval(p))/norm <= tol
	}
	for i := range n {
		p, q := poly[i], poly[(i+1)%n]
		if onLine(p) && onLine(q) && !PointsApproxEqual(p, q, tol) {
			return true
		}
	}
	return false
}
