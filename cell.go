// Package r2voronoi implements planar Voronoi diagrams clipped to a rectangle,
// built by intersecting bisector half-planes.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// Polygon returns the clipped polygon of the cell, counter-clockwise.
// It is empty when the cell lies outside the Diagram's Bounds.
func (c Cell) Polygon() Polygon {
	return c.d.Polygons[c.idx]
}

// IsEmpty reports whether the cell has nothing to draw.
func (c Cell) IsEmpty() bool {
	return len(c.d.Polygons[c.idx]) < 3
}

// NumVertices returns the number of vertices of the cell polygon.
func (c Cell) NumVertices() int {
	return len(c.d.Polygons[c.idx])
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	poly := c.d.Polygons[c.idx]
	if i < 0 || i >= len(poly) {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(poly))
	}
	return poly[i], nil
}

// Area returns the area of the cell polygon.
func (c Cell) Area() float64 {
	return c.d.Polygons[c.idx].Area()
}

// Centroid returns the centroid of the cell polygon, or the site for an empty cell.
func (c Cell) Centroid() r2.Point {
	if p, ok := c.d.Polygons[c.idx].Centroid(); ok {
		return p
	}
	return c.Site()
}

// NumNeighbors returns the number of neighboring cells.
// It is zero unless the Diagram was built WithNeighbors.
func (c Cell) NumNeighbors() int {
	if len(c.d.NeighborOffsets) == 0 {
		return 0
	}
	return c.d.NeighborOffsets[c.idx+1] - c.d.NeighborOffsets[c.idx]
}

// NeighborIndices returns the indices of the cells sharing an edge with this one,
// sorted in counter-clockwise order around the site.
func (c Cell) NeighborIndices() []int {
	if len(c.d.NeighborOffsets) == 0 {
		return nil
	}
	return c.d.CellNeighbors[c.d.NeighborOffsets[c.idx]:c.d.NeighborOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	nb := c.NeighborIndices()
	if i < 0 || i >= len(nb) {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(nb))
	}
	nc, err := c.d.Cell(nb[i])
	if err != nil {
		return Cell{}, err
	}
	return nc, nil
}
