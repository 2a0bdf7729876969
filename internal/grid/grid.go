// Package grid holds the Block Eater playfield: a fixed rectangle of cells
// with a per-cell occupancy kind and value. It performs no game logic;
// the simulation queries and mutates it.
package grid

import (
	"errors"
	"fmt"

	"github.com/huuugs/block/internal/core"
)

var (
	// ErrInvalidDimension is returned when a grid is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("grid: invalid dimension")

	// ErrOutOfBounds is returned when a cell outside the grid is addressed.
	ErrOutOfBounds = errors.New("grid: out of bounds")
)

// Boundary selects what happens at the grid edge.
type Boundary int

const (
	// Walled edges block movement.
	Walled Boundary = iota
	// Wrapped edges connect to the opposite side.
	Wrapped
)

func (b Boundary) String() string {
	if b == Wrapped {
		return "wrapped"
	}
	return "walled"
}

// ParseBoundary converts a config string into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "walled", "wall":
		return Walled, nil
	case "wrapped", "wrap":
		return Wrapped, nil
	default:
		return Walled, fmt.Errorf("grid: unknown boundary %q", s)
	}
}

// Grid is a rows x cols matrix of cells stored in row-major order.
type Grid struct {
	rows     int
	cols     int
	boundary Boundary
	cells    []Cell
}

// New creates an empty grid. width is the number of columns, height the
// number of rows.
func New(width, height int, boundary Boundary) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Grid{
		rows:     height,
		cols:     width,
		boundary: boundary,
		cells:    make([]Cell, width*height),
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.cells[r*width+c] = Cell{Row: r, Col: c, Kind: Empty}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Boundary returns the edge behaviour.
func (g *Grid) Boundary() Boundary { return g.boundary }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// CellAt returns a copy of the cell at (row, col).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.index(row, col)], nil
}

// At returns the cell at p. It is CellAt for callers that have already
// checked bounds; out-of-range points read as a Wall cell.
func (g *Grid) At(p core.Point) Cell {
	if !g.InBounds(p.Row, p.Col) {
		return Cell{Row: p.Row, Col: p.Col, Kind: Wall}
	}
	return g.cells[g.index(p.Row, p.Col)]
}

// SetOccupancy changes the kind and value of exactly one cell.
func (g *Grid) SetOccupancy(row, col int, kind Kind, value int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	if kind == Wall {
		return fmt.Errorf("grid: walls are not stored in cells")
	}
	c := &g.cells[g.index(row, col)]
	c.Kind = kind
	c.Value = value
	if kind != Block {
		c.Value = 0
	}
	return nil
}

// Clear empties the cell at p. Out-of-range points are ignored.
func (g *Grid) Clear(p core.Point) {
	if g.InBounds(p.Row, p.Col) {
		c := &g.cells[g.index(p.Row, p.Col)]
		c.Kind = Empty
		c.Value = 0
	}
}

// Neighbor returns the point one step from p in direction d.
// On a walled grid ok is false when the step leaves the grid; on a
// wrapped grid the point wraps to the opposite edge.
func (g *Grid) Neighbor(p core.Point, d core.Direction) (core.Point, bool) {
	n := p.Step(d)
	if g.InBounds(n.Row, n.Col) {
		return n, true
	}
	if g.boundary == Walled {
		return n, false
	}
	n.Row = (n.Row%g.rows + g.rows) % g.rows
	n.Col = (n.Col%g.cols + g.cols) % g.cols
	return n, true
}

// EmptyCells lists every Empty cell position in row-major order.
func (g *Grid) EmptyCells() []core.Point {
	var out []core.Point
	for _, c := range g.cells {
		if c.Kind == Empty {
			out = append(out, c.Point())
		}
	}
	return out
}

// Count returns how many cells hold the given kind.
func (g *Grid) Count(kind Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}
