package grid

import (
	"errors"
	"testing"

	"github.com/huuugs/block/internal/core"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{5, -3},
	}

	for _, tc := range tests {
		_, err := New(tc.w, tc.h, Walled)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d, %d) error = %v, expected ErrInvalidDimension", tc.w, tc.h, err)
		}
	}
}

func TestNewStartsEmpty(t *testing.T) {
	g, err := New(4, 3, Walled)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("dims = %dx%d, expected 3x4", g.Rows(), g.Cols())
	}
	if g.Count(Empty) != 12 {
		t.Errorf("Count(Empty) = %d, expected 12", g.Count(Empty))
	}

	c, err := g.CellAt(2, 3)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if c.Row != 2 || c.Col != 3 {
		t.Errorf("cell identity = (%d, %d), expected (2, 3)", c.Row, c.Col)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g, _ := New(5, 5, Walled)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, err := g.CellAt(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%d, %d) error = %v, expected ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if err := g.SetOccupancy(9, 9, Block, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetOccupancy out of range error = %v", err)
	}
}

func TestSetOccupancyTouchesOneCell(t *testing.T) {
	g, _ := New(3, 3, Walled)

	if err := g.SetOccupancy(1, 1, Block, 7); err != nil {
		t.Fatalf("SetOccupancy failed: %v", err)
	}

	c, _ := g.CellAt(1, 1)
	if c.Kind != Block || c.Value != 7 {
		t.Errorf("cell = %+v, expected block worth 7", c)
	}
	if g.Count(Empty) != 8 {
		t.Errorf("Count(Empty) = %d, expected 8", g.Count(Empty))
	}

	// Non-block kinds carry no value
	_ = g.SetOccupancy(0, 0, Obstacle, 5)
	c, _ = g.CellAt(0, 0)
	if c.Value != 0 {
		t.Errorf("obstacle value = %d, expected 0", c.Value)
	}
}

func TestNeighborWalled(t *testing.T) {
	g, _ := New(4, 4, Walled)

	if _, ok := g.Neighbor(core.Point{Row: 0, Col: 3}, core.DirRight); ok {
		t.Error("step off a walled edge should fail")
	}
	n, ok := g.Neighbor(core.Point{Row: 0, Col: 2}, core.DirRight)
	if !ok || n != (core.Point{Row: 0, Col: 3}) {
		t.Errorf("Neighbor = %+v, %v", n, ok)
	}
	if g.At(core.Point{Row: -1, Col: 0}).Kind != Wall {
		t.Error("off-grid point should read as wall")
	}
}

func TestNeighborWrapped(t *testing.T) {
	g, _ := New(4, 3, Wrapped)

	tests := []struct {
		from     core.Point
		dir      core.Direction
		expected core.Point
	}{
		{core.Point{Row: 0, Col: 3}, core.DirRight, core.Point{Row: 0, Col: 0}},
		{core.Point{Row: 0, Col: 0}, core.DirLeft, core.Point{Row: 0, Col: 3}},
		{core.Point{Row: 0, Col: 1}, core.DirUp, core.Point{Row: 2, Col: 1}},
		{core.Point{Row: 2, Col: 1}, core.DirDown, core.Point{Row: 0, Col: 1}},
	}

	for _, tc := range tests {
		n, ok := g.Neighbor(tc.from, tc.dir)
		if !ok || n != tc.expected {
			t.Errorf("Neighbor(%+v, %v) = %+v, %v; expected %+v", tc.from, tc.dir, n, ok, tc.expected)
		}
	}
}

func TestEmptyCells(t *testing.T) {
	g, _ := New(2, 2, Walled)
	_ = g.SetOccupancy(0, 0, EaterHead, 0)
	_ = g.SetOccupancy(1, 1, Block, 3)

	empty := g.EmptyCells()
	if len(empty) != 2 {
		t.Fatalf("EmptyCells() len = %d, expected 2", len(empty))
	}
	if empty[0] != (core.Point{Row: 0, Col: 1}) || empty[1] != (core.Point{Row: 1, Col: 0}) {
		t.Errorf("EmptyCells() = %v, expected row-major order", empty)
	}
}

func TestParseBoundary(t *testing.T) {
	if b, err := ParseBoundary("wrap"); err != nil || b != Wrapped {
		t.Errorf("ParseBoundary(wrap) = %v, %v", b, err)
	}
	if b, err := ParseBoundary(""); err != nil || b != Walled {
		t.Errorf("ParseBoundary(\"\") = %v, %v", b, err)
	}
	if _, err := ParseBoundary("maze"); err == nil {
		t.Error("unknown boundary should fail")
	}
}
