package grid

import "github.com/huuugs/block/internal/core"

// Kind is the occupancy of a cell.
type Kind uint8

const (
	Empty Kind = iota
	Block
	Obstacle
	EaterHead
	EaterBody
	// Wall is never stored; it is what lies past a walled edge.
	Wall
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Block:
		return "block"
	case Obstacle:
		return "obstacle"
	case EaterHead:
		return "eater"
	case EaterBody:
		return "body"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Blocking reports whether the eater bumps into this kind instead of
// entering the cell.
func (k Kind) Blocking() bool {
	switch k {
	case Obstacle, EaterBody, Wall, EaterHead:
		return true
	default:
		return false
	}
}

// Cell is one playfield position. Row and Col never change after the
// grid is created; Kind and Value do.
type Cell struct {
	Row   int
	Col   int
	Kind  Kind
	Value int // score value, only meaningful for Block
}

// Point returns the cell position.
func (c Cell) Point() core.Point {
	return core.Point{Row: c.Row, Col: c.Col}
}
