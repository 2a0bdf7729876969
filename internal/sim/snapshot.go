package sim

import (
	"strings"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/grid"
)

// Snapshot captures the complete session state for determinism testing.
// Snapshots are comparable with ==.
type Snapshot struct {
	Tick       int
	Score      int
	Eaten      int
	Lives      int
	Level      int
	Experience int
	Head       core.Point
	Facing     core.Direction
	Moving     bool
	TrailLen   int
	SpawnTimer int
	Pending    int
	Over       bool
	Result     Result
	Board      string // one rune per cell, rows separated by '\n'
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Score:      s.score,
		Eaten:      s.eaten,
		Lives:      s.eater.Lives,
		Level:      s.eater.Level,
		Experience: s.eater.Experience,
		Head:       s.eater.Pos,
		Facing:     s.eater.Facing,
		Moving:     s.eater.Moving,
		TrailLen:   len(s.eater.Trail),
		SpawnTimer: s.spawner.Timer,
		Pending:    s.spawner.Pending,
		Over:       s.over,
		Result:     s.result,
		Board:      Board(s.grid),
	}
}

// Board renders the grid as text: '.' empty, '*' block, '#' obstacle,
// '@' head, 'o' body.
func Board(g *grid.Grid) string {
	var b strings.Builder
	b.Grow((g.Cols() + 1) * g.Rows())
	g.Cells(func(c grid.Cell) {
		if c.Col == 0 && c.Row > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(KindRune(c.Kind))
	})
	return b.String()
}

// KindRune is the glyph used for a cell kind in text output.
func KindRune(k grid.Kind) rune {
	switch k {
	case grid.Block:
		return '*'
	case grid.Obstacle:
		return '#'
	case grid.EaterHead:
		return '@'
	case grid.EaterBody:
		return 'o'
	case grid.Wall:
		return '#'
	default:
		return '.'
	}
}
