package sim

import "github.com/huuugs/block/internal/core"

// MaxLevel is the highest eater level.
const MaxLevel = 6

// Eater is the player-controlled entity.
type Eater struct {
	Pos    core.Point
	Facing core.Direction
	Moving bool // false after a bump until the next move intent

	Lives      int
	Level      int
	Experience int
	NextLevel  int // experience needed for the next level

	// Trail holds body segments, nearest first.
	Trail []core.Point
}

func newEater(pos core.Point, lives int) Eater {
	return Eater{
		Pos:       pos,
		Facing:    core.DirRight,
		Moving:    true,
		Lives:     lives,
		Level:     1,
		NextLevel: experienceFor(1),
	}
}

// experienceFor returns the experience needed to leave the given level.
func experienceFor(level int) int {
	if level <= 1 {
		return 50
	}
	return 50 * level * level
}

// gain adds experience and returns how many levels were gained.
func (e *Eater) gain(exp int) int {
	if e.Level >= MaxLevel {
		return 0
	}
	e.Experience += exp
	levels := 0
	for e.Experience >= e.NextLevel && e.Level < MaxLevel {
		e.Experience -= e.NextLevel
		e.Level++
		e.NextLevel = experienceFor(e.Level)
		levels++
	}
	if e.Level >= MaxLevel {
		e.Experience = 0
	}
	return levels
}

// Color returns the eater color for its current level.
func (e Eater) Color() core.Color {
	return core.LevelColor(e.Level)
}
