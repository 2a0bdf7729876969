package modes

import (
	"errors"
	"fmt"

	"github.com/huuugs/block/internal/grid"
	"github.com/huuugs/block/internal/sim"
)

// ErrNoSuchLevel is returned when a level number is outside the table.
var ErrNoSuchLevel = errors.New("modes: no such level")

// LevelDef describes one stage of the level mode.
type LevelDef struct {
	Number      int
	TargetScore int
	TargetLevel int     // eater level required to clear
	TimeLimit   float64 // seconds; 0 means no limit
	Blocks      int     // blocks on the board at start
	SpawnEvery  float64 // seconds between timed spawns
	Obstacles   int
	Description string
}

// Levels is the stage table.
var Levels = []LevelDef{
	{1, 50, 2, 0, 5, 2.0, 0, "Getting started"},
	{2, 100, 3, 0, 8, 1.8, 2, "Warming up"},
	{3, 200, 3, 120, 10, 1.5, 4, "Against the clock"},
	{4, 300, 4, 0, 12, 1.3, 6, "Growing stronger"},
	{5, 500, 4, 180, 15, 1.2, 8, "Speed run"},
	{6, 700, 5, 0, 18, 1.0, 10, "Crowded field"},
	{7, 1000, 5, 240, 20, 0.9, 12, "Pressure"},
	{8, 1500, 6, 0, 25, 0.8, 14, "Master eater"},
	{9, 2000, 6, 300, 30, 0.7, 16, "Endurance"},
	{10, 3000, 6, 180, 40, 0.5, 18, "Final challenge"},
}

// LevelCount returns the number of defined levels.
func LevelCount() int { return len(Levels) }

// GetLevel returns the level definition by 1-based number.
func GetLevel(n int) (LevelDef, error) {
	if n < 1 || n > len(Levels) {
		return LevelDef{}, fmt.Errorf("%w: %d", ErrNoSuchLevel, n)
	}
	return Levels[n-1], nil
}

// Level plays the stage table from a chosen start. Clearing a stage
// moves on to the next one in the same session with a fresh clock; score
// and eater carry over. Clearing the last stage wins.
type Level struct {
	def     LevelDef
	start   int // tick the current stage began
	cleared int // number of the last stage cleared, 0 if none
}

// NewLevel creates the level mode at stage n, clamped to the table.
func NewLevel(n int) *Level {
	n = max(1, min(n, len(Levels)))
	return &Level{def: Levels[n-1]}
}

func (*Level) ID() string { return IDLevel }

func (l *Level) Title() string {
	return fmt.Sprintf("Level %d", l.def.Number)
}

// SetLevel selects the stage by 1-based number.
func (l *Level) SetLevel(n int) error {
	def, err := GetLevel(n)
	if err != nil {
		return err
	}
	l.def = def
	return nil
}

// Def returns the current stage definition.
func (l *Level) Def() LevelDef { return l.def }

// Stage returns the number of the stage being played.
func (l *Level) Stage() int { return l.def.Number }

// Cleared returns the number of the last stage cleared this session.
func (l *Level) Cleared() int { return l.cleared }

func (l *Level) Begin(s *sim.Session) {
	l.start = s.Tick()
	l.cleared = 0
	s.PlaceObstacles(l.def.Obstacles)
	s.PlaceBlocks(l.def.Blocks)
}

// advance moves to the next stage. Obstacles and blocks are added up to
// the new stage's counts.
func (l *Level) advance(s *sim.Session) {
	prev := l.def
	l.def = Levels[prev.Number]
	l.start = s.Tick()
	s.PlaceObstacles(max(l.def.Obstacles-prev.Obstacles, 0))
	s.PlaceBlocks(max(l.def.Blocks-s.Grid().Count(grid.Block), 0))
}

func (l *Level) SpawnInterval(s *sim.Session) int {
	return s.Ticks(l.def.SpawnEvery)
}

func (l *Level) TimeLimit(s *sim.Session) int {
	if l.def.TimeLimit <= 0 {
		return 0
	}
	return l.start + s.Ticks(l.def.TimeLimit)
}

func (l *Level) Judge(s *sim.Session) (sim.Result, bool) {
	if s.Score() >= l.def.TargetScore && s.Eater().Level >= l.def.TargetLevel {
		l.cleared = l.def.Number
		if l.def.Number >= len(Levels) {
			return sim.Result{Reason: sim.ReasonLevelCleared, Won: true}, true
		}
		l.advance(s)
		return sim.Result{}, false
	}
	if limit := l.TimeLimit(s); limit > 0 && s.Tick() >= limit {
		return sim.Result{Reason: sim.ReasonTimeUp}, true
	}
	return sim.Result{}, false
}

func (l *Level) Status(s *sim.Session) string {
	return fmt.Sprintf("L%d goal %d/lv%d", l.def.Number, l.def.TargetScore, l.def.TargetLevel)
}
