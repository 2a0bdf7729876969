// Package sim implements the Block Eater simulation engine. A Session
// owns the grid, the eater and the spawner and advances them one fixed
// tick at a time. Nothing here reads the wall clock; time is counted in
// ticks so that equal seeds and inputs give equal sessions.
package sim

import (
	"fmt"
	"math"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/grid"
)

// Outcome is the terminal signal of a tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeGameOver
)

func (o Outcome) String() string {
	if o == OutcomeGameOver {
		return "game-over"
	}
	return "continue"
}

// Event is a bit set of things that happened during a tick.
type Event uint16

const (
	EventMoved Event = 1 << iota
	EventConsumed
	EventBumped
	EventReversal
	EventSpawned
	EventBoardFull
	EventLevelUp
	EventLifeLost
	EventGameOver
	EventStageCleared
)

// Has reports whether all bits of e are set.
func (ev Event) Has(e Event) bool {
	return ev&e == e
}

// StepResult is returned by Step.
type StepResult struct {
	Outcome Outcome
	Events  Event
	Gained  int // score gained this tick
	Result  Result
}

// Session is one play-through.
type Session struct {
	cfg   Config
	rules Rules
	pacer Pacer

	grid    *grid.Grid
	eater   Eater
	spawner *Spawner

	tick   int
	score  int
	eaten  int
	over   bool
	result Result
}

// NewSession creates a session with the eater at the centre of the grid
// facing right. rules may be nil for a session without mode rules.
func NewSession(cfg Config, rules Rules, pacer Pacer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Cols, cfg.Rows, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = freeRules{}
	}

	s := &Session{
		cfg:     cfg,
		rules:   rules,
		pacer:   pacer,
		grid:    g,
		spawner: newSpawner(cfg.Seed, cfg.BlockValues),
	}

	center := core.Point{Row: cfg.Rows / 2, Col: cfg.Cols / 2}
	s.eater = newEater(center, cfg.Lives)
	if err := g.SetOccupancy(center.Row, center.Col, grid.EaterHead, 0); err != nil {
		return nil, fmt.Errorf("sim: place eater: %w", err)
	}
	s.layTrail()

	s.PlaceObstacles(cfg.Obstacles)
	rules.Begin(s)
	s.PlaceBlocks(cfg.InitialBlocks)
	s.spawner.Interval = s.spawnInterval()

	return s, nil
}

// layTrail places the starting body segments behind the eater.
func (s *Session) layTrail() {
	n := s.trailCap()
	p := s.eater.Pos
	back := s.eater.Facing.Opposite()
	for range n {
		next, ok := s.grid.Neighbor(p, back)
		if !ok || s.grid.At(next).Kind != grid.Empty {
			return
		}
		_ = s.grid.SetOccupancy(next.Row, next.Col, grid.EaterBody, 0)
		s.eater.Trail = append(s.eater.Trail, next)
		p = next
	}
}

// PlaceObstacles puts n obstacles on random empty cells that are not
// directly around the eater. Rules call it at setup and between stages.
func (s *Session) PlaceObstacles(n int) int {
	placed := 0
	for range n {
		var free []core.Point
		for _, p := range s.grid.EmptyCells() {
			if core.Abs(p.Row-s.eater.Pos.Row)+core.Abs(p.Col-s.eater.Pos.Col) > 2 {
				free = append(free, p)
			}
		}
		if len(free) == 0 {
			break
		}
		p := s.spawner.pick(free)
		_ = s.grid.SetOccupancy(p.Row, p.Col, grid.Obstacle, 0)
		placed++
	}
	return placed
}

// PlaceBlocks puts up to n blocks on random empty cells and returns how
// many were placed.
func (s *Session) PlaceBlocks(n int) int {
	placed := 0
	for range n {
		if _, ok := s.spawner.place(s.grid); !ok {
			break
		}
		placed++
	}
	return placed
}

// Step advances the session by exactly one tick.
// After the session has ended Step does nothing and keeps reporting
// OutcomeGameOver.
func (s *Session) Step(intent core.Intent) StepResult {
	if s.over {
		return StepResult{Outcome: OutcomeGameOver, Result: s.result}
	}
	s.tick++

	res := StepResult{}
	scoreBefore := s.score

	s.move(intent, &res)

	s.spawner.Interval = s.spawnInterval()
	spawned, full := s.spawner.step(s.grid)
	if spawned > 0 {
		res.Events |= EventSpawned
	}
	if full {
		res.Events |= EventBoardFull
	}

	res.Gained = s.score - scoreBefore
	stage := s.stage()
	result, done := s.judge()
	if s.stage() != stage {
		res.Events |= EventStageCleared
	}
	if done {
		s.over = true
		s.result = result
		res.Outcome = OutcomeGameOver
		res.Result = result
		res.Events |= EventGameOver
	}
	return res
}

// move resolves the eater's action for this tick.
func (s *Session) move(intent core.Intent, res *StepResult) {
	e := &s.eater
	dir := e.Facing

	if d, ok := intent.Direction(); ok {
		if s.isReversal(d) {
			res.Events |= EventReversal
			return
		}
		dir = d
	} else if !s.cfg.Momentum || !e.Moving {
		return
	}
	e.Facing = dir

	next, ok := s.grid.Neighbor(e.Pos, dir)
	if !ok {
		s.bump(res)
		return
	}

	cell := s.grid.At(next)
	switch cell.Kind {
	case grid.Empty:
		s.advance(next)
		res.Events |= EventMoved
	case grid.Block:
		s.advance(next)
		s.consume(cell.Value, res)
		res.Events |= EventMoved
	case grid.EaterBody:
		if s.tailMoves(next) {
			s.advance(next)
			res.Events |= EventMoved
			return
		}
		s.bump(res)
	case grid.Obstacle, grid.EaterHead, grid.Wall:
		s.bump(res)
	}
}

// isReversal reports whether stepping in d would enter the segment
// directly behind the head.
func (s *Session) isReversal(d core.Direction) bool {
	if len(s.eater.Trail) == 0 {
		return false
	}
	next, ok := s.grid.Neighbor(s.eater.Pos, d)
	return ok && next == s.eater.Trail[0]
}

// tailMoves reports whether p is the last trail segment and will be
// vacated by this move.
func (s *Session) tailMoves(p core.Point) bool {
	t := s.eater.Trail
	return len(t) > 0 && t[len(t)-1] == p && len(t) >= s.trailCap()
}

func (s *Session) bump(res *StepResult) {
	s.eater.Moving = false
	res.Events |= EventBumped
	if s.cfg.Lives > 0 && s.eater.Lives > 0 {
		s.eater.Lives--
		res.Events |= EventLifeLost
	}
}

// advance moves the head to next, shifting the trail behind it.
func (s *Session) advance(next core.Point) {
	e := &s.eater
	old := e.Pos
	limit := s.trailCap()

	if limit > 0 {
		e.Trail = append([]core.Point{old}, e.Trail...)
		_ = s.grid.SetOccupancy(old.Row, old.Col, grid.EaterBody, 0)
	} else {
		s.grid.Clear(old)
	}
	for len(e.Trail) > limit {
		tail := e.Trail[len(e.Trail)-1]
		e.Trail = e.Trail[:len(e.Trail)-1]
		if tail != next {
			s.grid.Clear(tail)
		}
	}

	_ = s.grid.SetOccupancy(next.Row, next.Col, grid.EaterHead, 0)
	e.Pos = next
	e.Moving = true
}

func (s *Session) consume(value int, res *StepResult) {
	s.score += value
	s.eaten++
	s.spawner.Pending++
	res.Events |= EventConsumed

	if levels := s.eater.gain(value); levels > 0 {
		res.Events |= EventLevelUp
		if s.cfg.Lives > 0 {
			s.eater.Lives = min(s.eater.Lives+levels, s.cfg.Lives)
		}
	}
}

// trailCap is the number of body segments the eater may drag.
func (s *Session) trailCap() int {
	if !s.cfg.Trail {
		return 0
	}
	return s.cfg.StartTrail + s.eater.Level - 1
}

// spawnInterval asks the rules for the interval and shortens it by up
// to half according to the pacer.
func (s *Session) spawnInterval() int {
	iv := s.rules.SpawnInterval(s)
	if iv <= 0 {
		return 0
	}
	if s.pacer != nil {
		level := s.pacer.Level(s.score, s.tick)
		iv = int(math.Round(float64(iv) * (1 - 0.5*level)))
	}
	return max(iv, 1)
}

// stage returns the current stage of staged rules, or 0.
func (s *Session) stage() int {
	if st, ok := s.rules.(Stager); ok {
		return st.Stage()
	}
	return 0
}

// judge evaluates the terminal conditions after a tick.
func (s *Session) judge() (Result, bool) {
	if s.cfg.Lives > 0 && s.eater.Lives <= 0 {
		return Result{Reason: ReasonLivesExhausted}, true
	}
	if s.grid.Count(grid.Empty) == 0 && !s.hasLegalMove() {
		return Result{Reason: ReasonTrapped}, true
	}
	return s.rules.Judge(s)
}

// hasLegalMove reports whether any neighbour of the head can be entered.
func (s *Session) hasLegalMove() bool {
	for _, d := range core.Directions {
		next, ok := s.grid.Neighbor(s.eater.Pos, d)
		if !ok {
			continue
		}
		switch s.grid.At(next).Kind {
		case grid.Empty, grid.Block:
			return true
		case grid.EaterBody:
			if s.tailMoves(next) && !s.isReversal(d) {
				return true
			}
		}
	}
	return false
}

// Ticks converts seconds to ticks at the session tick rate.
func (s *Session) Ticks(seconds float64) int {
	return int(math.Round(seconds * float64(s.cfg.TickRate)))
}

// Grid returns the playfield. Callers outside the simulation must treat
// it as read-only.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Eater returns a copy of the eater state.
func (s *Session) Eater() Eater {
	e := s.eater
	e.Trail = append([]core.Point(nil), s.eater.Trail...)
	return e
}

// Spawner returns a copy of the spawner counters.
func (s *Session) Spawner() Spawner {
	return Spawner{Timer: s.spawner.Timer, Interval: s.spawner.Interval, Pending: s.spawner.Pending}
}

// Config returns the session parameters.
func (s *Session) Config() Config { return s.cfg }

// Tick returns the number of ticks stepped so far.
func (s *Session) Tick() int { return s.tick }

// Seconds returns simulated play time.
func (s *Session) Seconds() float64 {
	return float64(s.tick) / float64(s.cfg.TickRate)
}

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Eaten returns the number of blocks consumed.
func (s *Session) Eaten() int { return s.eaten }

// TimeLeft returns the remaining ticks for timed modes, or -1.
func (s *Session) TimeLeft() int {
	limit := s.rules.TimeLimit(s)
	if limit <= 0 {
		return -1
	}
	return max(limit-s.tick, 0)
}

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// Result returns how the session ended.
func (s *Session) Result() Result { return s.result }

// Status returns the mode HUD fragment.
func (s *Session) Status() string { return s.rules.Status(s) }
