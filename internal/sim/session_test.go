package sim

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/grid"
)

// testConfig is a 10x10 board with no random blocks or obstacles at start.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Cols = 10
	cfg.Rows = 10
	cfg.Seed = 42
	cfg.InitialBlocks = 0
	cfg.Obstacles = 0
	return cfg
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSessionRejectsBadGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Cols = 0
	if _, err := NewSession(cfg, nil, nil); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Errorf("error = %v, expected ErrInvalidDimension", err)
	}
}

func TestNewSessionPlacesEater(t *testing.T) {
	s := newTestSession(t, testConfig())

	e := s.Eater()
	if e.Pos != (core.Point{Row: 5, Col: 5}) {
		t.Errorf("eater at %+v, expected (5,5)", e.Pos)
	}
	if e.Facing != core.DirRight {
		t.Errorf("facing = %v, expected right", e.Facing)
	}
	if s.Grid().Count(grid.EaterHead) != 1 {
		t.Errorf("EaterHead count = %d, expected 1", s.Grid().Count(grid.EaterHead))
	}
	if len(e.Trail) != 2 || e.Trail[0] != (core.Point{Row: 5, Col: 4}) {
		t.Errorf("trail = %v, expected two segments behind the head", e.Trail)
	}
}

func TestEatBlockScenario(t *testing.T) {
	s := newTestSession(t, testConfig())
	if err := s.Grid().SetOccupancy(5, 6, grid.Block, 10); err != nil {
		t.Fatal(err)
	}

	res := s.Step(core.IntentNone)

	if got := s.Eater().Pos; got != (core.Point{Row: 5, Col: 6}) {
		t.Errorf("eater at %+v, expected (5,6)", got)
	}
	if s.Score() != 10 || res.Gained != 10 {
		t.Errorf("score = %d gained = %d, expected 10", s.Score(), res.Gained)
	}
	if !res.Events.Has(EventConsumed) || !res.Events.Has(EventSpawned) {
		t.Errorf("events = %b, expected consumed and spawned", res.Events)
	}
	c, _ := s.Grid().CellAt(5, 6)
	if c.Kind != grid.EaterHead {
		t.Errorf("cell (5,6) = %v, expected eater head", c.Kind)
	}
	if s.Grid().Count(grid.Block) != 1 {
		t.Errorf("Block count = %d, expected one replacement block", s.Grid().Count(grid.Block))
	}
	if res.Outcome != OutcomeContinue {
		t.Errorf("outcome = %v, expected continue", res.Outcome)
	}
}

func TestWallBumpScenario(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 5
	s := newTestSession(t, cfg)

	// Walk to the right edge
	for s.Eater().Pos.Col < 9 {
		s.Step(core.IntentNone)
	}
	pos := s.Eater().Pos
	score := s.Score()

	for i := 1; i <= 3; i++ {
		res := s.Step(core.IntentMoveRight)
		if !res.Events.Has(EventBumped) {
			t.Errorf("bump %d: events = %b, expected bumped", i, res.Events)
		}
		if s.Eater().Pos != pos {
			t.Errorf("bump %d: eater moved to %+v", i, s.Eater().Pos)
		}
		if s.Eater().Lives != 5-i {
			t.Errorf("bump %d: lives = %d, expected %d", i, s.Eater().Lives, 5-i)
		}
	}
	if s.Score() != score {
		t.Errorf("score changed from %d to %d", score, s.Score())
	}
}

func TestBumpStopsMomentum(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 5
	s := newTestSession(t, cfg)
	_ = s.Grid().SetOccupancy(5, 6, grid.Obstacle, 0)

	s.Step(core.IntentNone)
	lives := s.Eater().Lives
	s.Step(core.IntentNone)
	if s.Eater().Lives != lives {
		t.Error("an idle eater should not keep bumping")
	}
}

func TestLivesExhaustedEndsSession(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 1
	s := newTestSession(t, cfg)
	_ = s.Grid().SetOccupancy(5, 6, grid.Obstacle, 0)

	res := s.Step(core.IntentMoveRight)
	if res.Outcome != OutcomeGameOver || res.Result.Reason != ReasonLivesExhausted {
		t.Errorf("result = %+v, expected game over by lives", res)
	}

	// Later steps are inert
	tick := s.Tick()
	if s.Step(core.IntentMoveUp).Outcome != OutcomeGameOver || s.Tick() != tick {
		t.Error("Step after game over should do nothing")
	}
}

func TestBoardFullScenario(t *testing.T) {
	cfg := testConfig()
	cfg.Cols, cfg.Rows = 3, 3
	cfg.Lives = 0
	cfg.Trail = false
	s := newTestSession(t, cfg)

	for _, p := range s.Grid().EmptyCells() {
		_ = s.Grid().SetOccupancy(p.Row, p.Col, grid.Obstacle, 0)
	}

	res := s.Step(core.IntentNone)
	if res.Outcome != OutcomeGameOver {
		t.Fatalf("outcome = %v, expected game over", res.Outcome)
	}
	if res.Result.Reason != ReasonTrapped {
		t.Errorf("reason = %v, expected trapped", res.Result.Reason)
	}
	if !s.Over() {
		t.Error("session should be over")
	}
}

func TestFullBoardWithBlockContinues(t *testing.T) {
	cfg := testConfig()
	cfg.Cols, cfg.Rows = 3, 3
	cfg.Lives = 0
	cfg.Trail = false
	cfg.Momentum = false
	s := newTestSession(t, cfg)

	for _, p := range s.Grid().EmptyCells() {
		_ = s.Grid().SetOccupancy(p.Row, p.Col, grid.Obstacle, 0)
	}
	_ = s.Grid().SetOccupancy(0, 1, grid.Block, 10)

	if res := s.Step(core.IntentNone); res.Outcome != OutcomeContinue {
		t.Errorf("outcome = %v, expected continue while a block is reachable", res.Outcome)
	}
}

func TestReversalIsRejected(t *testing.T) {
	s := newTestSession(t, testConfig())
	lives := s.Eater().Lives

	res := s.Step(core.IntentMoveLeft)
	if !res.Events.Has(EventReversal) {
		t.Errorf("events = %b, expected reversal", res.Events)
	}
	if s.Eater().Pos != (core.Point{Row: 5, Col: 5}) {
		t.Errorf("eater moved to %+v on reversal", s.Eater().Pos)
	}
	if s.Eater().Facing != core.DirRight {
		t.Errorf("facing = %v, reversal should keep the old facing", s.Eater().Facing)
	}
	if s.Eater().Lives != lives {
		t.Error("reversal should not cost a life")
	}
}

func TestIdleWithoutMomentum(t *testing.T) {
	cfg := testConfig()
	cfg.Momentum = false
	s := newTestSession(t, cfg)

	s.Step(core.IntentNone)
	if s.Eater().Pos != (core.Point{Row: 5, Col: 5}) {
		t.Errorf("eater moved to %+v without input", s.Eater().Pos)
	}
	s.Step(core.IntentMoveUp)
	if s.Eater().Pos != (core.Point{Row: 4, Col: 5}) {
		t.Errorf("eater at %+v, expected (4,5)", s.Eater().Pos)
	}
}

func TestWrappedBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = grid.Wrapped
	s := newTestSession(t, cfg)

	for range 5 {
		s.Step(core.IntentNone)
	}
	if got := s.Eater().Pos; got != (core.Point{Row: 5, Col: 0}) {
		t.Errorf("eater at %+v, expected to wrap to (5,0)", got)
	}
}

func TestTrailFollowsHead(t *testing.T) {
	s := newTestSession(t, testConfig())

	s.Step(core.IntentNone)
	s.Step(core.IntentMoveDown)

	e := s.Eater()
	if e.Pos != (core.Point{Row: 6, Col: 6}) {
		t.Fatalf("eater at %+v, expected (6,6)", e.Pos)
	}
	expected := []core.Point{{Row: 5, Col: 6}, {Row: 5, Col: 5}}
	if len(e.Trail) != len(expected) {
		t.Fatalf("trail = %v, expected %v", e.Trail, expected)
	}
	for i := range expected {
		if e.Trail[i] != expected[i] {
			t.Errorf("trail[%d] = %+v, expected %+v", i, e.Trail[i], expected[i])
		}
	}
	if s.Grid().Count(grid.EaterBody) != 2 {
		t.Errorf("EaterBody count = %d, expected 2", s.Grid().Count(grid.EaterBody))
	}
}

func TestLevelUpRestoresLife(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)
	s.eater.Lives = 1
	_ = s.Grid().SetOccupancy(5, 6, grid.Block, 50)

	res := s.Step(core.IntentNone)
	if !res.Events.Has(EventLevelUp) {
		t.Errorf("events = %b, expected level up", res.Events)
	}
	e := s.Eater()
	if e.Level != 2 || e.Lives != 2 || e.NextLevel != 200 {
		t.Errorf("eater = level %d lives %d next %d, expected 2/2/200", e.Level, e.Lives, e.NextLevel)
	}
	if e.Color() != core.ColorCyan {
		t.Errorf("level 2 color = %v, expected cyan", e.Color())
	}
}

func TestExperienceCapsAtMaxLevel(t *testing.T) {
	e := newEater(core.Point{}, 3)
	e.gain(1_000_000)
	if e.Level != MaxLevel {
		t.Errorf("level = %d, expected %d", e.Level, MaxLevel)
	}
	if e.gain(500) != 0 {
		t.Error("no levels should be gained past the maximum")
	}
}

type fixedPacer float64

func (p fixedPacer) Level(int, int) float64 { return float64(p) }

func TestPacerShortensSpawnInterval(t *testing.T) {
	cfg := testConfig()

	plain, _ := NewSession(cfg, nil, nil)
	paced, _ := NewSession(cfg, nil, fixedPacer(1))

	if plain.Spawner().Interval != 16 {
		t.Errorf("base interval = %d, expected 16", plain.Spawner().Interval)
	}
	if paced.Spawner().Interval != 8 {
		t.Errorf("paced interval = %d, expected 8", paced.Spawner().Interval)
	}
}

func TestTimedSpawn(t *testing.T) {
	s := newTestSession(t, testConfig())
	s.cfg.Momentum = false

	for range 15 {
		s.Step(core.IntentNone)
	}
	if s.Grid().Count(grid.Block) != 0 {
		t.Fatalf("block spawned before the interval elapsed")
	}
	res := s.Step(core.IntentNone)
	if !res.Events.Has(EventSpawned) || s.Grid().Count(grid.Block) != 1 {
		t.Errorf("expected one timed spawn at tick 16, events = %b", res.Events)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Cols, cfg.Rows = 16, 12
	cfg.InitialBlocks = 4
	cfg.Obstacles = 6
	cfg.Lives = 0

	s1 := newTestSession(t, cfg)
	s2 := newTestSession(t, cfg)

	intents := []core.Intent{core.IntentMoveDown, core.IntentMoveLeft, core.IntentMoveUp, core.IntentMoveRight}
	for i := range 300 {
		in := core.IntentNone
		if i%7 == 0 {
			in = intents[(i/7)%len(intents)]
		}
		s1.Step(in)
		s2.Step(in)
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
}

func TestInvariantsUnderRandomInput(t *testing.T) {
	intents := []core.Intent{
		core.IntentNone, core.IntentMoveUp, core.IntentMoveDown,
		core.IntentMoveLeft, core.IntentMoveRight,
	}

	for seed := int64(1); seed <= 60; seed++ {
		cfg := testConfig()
		cfg.Seed = seed
		cfg.InitialBlocks = 5
		cfg.Obstacles = 5
		cfg.Lives = 0
		if seed%2 == 0 {
			cfg.Boundary = grid.Wrapped
		}
		if seed%3 == 0 {
			cfg.Lives = 3
		}
		s := newTestSession(t, cfg)
		rng := rand.New(rand.NewSource(uint64(seed)))

		prev := 0
		total := 0
		for range 400 {
			res := s.Step(intents[rng.Intn(len(intents))])
			p := s.Eater().Pos
			if !s.Grid().InBounds(p.Row, p.Col) {
				t.Fatalf("seed %d: eater out of bounds at %+v", seed, p)
			}
			if s.Score() < prev {
				t.Fatalf("seed %d: score decreased from %d to %d", seed, prev, s.Score())
			}
			if heads := s.Grid().Count(grid.EaterHead); heads != 1 {
				t.Fatalf("seed %d: %d eater heads", seed, heads)
			}
			checkTrail(t, s)
			if l := s.Eater().Lives; l < 0 || l > cfg.Lives {
				t.Fatalf("seed %d: lives %d outside [0, %d]", seed, l, cfg.Lives)
			}
			total += res.Gained
			prev = s.Score()
			if res.Outcome == OutcomeGameOver {
				break
			}
		}
		if total != s.Score() {
			t.Errorf("seed %d: sum of gains %d != score %d", seed, total, s.Score())
		}
	}
}

// checkTrail verifies that the trail and the EaterBody cells agree.
func checkTrail(t *testing.T, s *Session) {
	t.Helper()
	e := s.Eater()
	if got := s.Grid().Count(grid.EaterBody); got != len(e.Trail) {
		t.Fatalf("tick %d: %d EaterBody cells, trail has %d segments", s.Tick(), got, len(e.Trail))
	}
	if len(e.Trail) > s.trailCap() {
		t.Fatalf("tick %d: trail %d longer than cap %d", s.Tick(), len(e.Trail), s.trailCap())
	}
	for _, p := range e.Trail {
		if p == e.Pos {
			t.Fatalf("tick %d: trail overlaps head at %+v", s.Tick(), p)
		}
		if k := s.Grid().At(p).Kind; k != grid.EaterBody {
			t.Fatalf("tick %d: trail point %+v holds %v", s.Tick(), p, k)
		}
	}
}

// arrange rebuilds a 3x3 board with the eater at head dragging trail.
// Every other cell becomes an obstacle, so the board is full.
func arrange(t *testing.T, startTrail int, head core.Point, trail []core.Point) *Session {
	t.Helper()
	cfg := testConfig()
	cfg.Cols, cfg.Rows = 3, 3
	cfg.Lives = 0
	cfg.Momentum = false
	cfg.StartTrail = startTrail
	s := newTestSession(t, cfg)

	for r := range 3 {
		for c := range 3 {
			s.grid.Clear(core.Point{Row: r, Col: c})
		}
	}
	s.eater.Pos = head
	s.eater.Trail = append([]core.Point(nil), trail...)
	_ = s.grid.SetOccupancy(head.Row, head.Col, grid.EaterHead, 0)
	for _, p := range trail {
		_ = s.grid.SetOccupancy(p.Row, p.Col, grid.EaterBody, 0)
	}
	for _, p := range s.grid.EmptyCells() {
		_ = s.grid.SetOccupancy(p.Row, p.Col, grid.Obstacle, 0)
	}
	if s.grid.Count(grid.Empty) != 0 {
		t.Fatal("board should be full")
	}
	return s
}

func TestFullBoardChasingTailContinues(t *testing.T) {
	// Head in the middle, body curling above and left; the tail at (1,0)
	// is the only way out and leaves as the head enters.
	s := arrange(t, 3, core.Point{Row: 1, Col: 1},
		[]core.Point{{Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 1, Col: 0}})

	res := s.Step(core.IntentNone)
	if res.Outcome != OutcomeContinue {
		t.Fatalf("result = %+v, expected the moving tail to count as a way out", res.Result)
	}

	res = s.Step(core.IntentMoveLeft)
	if !res.Events.Has(EventMoved) || res.Outcome != OutcomeContinue {
		t.Fatalf("events %b outcome %v, expected a move into the tail", res.Events, res.Outcome)
	}
	if s.Eater().Pos != (core.Point{Row: 1, Col: 0}) {
		t.Errorf("head at %+v, expected (1,0)", s.Eater().Pos)
	}
	checkTrail(t, s)
}

func TestFullBoardOnlyReversalIsTrapped(t *testing.T) {
	tests := []struct {
		name       string
		startTrail int
		trail      []core.Point
	}{
		{"body behind", 2, []core.Point{{Row: 0, Col: 1}, {Row: 0, Col: 0}}},
		{"tail behind", 1, []core.Point{{Row: 0, Col: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := arrange(t, tc.startTrail, core.Point{Row: 1, Col: 1}, tc.trail)

			res := s.Step(core.IntentNone)
			if res.Outcome != OutcomeGameOver || res.Result.Reason != ReasonTrapped {
				t.Errorf("result = %+v, expected trapped", res.Result)
			}
		})
	}
}

func TestBoardRendering(t *testing.T) {
	cfg := testConfig()
	cfg.Cols, cfg.Rows = 3, 2
	cfg.Trail = false
	s := newTestSession(t, cfg)

	if got := Board(s.Grid()); got != "...\n.@." {
		t.Errorf("Board() = %q", got)
	}
}
