package sim

import (
	"golang.org/x/exp/rand"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/grid"
)

// Spawner decides when and where new blocks appear. It owns its random
// generator so a session is reproducible from its seed.
type Spawner struct {
	Timer    int // ticks since the last timed spawn
	Interval int // ticks between timed spawns, refreshed every tick
	Pending  int // replacement blocks owed for consumed ones

	values []int
	rng    *rand.Rand
}

func newSpawner(seed int64, values []int) *Spawner {
	if len(values) == 0 {
		values = []int{10}
	}
	return &Spawner{
		values: values,
		rng:    rand.New(rand.NewSource(uint64(seed))),
	}
}

// pick returns a uniformly random element of cells.
func (sp *Spawner) pick(cells []core.Point) core.Point {
	return cells[sp.rng.Intn(len(cells))]
}

func (sp *Spawner) value() int {
	return sp.values[sp.rng.Intn(len(sp.values))]
}

// place puts one block on a random empty cell. It returns false when
// the board has no empty cell.
func (sp *Spawner) place(g *grid.Grid) (core.Point, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return core.Point{}, false
	}
	p := sp.pick(empty)
	_ = g.SetOccupancy(p.Row, p.Col, grid.Block, sp.value())
	return p, true
}

// step advances the timer and places owed and timed blocks.
// full reports that at least one spawn found no empty cell.
func (sp *Spawner) step(g *grid.Grid) (spawned int, full bool) {
	sp.Timer++
	due := sp.Pending
	if sp.Interval > 0 && sp.Timer >= sp.Interval {
		sp.Timer = 0
		due++
	}
	sp.Pending = 0

	for range due {
		if _, ok := sp.place(g); !ok {
			// Owed blocks are dropped, not queued, on a full board
			return spawned, true
		}
		spawned++
	}
	return spawned, false
}
