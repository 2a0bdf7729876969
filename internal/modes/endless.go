package modes

import (
	"fmt"
	"math"

	"github.com/huuugs/block/internal/sim"
)

// Endless never ends on its own. Blocks arrive faster the longer the
// session runs: the pace multiplier grows by 0.01 per second up to 5.
type Endless struct{}

// NewEndless creates the endless mode.
func NewEndless() *Endless { return &Endless{} }

func (*Endless) ID() string { return IDEndless }
func (*Endless) Title() string { return "Endless" }

func (*Endless) Begin(*sim.Session) {}

// Multiplier returns the pace multiplier after the given play time.
func (*Endless) Multiplier(seconds float64) float64 {
	return math.Min(1+seconds*0.01, 5)
}

// SpawnInterval is 2/multiplier + 0.5 seconds.
func (m *Endless) SpawnInterval(s *sim.Session) int {
	return s.Ticks(2/m.Multiplier(s.Seconds()) + 0.5)
}

func (*Endless) TimeLimit(*sim.Session) int { return 0 }

func (*Endless) Judge(*sim.Session) (sim.Result, bool) { return sim.Result{}, false }

func (m *Endless) Status(s *sim.Session) string {
	return fmt.Sprintf("pace x%.2f", m.Multiplier(s.Seconds()))
}
