package modes

import "github.com/huuugs/block/internal/sim"

// ChallengeSeconds is the length of a time challenge.
const ChallengeSeconds = 180

// TimeChallenge scores as much as possible in three minutes. Running
// out the clock is a win.
type TimeChallenge struct{}

// NewTimeChallenge creates the time challenge mode.
func NewTimeChallenge() *TimeChallenge { return &TimeChallenge{} }

func (*TimeChallenge) ID() string { return IDTime }
func (*TimeChallenge) Title() string { return "Time Challenge" }

func (*TimeChallenge) Begin(*sim.Session) {}

func (*TimeChallenge) SpawnInterval(s *sim.Session) int { return s.Ticks(1.5) }

func (*TimeChallenge) TimeLimit(s *sim.Session) int { return s.Ticks(ChallengeSeconds) }

func (m *TimeChallenge) Judge(s *sim.Session) (sim.Result, bool) {
	if s.Tick() >= m.TimeLimit(s) {
		return sim.Result{Reason: sim.ReasonTimeUp, Won: true}, true
	}
	return sim.Result{}, false
}

func (*TimeChallenge) Status(*sim.Session) string { return "" }
