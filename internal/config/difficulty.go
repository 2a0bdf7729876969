package config

import (
	"github.com/huuugs/block/internal/sim"
)

// Progression types.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

var _ sim.Pacer = (*Pacer)(nil)

// Pacer raises the spawn pace of a session from the preset's starting
// level toward 1 as the score, or the play time, nears MaxAt.
type Pacer struct {
	start    float64
	by       string
	maxAt    float64 // score, or seconds for time progression
	tickRate int
	enabled  bool
}

// NewPacer creates a pacer for sessions running at tickRate ticks per
// second.
func NewPacer(cfg DifficultyConfig, tickRate int) *Pacer {
	return &Pacer{
		start:    clamp01(cfg.InitialLevel),
		by:       cfg.Progression.Type,
		maxAt:    float64(max(cfg.Progression.MaxAt, 1)),
		tickRate: max(tickRate, 1),
		enabled:  cfg.Enabled,
	}
}

// Progressive reports whether the level changes during a session.
func (p *Pacer) Progressive() bool {
	return p.enabled && (p.by == ProgressByScore || p.by == ProgressByTime)
}

// Level returns the difficulty in [0, 1].
func (p *Pacer) Level(score int, ticks int) float64 {
	if !p.Progressive() {
		return p.start
	}

	var progress float64
	if p.by == ProgressByScore {
		progress = float64(score) / p.maxAt
	} else {
		progress = float64(ticks) / float64(p.tickRate) / p.maxAt
	}
	return p.start + clamp01(progress)*(1-p.start)
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
