package sim

import (
	"fmt"

	"github.com/huuugs/block/internal/grid"
)

// Config holds the per-session simulation parameters.
type Config struct {
	Cols     int
	Rows     int
	Boundary grid.Boundary
	Seed     int64
	TickRate int // ticks per second; used to convert mode timers

	Lives      int  // starting and maximum lives; 0 disables lives
	Momentum   bool // keep moving in the facing direction without input
	Trail      bool // eater drags body segments behind it
	StartTrail int  // trail length at eater level 1

	BlockValues   []int // candidate block values, picked uniformly
	InitialBlocks int
	Obstacles     int // obstacles placed at session start
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{
		Cols:          24,
		Rows:          16,
		Boundary:      grid.Walled,
		TickRate:      8,
		Lives:         3,
		Momentum:      true,
		Trail:         true,
		StartTrail:    2,
		BlockValues:   []int{10, 10, 10, 25, 50},
		InitialBlocks: 3,
	}
}

// Validate checks the parameters a session cannot start without.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", grid.ErrInvalidDimension, c.Cols, c.Rows)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("sim: tick rate must be positive, got %d", c.TickRate)
	}
	if c.Lives < 0 || c.StartTrail < 0 || c.InitialBlocks < 0 || c.Obstacles < 0 {
		return fmt.Errorf("sim: negative count in config")
	}
	for _, v := range c.BlockValues {
		if v <= 0 {
			return fmt.Errorf("sim: block value must be positive, got %d", v)
		}
	}
	return nil
}

// Pacer reports a difficulty level in [0, 1] for the current score and
// tick count. Higher levels shorten spawn intervals.
type Pacer interface {
	Level(score int, ticks int) float64
}
