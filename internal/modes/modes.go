// Package modes holds the Block Eater game modes. Each mode is a
// sim.Rules implementation registered under a stable ID in init().
package modes

import (
	"fmt"

	"github.com/huuugs/block/internal/registry"
	"github.com/huuugs/block/internal/sim"
)

// Mode IDs. They double as score storage keys.
const (
	IDEndless = "endless"
	IDLevel   = "level"
	IDTime    = "time"
)

// Mode is a set of rules with a display title.
type Mode interface {
	sim.Rules
	Title() string
}

// LevelSelector is implemented by modes that start at a chosen level.
type LevelSelector interface {
	SetLevel(n int) error
}

// Staged is implemented by modes that move through stages within one
// session.
type Staged interface {
	sim.Stager
	Cleared() int
}

var _ Staged = (*Level)(nil)

// Registry holds every available mode.
var Registry = registry.New[Mode]("mode")

func init() {
	Registry.Register(IDEndless, "Endless", func() Mode { return NewEndless() })
	Registry.Register(IDLevel, "Levels", func() Mode { return NewLevel(1) })
	Registry.Register(IDTime, "Time Challenge", func() Mode { return NewTimeChallenge() })
}

// Order is the menu order of the modes.
var Order = []string{IDEndless, IDLevel, IDTime}

// New creates the mode with the given ID. level is applied to modes
// that support level selection and ignored otherwise.
func New(id string, level int) (Mode, error) {
	m, err := Registry.Create(id)
	if err != nil {
		return nil, err
	}
	if ls, ok := m.(LevelSelector); ok && level > 0 {
		if err := ls.SetLevel(level); err != nil {
			return nil, fmt.Errorf("modes: %s: %w", id, err)
		}
	}
	return m, nil
}
