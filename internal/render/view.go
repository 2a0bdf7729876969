// Package render turns game state into frames. Renderers only read the
// View they are given; they never mutate the session or the state
// machine. A render failure is reported to the caller, which skips the
// frame and keeps ticking.
package render

import (
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/registry"
	"github.com/huuugs/block/internal/sim"
)

// Renderer draws one frame.
type Renderer interface {
	Render(v View) error
}

// MenuView is what the menu screen shows.
type MenuView struct {
	Modes      []registry.Info
	Selected   int // index into Modes
	Level      int // selected start level for the level mode
	LevelCount int
	LevelMode  string // ID of the mode that takes a level
}

// SelectedMode returns the highlighted mode, if any.
func (m MenuView) SelectedMode() (registry.Info, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Modes) {
		return registry.Info{}, false
	}
	return m.Modes[m.Selected], true
}

// Summary describes the last finished session.
type Summary struct {
	ModeTitle string
	Score     int
	Result    sim.Result
	NewBest   bool
}

// View is the read-only input of a renderer.
type View struct {
	State   fsm.State
	Session *sim.Session // nil in Menu
	Mode    string       // title of the running mode
	Menu    MenuView
	Best    int
	Profile string
	Last    Summary
	Muted   bool
}
