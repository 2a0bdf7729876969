package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/huuugs/block/internal/input"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Confirm, k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a game key into a raw input event.
// ok is false for keys that are not game input. The first key of each
// game binding is its canonical name for input.KeyFromName, so extra
// keys can be bound without touching the input package.
func (k KeyMap) Event(msg tea.KeyMsg) (ev input.Event, ok bool) {
	for _, b := range []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Confirm} {
		if !key.Matches(msg, b) || len(b.Keys()) == 0 {
			continue
		}
		if gk := input.KeyFromName(b.Keys()[0]); gk != input.KeyNone {
			return input.Press(gk), true
		}
	}
	return input.Event{}, false
}

// mousePointer is the pointer ID used for the terminal mouse.
const mousePointer = 0

// MouseEvent translates a terminal mouse message into a pointer event.
// Coordinates are in board cells: a cell is two columns wide and one
// row tall, so swipe thresholds read the same on both axes.
func MouseEvent(msg tea.MouseMsg) (input.Event, bool) {
	x, y := float64(msg.X)/2, float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return input.Event{}, false
		}
		return input.Down(mousePointer, x, y), true
	case tea.MouseActionMotion:
		return input.Move(mousePointer, x, y), true
	case tea.MouseActionRelease:
		return input.Up(mousePointer, x, y), true
	}
	return input.Event{}, false
}
