package input

import "strings"

// EventKind tags a raw platform event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
	KeyPress
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case PointerCancel:
		return "pointer-cancel"
	case KeyPress:
		return "key"
	default:
		return "unknown"
	}
}

// Key is a normalized discrete key code.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyConfirm
)

// Event is one raw input event delivered by a frontend.
// Pointer events carry an ID (touch id, or 0 for a mouse) and surface
// coordinates in pixels or cells; key events carry Key.
type Event struct {
	Kind EventKind
	ID   int
	X, Y float64
	Key  Key
}

// Down builds a PointerDown event.
func Down(id int, x, y float64) Event { return Event{Kind: PointerDown, ID: id, X: x, Y: y} }

// Move builds a PointerMove event.
func Move(id int, x, y float64) Event { return Event{Kind: PointerMove, ID: id, X: x, Y: y} }

// Up builds a PointerUp event.
func Up(id int, x, y float64) Event { return Event{Kind: PointerUp, ID: id, X: x, Y: y} }

// Cancel builds a PointerCancel event.
func Cancel(id int) Event { return Event{Kind: PointerCancel, ID: id} }

// Press builds a KeyPress event.
func Press(k Key) Event { return Event{Kind: KeyPress, Key: k} }

// KeyFromName maps a platform key name ("up", "w", "enter", "esc", ...)
// to a Key. Unknown names map to KeyNone.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "up", "w", "k":
		return KeyUp
	case "down", "s", "j":
		return KeyDown
	case "left", "a", "h":
		return KeyLeft
	case "right", "d", "l":
		return KeyRight
	case "p", "esc", "escape":
		return KeyPause
	case "enter", "return", " ", "space":
		return KeyConfirm
	default:
		return KeyNone
	}
}
