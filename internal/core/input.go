package core

// Intent is a normalized player action derived from raw platform events.
// The set is closed: simulation and state machine switch on it exhaustively.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentPause
	IntentConfirm
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentPause:
		return "Pause"
	case IntentConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the intent is one of the four movement intents.
func (i Intent) IsMove() bool {
	return i >= IntentMoveUp && i <= IntentMoveRight
}

// Direction converts a movement intent into a heading.
// ok is false for non-movement intents.
func (i Intent) Direction() (d Direction, ok bool) {
	switch i {
	case IntentMoveUp:
		return DirUp, true
	case IntentMoveDown:
		return DirDown, true
	case IntentMoveLeft:
		return DirLeft, true
	case IntentMoveRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// IntentLatch holds the most recent intent of a kind until it is consumed.
// Newer intents overwrite older ones; there is no queue.
type IntentLatch struct {
	intent Intent
}

// Set records an intent. IntentNone is ignored so it never erases input.
func (l *IntentLatch) Set(i Intent) {
	if i == IntentNone {
		return
	}
	l.intent = i
}

// Take returns the held intent and clears the latch.
func (l *IntentLatch) Take() Intent {
	i := l.intent
	l.intent = IntentNone
	return i
}

// Clear drops any held intent.
func (l *IntentLatch) Clear() {
	l.intent = IntentNone
}
