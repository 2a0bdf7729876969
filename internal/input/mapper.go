// Package input turns raw pointer and key events into player intents.
// The only state kept across events is the origin of an in-progress drag.
package input

import (
	"math"

	"github.com/huuugs/block/internal/core"
)

// DefaultMinSwipe is the drag distance below which a release counts as a tap.
const DefaultMinSwipe = 24.0

// Mapper converts raw events to intents.
type Mapper struct {
	// MinSwipe is the minimum drag length, in event coordinate units,
	// for a release to produce a move intent.
	MinSwipe float64

	tracking bool
	pointer  int
	originX  float64
	originY  float64
}

// NewMapper creates a mapper with the given swipe threshold.
// A non-positive threshold falls back to DefaultMinSwipe.
func NewMapper(minSwipe float64) *Mapper {
	if minSwipe <= 0 {
		minSwipe = DefaultMinSwipe
	}
	return &Mapper{MinSwipe: minSwipe}
}

// Feed maps one event to an intent.
func (m *Mapper) Feed(ev Event) core.Intent {
	var intent core.Intent

	switch ev.Kind {
	case KeyPress:
		intent = keyIntent(ev.Key)
	case PointerDown:
		// Only one drag is tracked; extra fingers are ignored
		if !m.tracking {
			m.tracking = true
			m.pointer = ev.ID
			m.originX, m.originY = ev.X, ev.Y
		}
	case PointerUp:
		if m.tracking && ev.ID == m.pointer {
			intent = m.swipe(ev.X-m.originX, ev.Y-m.originY)
			m.tracking = false
		}
	case PointerCancel:
		if m.tracking && ev.ID == m.pointer {
			m.tracking = false
		}
	case PointerMove:
		// Direction is decided on release only
	}

	return intent
}

// swipe classifies a drag vector by its dominant axis.
func (m *Mapper) swipe(dx, dy float64) core.Intent {
	if math.Hypot(dx, dy) < m.MinSwipe {
		return core.IntentNone
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return core.IntentMoveRight
		}
		return core.IntentMoveLeft
	}
	if dy > 0 {
		return core.IntentMoveDown
	}
	return core.IntentMoveUp
}

func keyIntent(k Key) core.Intent {
	switch k {
	case KeyUp:
		return core.IntentMoveUp
	case KeyDown:
		return core.IntentMoveDown
	case KeyLeft:
		return core.IntentMoveLeft
	case KeyRight:
		return core.IntentMoveRight
	case KeyPause:
		return core.IntentPause
	case KeyConfirm:
		return core.IntentConfirm
	default:
		return core.IntentNone
	}
}

// Dragging reports whether a drag is in progress.
func (m *Mapper) Dragging() bool {
	return m.tracking
}
