// Package fsm sequences the Block Eater screens:
// Menu -> Playing -> Paused / GameOver -> Menu.
// Transitions come from a fixed table; anything not in the table is a
// silent no-op so duplicate input events are harmless.
package fsm

// State is the active screen.
type State int

const (
	Menu State = iota
	Playing
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event drives a transition.
type Event int

const (
	EventConfirm Event = iota
	EventPause
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventConfirm:
		return "confirm"
	case EventPause:
		return "pause"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// States lists every state. Events lists every event.
var (
	States = []State{Menu, Playing, Paused, GameOver}
	Events = []Event{EventConfirm, EventPause, EventGameOver}
)

var table = map[State]map[Event]State{
	Menu:     {EventConfirm: Playing},
	Playing:  {EventPause: Paused, EventGameOver: GameOver},
	Paused:   {EventConfirm: Playing},
	GameOver: {EventConfirm: Menu},
}

// Next looks up the transition for (from, ev). ok is false when the
// pair is not in the table.
func Next(from State, ev Event) (to State, ok bool) {
	to, ok = table[from][ev]
	return to, ok
}

// Hook observes a transition after it has happened.
type Hook func(from, to State, ev Event)

// Machine holds the current state.
type Machine struct {
	state State
	hooks []Hook
}

// New creates a machine in the Menu state.
func New() *Machine {
	return &Machine{state: Menu}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// OnTransition registers a hook called after every transition.
func (m *Machine) OnTransition(h Hook) {
	m.hooks = append(m.hooks, h)
}

// Fire applies ev. It returns the resulting state and whether a
// transition happened.
func (m *Machine) Fire(ev Event) (State, bool) {
	to, ok := Next(m.state, ev)
	if !ok {
		return m.state, false
	}
	from := m.state
	m.state = to
	for _, h := range m.hooks {
		h(from, to, ev)
	}
	return to, true
}
