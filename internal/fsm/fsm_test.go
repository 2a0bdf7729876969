package fsm

import "testing"

func TestTransitionTableIsExhaustive(t *testing.T) {
	legal := map[State]map[Event]State{
		Menu:     {EventConfirm: Playing},
		Playing:  {EventPause: Paused, EventGameOver: GameOver},
		Paused:   {EventConfirm: Playing},
		GameOver: {EventConfirm: Menu},
	}

	for _, from := range States {
		for _, ev := range Events {
			m := &Machine{state: from}
			got, ok := m.Fire(ev)

			want, isLegal := legal[from][ev]
			if !isLegal {
				want = from
			}
			if ok != isLegal || got != want || m.State() != want {
				t.Errorf("%v --%v--> %v (ok=%v), expected %v (ok=%v)", from, ev, got, ok, want, isLegal)
			}
		}
	}
}

func TestFullCycle(t *testing.T) {
	m := New()
	if m.State() != Menu {
		t.Fatalf("initial state = %v, expected menu", m.State())
	}

	steps := []struct {
		ev       Event
		expected State
	}{
		{EventConfirm, Playing},
		{EventPause, Paused},
		{EventConfirm, Playing},
		{EventGameOver, GameOver},
		{EventConfirm, Menu},
	}
	for _, st := range steps {
		if got, ok := m.Fire(st.ev); !ok || got != st.expected {
			t.Errorf("Fire(%v) = %v, %v; expected %v", st.ev, got, ok, st.expected)
		}
	}
}

func TestHooksSeeOnlyRealTransitions(t *testing.T) {
	m := New()
	var seen []State
	m.OnTransition(func(from, to State, ev Event) {
		seen = append(seen, to)
	})

	m.Fire(EventPause) // illegal in menu
	m.Fire(EventConfirm)
	m.Fire(EventConfirm) // duplicate confirm while playing

	if len(seen) != 1 || seen[0] != Playing {
		t.Errorf("hook calls = %v, expected [playing]", seen)
	}
}
