package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/input"
	"github.com/huuugs/block/internal/modes"
	"github.com/huuugs/block/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapEvents(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp, true},
		{runes("w"), input.KeyUp, true},
		{runes("j"), input.KeyDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft, true},
		{runes("d"), input.KeyRight, true},
		{runes("p"), input.KeyPause, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, input.KeyPause, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, input.KeyConfirm, true},
		{runes("x"), input.KeyNone, false},
	}
	for _, tc := range tests {
		ev, ok := km.Event(tc.msg)
		if ok != tc.ok || ev.Key != tc.want {
			t.Errorf("Event(%q) = %v, %v; expected %v, %v", tc.msg.String(), ev.Key, ok, tc.want, tc.ok)
		}
	}

	km.Up = key.NewBinding(key.WithKeys("up", "i"))
	if ev, ok := km.Event(runes("i")); !ok || ev.Key != input.KeyUp {
		t.Errorf("extra binding = %v, %v; expected KeyUp", ev.Key, ok)
	}
	if _, ok := km.Event(runes("w")); ok {
		t.Error("unbound w should not be game input")
	}
}

func TestMouseEvent(t *testing.T) {
	ev, ok := MouseEvent(tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !ok || ev.Kind != input.PointerDown || ev.X != 5 || ev.Y != 4 {
		t.Errorf("left press = %+v, %v", ev, ok)
	}

	if _, ok := MouseEvent(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}); ok {
		t.Error("right button should be ignored")
	}

	ev, ok = MouseEvent(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease})
	if !ok || ev.Kind != input.PointerUp {
		t.Errorf("release = %+v, %v", ev, ok)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(GameOptions{Game: config.DefaultGameConfig(), Seed: 3}, 80, 24)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelFrameLoop(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(t0))
	if m.Driver().State() != fsm.Playing {
		t.Fatalf("state = %v, expected Playing", m.Driver().State())
	}

	m = update(t, m, FrameMsg(t0.Add(250*time.Millisecond)))
	if got := m.Driver().Session().Tick(); got != 2 {
		t.Errorf("tick = %d after 250ms, expected 2", got)
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("view should show the HUD")
	}
}

func TestPauseKeyToggles(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(t0))
	m = update(t, m, runes("p"))
	m = update(t, m, FrameMsg(t0.Add(time.Millisecond)))
	if m.Driver().State() != fsm.Paused {
		t.Fatalf("state = %v, expected Paused", m.Driver().State())
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("view should show the pause overlay")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, FrameMsg(t0.Add(2*time.Millisecond)))
	if m.Driver().State() != fsm.Playing {
		t.Errorf("state = %v, expected Playing", m.Driver().State())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("view after quit = %q, expected empty", v)
	}
}

func TestResizeReachesRenderer(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.renderer.Screen().Width() != 100 || m.renderer.Screen().Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.renderer.Screen().Width(), m.renderer.Screen().Height())
	}
}

func TestProfileMenu(t *testing.T) {
	profiles := []storage.Profile{{Name: "ana"}, {Name: "bo"}}

	m := NewProfileMenuModel(profiles, "bo", 80, 24)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected to start on the current profile", m.cursor)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(ProfileMenuModel).Result(); got.Profile != "ana" || got.Quit {
		t.Errorf("Result() = %+v, expected ana", got)
	}

	m = NewProfileMenuModel(profiles, "", 80, 24)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(ProfileMenuModel).Result(); got.Profile != "" || got.Quit {
		t.Errorf("Result() = %+v, expected guest", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(ProfileMenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}

type fakeSource struct {
	scores map[string][]storage.ScoreEntry
}

func (f fakeSource) TopScores(modeID string, limit int) ([]storage.ScoreEntry, error) {
	return f.scores[modeID], nil
}

func (f fakeSource) GetModeStats(modeID string) (*storage.ModeStats, error) {
	s := &storage.ModeStats{ModeID: modeID, GamesCount: len(f.scores[modeID])}
	for _, e := range f.scores[modeID] {
		s.HighScore = max(s.HighScore, e.Score)
	}
	return s, nil
}

func TestScoreboard(t *testing.T) {
	src := fakeSource{scores: map[string][]storage.ScoreEntry{
		modes.IDEndless: {{ModeID: modes.IDEndless, Profile: "ana", Score: 420, Level: 3, DurationSecs: 75}},
	}}

	m := NewScoreboardModel(src, "", 100, 30)
	view := m.View()
	if !strings.Contains(view, "Endless") || !strings.Contains(view, "ana") || !strings.Contains(view, "420") {
		t.Errorf("scoreboard view missing entry:\n%s", view)
	}
	stats := m.statsView()
	if !strings.Contains(stats, "Games") || !strings.Contains(stats, "420") {
		t.Errorf("stats panel = %q", stats)
	}
	if !strings.Contains(view, "Stats") {
		t.Errorf("wide scoreboard should show the stats panel:\n%s", view)
	}
	if narrow := NewScoreboardModel(src, "", 60, 30).View(); strings.Contains(narrow, "Stats") {
		t.Errorf("narrow scoreboard should drop the stats panel:\n%s", narrow)
	}

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := prev.(ScoreboardModel).Selected(); got != modes.IDTime {
		t.Errorf("left from the first mode selected %q, expected %q", got, modes.IDTime)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	sb := next.(ScoreboardModel)
	if sb.Selected() != modes.IDLevel {
		t.Errorf("Selected() = %q, expected %q", sb.Selected(), modes.IDLevel)
	}
	if !strings.Contains(sb.View(), "No scores recorded yet") {
		t.Error("empty mode should show the placeholder")
	}
}
