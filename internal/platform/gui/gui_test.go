package gui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/input"
	"github.com/huuugs/block/internal/render"
)

func TestLayoutBoard(t *testing.T) {
	l, ok := layoutBoard(720, 640, 24, 16)
	if !ok {
		t.Fatal("expected the default board to fit")
	}
	// (720-24)/24 = 29, (640-40-24)/16 = 36
	if l.cell != 29 {
		t.Errorf("cell = %v, expected 29", l.cell)
	}
	if l.x != float32((720-29*24)/2) {
		t.Errorf("x = %v, expected the board centered", l.x)
	}
	if l.y < hudHeight {
		t.Errorf("y = %v overlaps the HUD", l.y)
	}

	if _, ok := layoutBoard(60, 60, 24, 16); ok {
		t.Error("tiny window should not fit the board")
	}
	if _, ok := layoutBoard(720, 640, 0, 16); ok {
		t.Error("zero columns should not fit")
	}
}

func TestTapIntent(t *testing.T) {
	tests := []struct {
		state fsm.State
		y     int
		want  core.Intent
	}{
		{fsm.Menu, 300, core.IntentConfirm},
		{fsm.Playing, 10, core.IntentPause},
		{fsm.Playing, 300, core.IntentNone},
		{fsm.Paused, 300, core.IntentConfirm},
		{fsm.GameOver, 10, core.IntentConfirm},
	}
	for _, tc := range tests {
		if got := tapIntent(tc.state, tc.y); got != tc.want {
			t.Errorf("tapIntent(%v, %d) = %v, expected %v", tc.state, tc.y, got, tc.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := rgba(core.ColorGold, 128)
	if c.R != 255 || c.G != 215 || c.B != 0 || c.A != 128 {
		t.Errorf("rgba(gold, 128) = %+v", c)
	}
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts() failed: %v", err)
	}
	for _, name := range []string{render.FontHUD, render.FontTitle} {
		h, err := fonts.Face(name)
		if err != nil {
			t.Fatalf("Face(%q) failed: %v", name, err)
		}
		if h.Name() != name {
			t.Errorf("Face(%q).Name() = %q", name, h.Name())
		}
	}

	r := NewRenderer(fonts)
	if err := r.Render(render.View{State: fsm.Menu}); err != nil {
		t.Errorf("Render() = %v", err)
	}
	if !r.ready {
		t.Error("renderer should hold the view")
	}
}

func TestRenderMissingFont(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	delete(fonts, render.FontTitle)

	r := NewRenderer(fonts)
	if err := r.Render(render.View{}); !errors.Is(err, render.ErrAssetLoad) {
		t.Errorf("Render() = %v, expected ErrAssetLoad", err)
	}
	if r.ready {
		t.Error("failed render should not record the view")
	}

	// terminal glyph fonts cannot draw in a window
	r = NewRenderer(render.TerminalFonts())
	if err := r.Render(render.View{}); !errors.Is(err, render.ErrAssetLoad) {
		t.Errorf("Render() with terminal fonts = %v, expected ErrAssetLoad", err)
	}
}

func TestPressedKeysFollowBindingOrder(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeyArrowUp: true, ebiten.KeySpace: true}
	want := []input.Key{input.KeyUp, input.KeyRight, input.KeyConfirm}

	for range 20 {
		got := pressedKeys(func(k ebiten.Key) bool { return down[k] })
		if len(got) != len(want) {
			t.Fatalf("pressedKeys = %v, expected %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pressedKeys = %v, expected %v", got, want)
			}
		}
	}
}

func TestKeyBindingsAreGameKeys(t *testing.T) {
	for _, b := range keyBindings {
		if input.KeyFromName(b.name) == input.KeyNone {
			t.Errorf("binding %q maps to no game key", b.name)
		}
	}
}
