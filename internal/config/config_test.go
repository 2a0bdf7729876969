package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/huuugs/block/internal/grid"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, DefaultGameConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  cols: 12\n  boundary: wrapped\nframe:\n  max_catch_up: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Cols != 12 || cfg.Grid.Boundary != "wrapped" || cfg.Frame.MaxCatchUp != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Rows != 16 || cfg.Frame.TickRate != 8 {
		t.Errorf("defaults lost: rows %d tick %d", cfg.Grid.Rows, cfg.Frame.TickRate)
	}
}

func TestLoadRejectsInvalidDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Errorf("error = %v, expected ErrInvalidDimension", err)
	}
}

func TestLoadRejectsNegativeCounts(t *testing.T) {
	for _, body := range []string{
		"eater:\n  lives: -1\n",
		"eater:\n  start_trail: -2\n",
		"blocks:\n  initial: -1\n",
		"blocks:\n  obstacles: -3\n",
	} {
		path := filepath.Join(t.TempDir(), "neg.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) accepted a negative count", body)
		}
	}
}

func TestValidateMatchesSessionRules(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Eater.Lives = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate accepted negative lives")
	}
	sc, err := cfg.SimConfig(1)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Validate() == nil {
		t.Error("session config accepted negative lives")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Grid.Boundary = "wrap"

	sc, err := cfg.SimConfig(99)
	if err != nil {
		t.Fatalf("SimConfig failed: %v", err)
	}
	if sc.Boundary != grid.Wrapped || sc.Seed != 99 || sc.Cols != 24 || sc.TickRate != 8 {
		t.Errorf("SimConfig = %+v", sc)
	}

	// The block values slice must not alias the config
	sc.BlockValues[0] = 1000
	if cfg.Blocks.Values[0] == 1000 {
		t.Error("SimConfig should copy block values")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Eater.Lives != 2 || cfg.Blocks.Obstacles != 4 {
		t.Errorf("hard gameplay = lives %d obstacles %d", cfg.Eater.Lives, cfg.Blocks.Obstacles)
	}

	cfg = DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("fixed preset InitialLevel = %v, expected 0", cfg.Difficulty.InitialLevel)
	}
	if lvl := NewPacer(cfg.Difficulty, cfg.Frame.TickRate).Level(5000, 100000); lvl != 0 {
		t.Errorf("fixed preset pace = %v, expected 0", lvl)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, ok)
	}
	if p, ok := ParsePreset("easy"); !ok || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}
