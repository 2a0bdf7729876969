package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huuugs/block/internal/settings"
	"github.com/huuugs/block/internal/storage"
)

// resetFlags restores the global flags after a test changes them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	saved := struct {
		config, difficulty, level, file, profile string
		fps                                      int
	}{flagConfig, flagDifficulty, flagLogLevel, flagLogFile, flagProfile, flagFPS}
	t.Cleanup(func() {
		flagConfig, flagDifficulty = saved.config, saved.difficulty
		flagLogLevel, flagLogFile = saved.level, saved.file
		flagProfile, flagFPS = saved.profile, saved.fps
	})
}

func TestLoadGameConfigDifficulty(t *testing.T) {
	resetFlags(t)

	flagDifficulty = ""
	cfg, err := loadGameConfig(settings.Settings{Difficulty: "easy"})
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("saved easy difficulty: initial level %v, expected 0", cfg.Difficulty.InitialLevel)
	}

	flagDifficulty = "hard"
	cfg, err = loadGameConfig(settings.Settings{Difficulty: "easy"})
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("--difficulty should win over the setting, initial level %v", cfg.Difficulty.InitialLevel)
	}

	flagDifficulty = "brutal"
	if _, err := loadGameConfig(settings.Defaults()); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestLoadGameConfigOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cols: 12\n  rows: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = ""
	flagFPS = 60

	cfg, err := loadGameConfig(settings.Defaults())
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Grid.Cols != 12 || cfg.Grid.Rows != 9 {
		t.Errorf("grid = %dx%d, expected 12x9", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Frame.FPS != 60 {
		t.Errorf("fps = %d, expected 60", cfg.Frame.FPS)
	}

	if err := os.WriteFile(path, []byte("grid:\n  cols: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadGameConfig(settings.Defaults()); err == nil {
		t.Error("zero-width grid should fail")
	}
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	flagLogLevel = "loud"
	if _, _, err := newLogger(false); err == nil {
		t.Error("invalid log level should fail")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "logs", "game.log")
	logger, closer, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "tick", 3)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}

	flagLogFile = ""
	if _, closer, err := newLogger(false); err != nil || closer != nil {
		t.Errorf("stderr logger: closer %v, err %v", closer, err)
	}
}

func TestWriteProfileStatsShowsStage(t *testing.T) {
	var buf bytes.Buffer
	writeProfileStats(&buf, "ana", []storage.ProfileStats{
		{ModeID: "endless", HighScore: 300, GamesPlayed: 4, TotalSecs: 125, HighestLevel: 3},
		{ModeID: "level", HighScore: 900, GamesPlayed: 2, TotalSecs: 61, HighestLevel: 5, HighestStage: 6},
	})
	out := buf.String()

	if !strings.Contains(out, "Stage") {
		t.Fatalf("no stage column:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	var endless, level string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Endless"):
			endless = l
		case strings.Contains(l, "Levels"):
			level = l
		}
	}
	if !strings.Contains(level, " 6 ") {
		t.Errorf("level row missing stage 6: %q", level)
	}
	if !strings.Contains(endless, " - ") || !strings.Contains(endless, "2:05") {
		t.Errorf("endless row = %q", endless)
	}

	buf.Reset()
	writeProfileStats(&buf, "bob", nil)
	if !strings.Contains(buf.String(), "No games played yet.") {
		t.Errorf("empty stats output = %q", buf.String())
	}
}
