// Package config provides YAML-based game configuration loading and
// difficulty management for Block Eater.
package config

// GameConfig contains all tunable Block Eater parameters.
type GameConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Eater      EaterConfig      `yaml:"eater"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Frame      FrameConfig      `yaml:"frame"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Cols     int    `yaml:"cols"`
	Rows     int    `yaml:"rows"`
	Boundary string `yaml:"boundary"` // "walled" or "wrapped"
}

// EaterConfig defines the player entity.
type EaterConfig struct {
	Lives      int  `yaml:"lives"` // 0 disables lives
	Momentum   bool `yaml:"momentum"`
	Trail      bool `yaml:"trail"`
	StartTrail int  `yaml:"start_trail"`
}

// BlocksConfig defines block values and the starting board.
type BlocksConfig struct {
	Values    []int `yaml:"values"`
	Initial   int   `yaml:"initial"`
	Obstacles int   `yaml:"obstacles"`
}

// FrameConfig defines the fixed-step loop.
type FrameConfig struct {
	TickRate   int `yaml:"tick_rate"`    // simulation ticks per second
	MaxCatchUp int `yaml:"max_catch_up"` // ticks run per frame at most
	FPS        int `yaml:"fps"`          // frontend refresh rate
}

// InputConfig defines gesture thresholds.
type InputConfig struct {
	MinSwipePixels float64 `yaml:"min_swipe_px"`    // touch and mouse in the window
	MinSwipeCells  float64 `yaml:"min_swipe_cells"` // mouse drag in the terminal
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score, or seconds of play, at full difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
