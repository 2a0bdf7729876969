package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/huuugs/block/internal/grid"
	"github.com/huuugs/block/internal/sim"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".blockeater"

const configFile = "blockeater.yaml"

// Load loads the Block Eater configuration.
// Search order: customPath -> ~/.blockeater/configs/blockeater.yaml ->
// ./configs/blockeater.yaml -> embedded default -> hardcoded default.
// Files are applied on top of the defaults, so a file may set only the
// keys it cares about.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path of a file in ~/.blockeater/configs.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// UserPath returns a path under ~/.blockeater, or a relative path when
// the home directory is unknown.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(elem...)
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// Validate rejects configurations a session cannot run with.
func (c GameConfig) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("config: %w: grid %dx%d", grid.ErrInvalidDimension, c.Grid.Cols, c.Grid.Rows)
	}
	if _, err := grid.ParseBoundary(c.Grid.Boundary); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Frame.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Frame.TickRate)
	}
	if c.Frame.MaxCatchUp <= 0 {
		return fmt.Errorf("config: max_catch_up must be positive, got %d", c.Frame.MaxCatchUp)
	}
	sc, err := c.SimConfig(0)
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SimConfig converts the configuration into session parameters.
func (c GameConfig) SimConfig(seed int64) (sim.Config, error) {
	b, err := grid.ParseBoundary(c.Grid.Boundary)
	if err != nil {
		return sim.Config{}, fmt.Errorf("config: %w", err)
	}
	return sim.Config{
		Cols:          c.Grid.Cols,
		Rows:          c.Grid.Rows,
		Boundary:      b,
		Seed:          seed,
		TickRate:      c.Frame.TickRate,
		Lives:         c.Eater.Lives,
		Momentum:      c.Eater.Momentum,
		Trail:         c.Eater.Trail,
		StartTrail:    c.Eater.StartTrail,
		BlockValues:   append([]int(nil), c.Blocks.Values...),
		InitialBlocks: c.Blocks.Initial,
		Obstacles:     c.Blocks.Obstacles,
	}, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		if cfg.Eater.Lives > 0 {
			cfg.Eater.Lives = max(cfg.Eater.Lives, 5)
		}
	case DifficultyHard:
		if cfg.Eater.Lives > 0 {
			cfg.Eater.Lives = min(cfg.Eater.Lives, 2)
		}
		cfg.Blocks.Obstacles += 4
	}
}
