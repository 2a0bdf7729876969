package config

import (
	_ "embed"
)

//go:embed defaults/blockeater.yaml
var defaultYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// It matches defaults/blockeater.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Cols:     24,
			Rows:     16,
			Boundary: "walled",
		},
		Eater: EaterConfig{
			Lives:      3,
			Momentum:   true,
			Trail:      true,
			StartTrail: 2,
		},
		Blocks: BlocksConfig{
			Values:  []int{10, 10, 10, 25, 50},
			Initial: 3,
		},
		Frame: FrameConfig{
			TickRate:   8,
			MaxCatchUp: 5,
			FPS:        30,
		},
		Input: InputConfig{
			MinSwipePixels: 24,
			MinSwipeCells:  2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
