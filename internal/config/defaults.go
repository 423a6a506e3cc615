package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in engine configuration. It matches
// defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 32,
			Rows: 20,
		},
		Timing: TimingConfig{
			BaseSpeed:    4,
			SpeedMax:     25,
			IncEveryFood: 5,
		},
		Progression: ProgressionConfig{
			FoodsPerLevel:   15,
			MaxLevel:        21,
			HardResetLevels: []int{8, 15},
			Bands: []SpeedBand{
				{UntilLevel: 7, Speed: 4, Theme: ThemeClassic},
				{UntilLevel: 14, Speed: 6, Theme: ThemeNeon},
				{UntilLevel: 21, Speed: 8, Theme: ThemeAmber},
			},
		},
		Food: FoodConfig{
			Reward:    10,
			ScanLimit: 300,
		},
		Leaderboard: LeaderboardConfig{
			Capacity: 10,
			NameMax:  18,
		},
	}
}
