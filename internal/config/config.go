// Package config provides YAML-based engine configuration loading and the
// validated per-session options for the snake arcade.
package config

import (
	"errors"
	"fmt"
)

// Supported grid dimension range, in cells per side. Obstacle patterns are
// laid out to stay inside the grid for every size in this range.
const (
	MinGridSize = 16
	MaxGridSize = 96
)

// SnakeConfig contains all tunable constants of the simulation.
type SnakeConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
	Food        FoodConfig        `yaml:"food"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines tick-rate parameters. Speeds are ticks per second.
type TimingConfig struct {
	BaseSpeed    int `yaml:"base_speed"`     // Starting speed for the endless ramp
	SpeedMax     int `yaml:"speed_max"`      // Hard cap for every progression law
	IncEveryFood int `yaml:"inc_every_food"` // Endless ramp: +1 speed per this many foods
}

// ProgressionConfig defines the level-indexed progression law.
type ProgressionConfig struct {
	FoodsPerLevel   int         `yaml:"foods_per_level"`
	MaxLevel        int         `yaml:"max_level"`
	HardResetLevels []int       `yaml:"hard_reset_levels"` // Levels that truncate the snake to its head
	Bands           []SpeedBand `yaml:"bands"`
}

// SpeedBand assigns a speed and theme to every level up to UntilLevel.
// Bands are ordered by UntilLevel ascending.
type SpeedBand struct {
	UntilLevel int   `yaml:"until_level"`
	Speed      int   `yaml:"speed"`
	Theme      Theme `yaml:"theme"`
}

// FoodConfig defines scoring and spawn parameters.
type FoodConfig struct {
	Reward    int `yaml:"reward"`     // Points per food
	ScanLimit int `yaml:"scan_limit"` // Shuffled candidates checked for reachability
}

// LeaderboardConfig defines the ranked list limits.
type LeaderboardConfig struct {
	Capacity int `yaml:"capacity"`
	NameMax  int `yaml:"name_max"`
}

// Validate checks that every constant is usable.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Cols < MinGridSize || c.Grid.Cols > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.cols %d outside %d..%d", c.Grid.Cols, MinGridSize, MaxGridSize))
	}
	if c.Grid.Rows < MinGridSize || c.Grid.Rows > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.rows %d outside %d..%d", c.Grid.Rows, MinGridSize, MaxGridSize))
	}
	if c.Timing.SpeedMax <= 0 {
		errs = append(errs, errors.New("timing.speed_max must be positive"))
	}
	if c.Timing.BaseSpeed <= 0 || c.Timing.BaseSpeed > c.Timing.SpeedMax {
		errs = append(errs, fmt.Errorf("timing.base_speed %d outside 1..speed_max", c.Timing.BaseSpeed))
	}
	if c.Timing.IncEveryFood <= 0 {
		errs = append(errs, errors.New("timing.inc_every_food must be positive"))
	}
	if c.Progression.FoodsPerLevel <= 0 {
		errs = append(errs, errors.New("progression.foods_per_level must be positive"))
	}
	if c.Progression.MaxLevel <= 0 {
		errs = append(errs, errors.New("progression.max_level must be positive"))
	}
	if len(c.Progression.Bands) == 0 {
		errs = append(errs, errors.New("progression.bands must not be empty"))
	}
	prev := 0
	for i, b := range c.Progression.Bands {
		if b.UntilLevel <= prev {
			errs = append(errs, fmt.Errorf("progression.bands[%d]: until_level must increase", i))
		}
		if b.Speed <= 0 {
			errs = append(errs, fmt.Errorf("progression.bands[%d]: speed must be positive", i))
		}
		if !b.Theme.Valid() || b.Theme == ThemeAuto {
			errs = append(errs, fmt.Errorf("progression.bands[%d]: invalid theme %q", i, b.Theme))
		}
		prev = b.UntilLevel
	}
	if c.Food.Reward <= 0 {
		errs = append(errs, errors.New("food.reward must be positive"))
	}
	if c.Food.ScanLimit <= 0 {
		errs = append(errs, errors.New("food.scan_limit must be positive"))
	}
	if c.Leaderboard.Capacity <= 0 {
		errs = append(errs, errors.New("leaderboard.capacity must be positive"))
	}
	if c.Leaderboard.NameMax <= 0 {
		errs = append(errs, errors.New("leaderboard.name_max must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// IsHardReset reports whether entering level truncates the snake.
func (c ProgressionConfig) IsHardReset(level int) bool {
	for _, l := range c.HardResetLevels {
		if l == level {
			return true
		}
	}
	return false
}

// BandFor returns the speed band covering level. Levels past the last band
// use the last band.
func (c ProgressionConfig) BandFor(level int) SpeedBand {
	for _, b := range c.Bands {
		if level <= b.UntilLevel {
			return b
		}
	}
	return c.Bands[len(c.Bands)-1]
}
