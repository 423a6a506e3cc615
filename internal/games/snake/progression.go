package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Registered progression modes.
const (
	ModeLevels  = "levels"
	ModeEndless = "endless"
)

func init() {
	registry.Register(ModeLevels, "Levels (21 stages)", func(cfg config.SnakeConfig, opts config.Options) registry.Progression {
		return NewLevelPolicy(cfg, opts)
	})
	registry.Register(ModeEndless, "Endless (speed ramp)", func(cfg config.SnakeConfig, opts config.Options) registry.Progression {
		return NewRampPolicy(cfg, opts)
	})
}

// LevelPolicy is the level-indexed progression law: every foods_per_level
// foods advance one level, and speed, theme and pattern are step functions
// of the level.
type LevelPolicy struct {
	prog       config.ProgressionConfig
	speedMax   int
	difficulty config.Difficulty
	theme      config.Theme
	pattern    string
}

// NewLevelPolicy creates the canonical policy for one session.
func NewLevelPolicy(cfg config.SnakeConfig, opts config.Options) *LevelPolicy {
	return &LevelPolicy{
		prog:       cfg.Progression,
		speedMax:   cfg.Timing.SpeedMax,
		difficulty: opts.Difficulty,
		theme:      opts.Theme,
		pattern:    opts.Pattern,
	}
}

// ID returns the mode identifier.
func (p *LevelPolicy) ID() string { return ModeLevels }

// Level returns min(max_level, foods/foods_per_level + 1).
func (p *LevelPolicy) Level(foods int) int {
	if foods < 0 {
		foods = 0
	}
	return min(p.prog.MaxLevel, foods/p.prog.FoodsPerLevel+1)
}

// Stage implements registry.Progression.
func (p *LevelPolicy) Stage(foods int) registry.Stage {
	level := p.Level(foods)
	band := p.prog.BandFor(level)

	st := registry.Stage{
		Level:     level,
		Speed:     p.difficulty.ApplySpeed(band.Speed, p.speedMax),
		Theme:     band.Theme,
		Pattern:   PatternForLevel(level),
		HardReset: p.prog.IsHardReset(level),
	}
	if p.theme != "" && p.theme != config.ThemeAuto {
		st.Theme = p.theme
	}
	if p.pattern != "" {
		st.Pattern = p.pattern
	}
	return st
}

// RampPolicy is the reduced progression law: a single level whose speed
// rises by one every inc_every_food foods.
type RampPolicy struct {
	base, inc, speedMax int
	difficulty          config.Difficulty
	theme               config.Theme
	pattern             string
}

// NewRampPolicy creates the endless policy for one session.
func NewRampPolicy(cfg config.SnakeConfig, opts config.Options) *RampPolicy {
	theme := opts.Theme
	if theme == "" || theme == config.ThemeAuto {
		theme = config.ThemeClassic
		if len(cfg.Progression.Bands) > 0 {
			theme = cfg.Progression.Bands[0].Theme
		}
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = PatternFree
	}
	return &RampPolicy{
		base:       cfg.Timing.BaseSpeed,
		inc:        cfg.Timing.IncEveryFood,
		speedMax:   cfg.Timing.SpeedMax,
		difficulty: opts.Difficulty,
		theme:      theme,
		pattern:    pattern,
	}
}

// ID returns the mode identifier.
func (p *RampPolicy) ID() string { return ModeEndless }

// Speed returns min(speed_max, base + foods/inc_every_food) after the
// difficulty shift.
func (p *RampPolicy) Speed(foods int) int {
	if foods < 0 {
		foods = 0
	}
	s := min(p.speedMax, p.base+foods/p.inc)
	return p.difficulty.ApplySpeed(s, p.speedMax)
}

// Stage implements registry.Progression.
func (p *RampPolicy) Stage(foods int) registry.Stage {
	return registry.Stage{
		Level:   1,
		Speed:   p.Speed(foods),
		Theme:   p.theme,
		Pattern: p.pattern,
	}
}
