// Package registry provides a global registry of progression modes.
// Modes register themselves in init() functions, allowing the CLI and the
// front end to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Stage is everything a progression law derives from the cumulative
// foods-eaten count.
type Stage struct {
	Level     int          // 1-based level
	Speed     int          // Ticks per second, already clamped to speed_max
	Theme     config.Theme // Never ThemeAuto
	Pattern   string       // Obstacle pattern for this level
	HardReset bool         // Entering this level truncates the snake to its head
}

// Progression maps cumulative foods eaten to a Stage. Implementations must be
// pure: the same count always yields the same Stage.
type Progression interface {
	// ID returns the mode identifier (e.g., "levels", "endless").
	ID() string

	// Stage returns the stage reached after eating foods foods.
	Stage(foods int) Stage
}

// Factory builds a progression for one session from the engine config and
// the validated session options.
type Factory func(cfg config.SnakeConfig, opts config.Options) Progression

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the progression registered under id.
// Returns an error if the mode ID is not registered.
func Create(id string, cfg config.SnakeConfig, opts config.Options) (Progression, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(cfg, opts), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a mode, or the ID itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
