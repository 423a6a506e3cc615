package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Theme identifies a color scheme.
type Theme string

const (
	ThemeAuto    Theme = "auto" // Follow the level's speed band
	ThemeClassic Theme = "classic"
	ThemeNeon    Theme = "neon"
	ThemeAmber   Theme = "amber"
)

// Themes lists every selectable theme, auto first.
func Themes() []Theme {
	return []Theme{ThemeAuto, ThemeClassic, ThemeNeon, ThemeAmber}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeAuto, ThemeClassic, ThemeNeon, ThemeAmber:
		return true
	}
	return false
}

// DefaultPlayerName is used when the player leaves the name empty.
const DefaultPlayerName = "Player"

// Default progression mode identifier.
const DefaultMode = "levels"

// Options is the explicit per-session configuration captured by the front
// end. It is validated once, when a session starts.
type Options struct {
	PlayerName string
	Mode       string     // Registered progression mode ("levels", "endless")
	Difficulty Difficulty // slow, normal or fast
	Theme      Theme      // auto follows the level band
	Pattern    string     // Optional: pin every level to one obstacle pattern
}

// DefaultOptions returns options for an anonymous normal-difficulty session.
func DefaultOptions() Options {
	return Options{
		PlayerName: DefaultPlayerName,
		Mode:       DefaultMode,
		Difficulty: DifficultyNormal,
		Theme:      ThemeAuto,
	}
}

// Normalize validates the options and returns a cleaned copy: the player
// name is trimmed, stripped of control characters and capped at nameMax
// runes, and empty enum fields take their defaults.
func (o Options) Normalize(nameMax int) (Options, error) {
	o.PlayerName = SanitizeName(o.PlayerName, nameMax)
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Difficulty == "" {
		o.Difficulty = DifficultyNormal
	}
	if o.Theme == "" {
		o.Theme = ThemeAuto
	}
	o.Pattern = strings.TrimSpace(strings.ToLower(o.Pattern))

	if !o.Difficulty.Valid() {
		return o, fmt.Errorf("config: unknown difficulty %q (want slow, normal or fast)", o.Difficulty)
	}
	if !o.Theme.Valid() {
		return o, fmt.Errorf("config: unknown theme %q", o.Theme)
	}
	return o, nil
}

// SanitizeName trims a player name, drops control characters and limits it
// to maxRunes runes. An empty result becomes DefaultPlayerName.
func SanitizeName(name string, maxRunes int) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	if maxRunes > 0 && utf8.RuneCountInString(name) > maxRunes {
		name = strings.TrimSpace(string([]rune(name)[:maxRunes]))
	}
	if name == "" {
		return DefaultPlayerName
	}
	return name
}
