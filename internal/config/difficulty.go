package config

// Difficulty is a coarse speed band chosen by the player.
type Difficulty string

const (
	DifficultySlow   Difficulty = "slow"
	DifficultyNormal Difficulty = "normal"
	DifficultyFast   Difficulty = "fast"
)

// Difficulties lists the selectable difficulty bands in order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultySlow, DifficultyNormal, DifficultyFast}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultySlow, DifficultyNormal, DifficultyFast:
		return true
	}
	return false
}

// SpeedOffset returns the ticks-per-second shift applied to every speed.
func (d Difficulty) SpeedOffset() int {
	switch d {
	case DifficultySlow:
		return -1
	case DifficultyFast:
		return 2
	default:
		return 0
	}
}

// ApplySpeed shifts speed by the difficulty offset and clamps the result to
// [1, speedMax].
func (d Difficulty) ApplySpeed(speed, speedMax int) int {
	s := speed + d.SpeedOffset()
	if s < 1 {
		s = 1
	}
	if s > speedMax {
		s = speedMax
	}
	return s
}
