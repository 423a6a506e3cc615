package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the engine state, taken between ticks.
// Slices are owned by the snapshot.
type Snapshot struct {
	SessionID string
	State     State
	Player    string
	Mode      string
	Cols      int
	Rows      int
	Snake     []core.Point // Tail first, head last
	Obstacles []core.Point // Row-major order
	Food      core.Point
	HasFood   bool
	Direction core.Point
	Score     int
	Foods     int
	Level     int
	Speed     int
	Theme     config.Theme
	Pattern   string
	Ticks     uint64
	Elapsed   time.Duration
	Collision Collision
}

// Head returns the head cell, or false for an empty snake.
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Snake) == 0 {
		return core.Point{}, false
	}
	return s.Snake[len(s.Snake)-1], true
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.sessionID,
		State:     g.state,
		Player:    g.opts.PlayerName,
		Mode:      g.policy.ID(),
		Cols:      g.grid.Cols,
		Rows:      g.grid.Rows,
		Snake:     slices.Clone(g.snake),
		Obstacles: g.obstacles.Points(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Direction: g.dir,
		Score:     g.score,
		Foods:     g.foods,
		Level:     g.stage.Level,
		Speed:     g.stage.Speed,
		Theme:     g.stage.Theme,
		Pattern:   g.stage.Pattern,
		Ticks:     g.ticks,
		Elapsed:   g.Elapsed(),
		Collision: g.cause,
	}
}
