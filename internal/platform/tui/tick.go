// Package tui provides the Bubble Tea front end for the snake arcade.
// It runs the fixed-timestep scheduler, maps keys to engine commands and
// renders engine snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick. Gen identifies the timer
// chain that produced it; ticks from a cancelled chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a one-shot command delivering a TickMsg after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// scheduler owns the single tick timer of a session. Every restart or
// cancel moves to a new generation, so at most one chain is ever live.
type scheduler struct {
	gen    int
	active bool
}

// restart cancels any live chain and starts a new one.
func (s *scheduler) restart(interval time.Duration) tea.Cmd {
	s.gen++
	s.active = true
	return tickCmd(s.gen, interval)
}

// next continues the live chain.
func (s *scheduler) next(interval time.Duration) tea.Cmd {
	if !s.active {
		return nil
	}
	return tickCmd(s.gen, interval)
}

// cancel stops the live chain.
func (s *scheduler) cancel() {
	s.gen++
	s.active = false
}

// accepts reports whether msg belongs to the live chain.
func (s *scheduler) accepts(msg TickMsg) bool {
	return s.active && msg.Gen == s.gen
}
