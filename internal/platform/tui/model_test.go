package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func testEnv() Env {
	cfg := config.DefaultSnakeConfig()
	return Env{
		Config: cfg,
		Board:  leaderboard.New(leaderboard.NewMemoryBackend(), cfg.Leaderboard.Capacity, cfg.Leaderboard.NameMax),
		Seed:   42,
	}
}

func newTestModel(t *testing.T, standalone bool) Model {
	t.Helper()
	game, err := testEnv().NewGame(config.DefaultOptions())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	m := NewModel(game, standalone)
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func sendCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSpaceLifecycle(t *testing.T) {
	m := newTestModel(t, true)

	m, cmd := sendCmd(m, spaceKey)
	if m.game.State() != snake.StateReady || cmd != nil {
		t.Fatalf("after first space: state %v, cmd %v", m.game.State(), cmd != nil)
	}

	m, cmd = sendCmd(m, spaceKey)
	if m.game.State() != snake.StateRunning || cmd == nil {
		t.Fatalf("after second space: state %v, cmd %v", m.game.State(), cmd != nil)
	}
	if !m.sched.active {
		t.Fatal("tick chain not started")
	}

	m = send(m, spaceKey)
	if m.game.State() != snake.StatePaused || m.sched.active {
		t.Fatalf("space while running should pause and stop ticks, got %v", m.game.State())
	}

	m = send(m, spaceKey)
	if m.game.State() != snake.StateRunning || !m.sched.active {
		t.Fatalf("space while paused should resume, got %v", m.game.State())
	}
}

func TestModelTicks(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, spaceKey)
	m = send(m, spaceKey)

	stale := TickMsg{Gen: m.sched.gen - 1}
	m = send(m, stale)
	if got := m.game.Snapshot().Ticks; got != 0 {
		t.Fatalf("stale tick advanced the engine: ticks = %d", got)
	}

	m, cmd := sendCmd(m, TickMsg{Gen: m.sched.gen})
	if got := m.game.Snapshot().Ticks; got != 1 {
		t.Fatalf("ticks = %d, want 1", got)
	}
	if cmd == nil {
		t.Error("live tick should schedule the next one")
	}

	// Pause drops ticks already in flight
	gen := m.sched.gen
	m = send(m, runeKey('p'))
	m = send(m, TickMsg{Gen: gen})
	if got := m.game.Snapshot().Ticks; got != 1 {
		t.Errorf("tick delivered while paused: ticks = %d", got)
	}
}

func TestModelDirectionAndReset(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, spaceKey)
	m = send(m, spaceKey)

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(m, TickMsg{Gen: m.sched.gen})
	if dir := m.game.Snapshot().Direction; dir != snake.DirUp {
		t.Errorf("direction = %v, want up", dir)
	}

	m = send(m, runeKey('r'))
	if m.game.State() != snake.StateIdle || m.sched.active {
		t.Errorf("reset: state %v, ticking %v", m.game.State(), m.sched.active)
	}
}

func TestModelTooSmallPauses(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, spaceKey)
	m = send(m, spaceKey)

	m = send(m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if m.game.State() != snake.StatePaused {
		t.Fatalf("state = %v, want paused", m.game.State())
	}
	if !strings.Contains(m.View(), "too small") {
		t.Error("view should explain the size problem")
	}

	// Cannot resume until the board fits
	m = send(m, spaceKey)
	if m.game.State() != snake.StatePaused {
		t.Errorf("resumed while too small")
	}

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = send(m, spaceKey)
	if m.game.State() != snake.StateRunning {
		t.Errorf("state = %v after enlarging, want running", m.game.State())
	}
}

func TestModelBack(t *testing.T) {
	standalone := newTestModel(t, true)
	_, cmd := sendCmd(standalone, runeKey('b'))
	if cmd == nil {
		t.Error("standalone back should quit")
	}

	embedded := newTestModel(t, false)
	embedded = send(embedded, spaceKey)
	embedded, cmd = sendCmd(embedded, runeKey('b'))
	if !embedded.BackToMenu() || cmd != nil {
		t.Errorf("embedded back: BackToMenu %v, cmd %v", embedded.BackToMenu(), cmd != nil)
	}
	if embedded.game.State() != snake.StateIdle {
		t.Errorf("back should reset the engine, got %v", embedded.game.State())
	}
}

func TestModelScoresIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, false)
	m = send(m, spaceKey)
	m = send(m, spaceKey)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.WantsScoreboard() {
		t.Error("scoreboard opened during a running session")
	}

	m = send(m, runeKey('r'))
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("scoreboard should open from idle")
	}
}
