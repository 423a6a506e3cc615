package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model for one snake engine. It owns the tick
// scheduler and is the only caller of the engine's commands.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     *KeyMapper
	sched    scheduler
	width    int
	height   int
	tooSmall bool
	quitting bool

	backToMenu     bool
	openScoreboard bool

	// standalone models quit on back instead of returning to a menu.
	standalone bool
}

// NewModel creates a game model around an idle engine.
func NewModel(game *snake.Game, standalone bool) Model {
	grid := game.Grid()
	w, h := BoardSize(grid.Cols, grid.Rows)
	return Model{
		game:       game,
		screen:     core.NewScreen(w, h),
		keys:       NewKeyMapper(),
		width:      w,
		height:     h,
		standalone: standalone,
	}
}

// Game returns the wrapped engine.
func (m Model) Game() *snake.Game { return m.game }

// Init implements tea.Model. The engine stays idle until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.sched.cancel()
		m.quitting = true
		return m, tea.Quit
	}

	if dx, dy, ok := action.DirectionVector(); ok {
		m.game.RequestDirection(dx, dy)
		return m, nil
	}

	switch action {
	case core.ActionStart:
		return m.handleStart()
	case core.ActionPause:
		return m.togglePause()
	case core.ActionReset:
		m.sched.cancel()
		m.game.Reset()
	case core.ActionBack:
		m.sched.cancel()
		m.game.Reset()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionScores:
		if m.standalone {
			return m, nil
		}
		switch m.game.State() {
		case snake.StateRunning, snake.StatePaused:
			return m, nil
		}
		m.sched.cancel()
		m.game.Reset()
		m.openScoreboard = true
	}
	return m, nil
}

// handleStart implements the space bar: start a session, launch it, or
// toggle pause.
func (m Model) handleStart() (tea.Model, tea.Cmd) {
	switch m.game.State() {
	case snake.StateIdle, snake.StateGameOver:
		m.game.Start("")
		return m, nil
	case snake.StateReady:
		if m.tooSmall {
			return m, nil
		}
		m.game.Start("")
		return m, m.sched.restart(m.game.Interval())
	default:
		return m.togglePause()
	}
}

func (m Model) togglePause() (tea.Model, tea.Cmd) {
	switch m.game.State() {
	case snake.StateRunning:
		m.game.TogglePause()
		m.sched.cancel()
	case snake.StatePaused:
		if m.tooSmall {
			return m, nil
		}
		m.game.TogglePause()
		return m, m.sched.restart(m.game.Interval())
	}
	return m, nil
}

// handleResize tracks the terminal size and pauses a running session when
// the board no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	grid := m.game.Grid()
	bw, bh := BoardSize(grid.Cols, grid.Rows)

	m.width, m.height = msg.Width, msg.Height
	m.tooSmall = msg.Width < bw || msg.Height < bh
	m.screen.Resize(max(msg.Width, bw), bh)

	if m.tooSmall && m.game.State() == snake.StateRunning {
		m.game.TogglePause()
		m.sched.cancel()
	}
	return m, nil
}

// handleTick runs one engine tick and schedules the next. A speed change
// restarts the chain with the new interval.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accepts(msg) {
		return m, nil
	}

	res := m.game.Tick()
	switch {
	case res.GameOver:
		m.sched.cancel()
		return m, nil
	case res.SpeedChanged:
		return m, m.sched.restart(m.game.Interval())
	}
	return m, m.sched.next(m.game.Interval())
}

// BackToMenu returns true if the player left the game screen.
func (m Model) BackToMenu() bool { return m.backToMenu }

// WantsScoreboard returns true if the player asked for the scoreboard.
func (m Model) WantsScoreboard() bool { return m.openScoreboard }

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		grid := m.game.Grid()
		bw, bh := BoardSize(grid.Cols, grid.Rows)
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
			bw, bh, m.width, m.height)
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts a standalone Bubble Tea program for game.
func Run(game *snake.Game) error {
	p := tea.NewProgram(NewModel(game, true), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
