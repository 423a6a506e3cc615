package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// page identifies the active sub-model of a SessionModel.
type page int

const (
	pageSetup page = iota
	pageGame
	pageScores
)

// SessionModel manages the full terminal session flow:
// setup -> game -> setup, with the scoreboard reachable from both.
// It is the top-level model of the menu command and of SSH sessions.
type SessionModel struct {
	env        Env
	defaults   config.Options
	lockedName bool
	width      int
	height     int

	active   page
	setup    SetupModel
	game     *Model
	scores   ScoreboardModel
	err      error
	quitting bool
}

// NewSessionModel creates a session starting at the setup form. A
// lockedName pins the player name to defaults.PlayerName.
func NewSessionModel(env Env, defaults config.Options, lockedName bool, width, height int) SessionModel {
	m := SessionModel{
		env:        env,
		defaults:   defaults,
		lockedName: lockedName,
		width:      width,
		height:     height,
	}
	m.setup = m.newSetup()
	return m
}

func (m SessionModel) newSetup() SetupModel {
	return NewSetupModel(m.defaults, m.env.Config.Leaderboard.NameMax, m.lockedName, m.width, m.height)
}

func (m SessionModel) newScores() ScoreboardModel {
	return NewScoreboardModel(m.env.Board, m.env.Store, m.env.Config.Leaderboard.NameMax, m.width, m.height)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.active {
	case pageGame:
		return m.updateGame(msg)
	case pageScores:
		return m.updateScores(msg)
	default:
		return m.updateSetup(msg)
	}
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if sm, ok := next.(SetupModel); ok {
		m.setup = sm
	}

	switch {
	case m.setup.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.setup.WantsScoreboard():
		m.defaults = m.setup.Options()
		m.scores = m.newScores()
		m.active = pageScores
		return m, nil

	case m.setup.Selected() != nil:
		opts := *m.setup.Selected()
		if m.lockedName {
			opts.PlayerName = m.defaults.PlayerName
		}
		m.defaults = opts

		game, err := m.env.NewGame(opts)
		if err != nil {
			m.err = err
			m.setup = m.newSetup()
			return m, m.setup.Init()
		}
		m.err = nil
		gm := NewModel(game, false)
		next, _ := gm.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		gm = next.(Model)
		m.game = &gm
		m.active = pageGame
		return m, gm.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.game = nil
		m.setup = m.newSetup()
		m.active = pageSetup
		return m, m.setup.Init()

	case m.game.WantsScoreboard():
		m.game = nil
		m.scores = m.newScores()
		m.active = pageScores
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		m.setup = m.newSetup()
		m.active = pageSetup
		return m, m.setup.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case pageGame:
		return m.game.View()
	case pageScores:
		return m.scores.View()
	}

	view := m.setup.View()
	if m.err != nil {
		view += "\n\n" + centerText("Error: "+m.err.Error(), m.width)
	}
	return view
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the interactive setup, game and scoreboard flow until the
// player quits.
func RunMenu(env Env, defaults config.Options, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(env, defaults, false, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
