package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Setup form rows.
const (
	rowName = iota
	rowMode
	rowDifficulty
	rowTheme
	rowPattern
	rowPlay
	rowCount
)

// SetupModel collects the options of the next session.
type SetupModel struct {
	name       textinput.Model
	modes      []registry.ModeInfo
	patterns   []string // "" pins nothing
	modeIdx    int
	diffIdx    int
	themeIdx   int
	patternIdx int
	row        int
	width      int
	height     int
	keyMapper  *KeyMapper
	selected   *config.Options
	quitting   bool
	scoreboard bool
	lockedName bool
}

// NewSetupModel creates a setup form pre-filled from defaults. A locked
// name cannot be edited, which is how SSH sessions pin the player to the
// login user.
func NewSetupModel(defaults config.Options, nameMax int, lockedName bool, width, height int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = config.DefaultPlayerName
	ti.CharLimit = nameMax
	ti.Width = nameMax + 1
	ti.SetValue(defaults.PlayerName)

	patterns := []string{""}
	for _, p := range snake.Patterns() {
		patterns = append(patterns, p.ID)
	}

	m := SetupModel{
		name:       ti,
		modes:      registry.List(),
		patterns:   patterns,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		lockedName: lockedName,
	}
	for i, mi := range m.modes {
		if mi.ID == defaults.Mode {
			m.modeIdx = i
		}
	}
	for i, d := range config.Difficulties() {
		if d == defaults.Difficulty {
			m.diffIdx = i
		}
	}
	for i, th := range config.Themes() {
		if th == defaults.Theme {
			m.themeIdx = i
		}
	}
	for i, p := range m.patterns {
		if p == defaults.Pattern {
			m.patternIdx = i
		}
	}

	if lockedName {
		m.row = rowMode
	} else {
		m.name.Focus()
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	if m.lockedName {
		return nil
	}
	return textinput.Blink
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.row == rowName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Letters belong to the name field while it has focus.
	if m.row == rowName {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "down", "enter", "tab", "esc":
		default:
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.moveRow(-1)
	case MenuActionDown:
		m.moveRow(1)
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		opts := m.Options()
		m.selected = &opts
	case MenuActionScoreboard:
		m.scoreboard = true
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *SetupModel) moveRow(delta int) {
	first := rowName
	if m.lockedName {
		first = rowMode
	}
	m.row = max(first, min(rowCount-1, m.row+delta))
	if m.row == rowName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
}

func (m *SetupModel) cycle(delta int) {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }
	switch m.row {
	case rowMode:
		if len(m.modes) > 0 {
			m.modeIdx = wrap(m.modeIdx, len(m.modes))
		}
	case rowDifficulty:
		m.diffIdx = wrap(m.diffIdx, len(config.Difficulties()))
	case rowTheme:
		m.themeIdx = wrap(m.themeIdx, len(config.Themes()))
	case rowPattern:
		m.patternIdx = wrap(m.patternIdx, len(m.patterns))
	}
}

// Options returns the options currently shown in the form.
func (m SetupModel) Options() config.Options {
	opts := config.Options{
		PlayerName: m.name.Value(),
		Difficulty: config.Difficulties()[m.diffIdx],
		Theme:      config.Themes()[m.themeIdx],
		Pattern:    m.patterns[m.patternIdx],
	}
	if len(m.modes) > 0 {
		opts.Mode = m.modes[m.modeIdx].ID
	}
	return opts
}

// View renders the setup form.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S N A K E", m.width)))
	b.WriteString("\n\n")

	opts := m.Options()
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "by level"
	}
	mode := opts.Mode
	if len(m.modes) > 0 {
		mode = m.modes[m.modeIdx].Title
	}

	lines := []struct {
		label string
		value string
	}{
		{"Name", m.name.View()},
		{"Mode", "< " + mode + " >"},
		{"Difficulty", "< " + string(opts.Difficulty) + " >"},
		{"Theme", "< " + string(opts.Theme) + " >"},
		{"Pattern", "< " + pattern + " >"},
		{"", "[ Play ]"},
	}
	for i, l := range lines {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.row {
			cursor = "> "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%-11s %s", cursor, l.label, l.value)
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Field  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Esc: Quit", m.width)))
	return b.String()
}

// Selected returns the chosen options, or nil while the form is open.
func (m SetupModel) Selected() *config.Options {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.scoreboard
}
