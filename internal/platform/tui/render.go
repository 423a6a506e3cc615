package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorAmber:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Palette holds the colors of one theme.
type Palette struct {
	Border   core.Color
	Head     core.Color
	Body     core.Color
	Food     core.Color
	Obstacle core.Color
	Text     core.Color
	Dim      core.Color
}

var palettes = map[config.Theme]Palette{
	config.ThemeClassic: {
		Border:   core.ColorGreen,
		Head:     core.ColorBrightGreen,
		Body:     core.ColorGreen,
		Food:     core.ColorBrightRed,
		Obstacle: core.ColorGray,
		Text:     core.ColorWhite,
		Dim:      core.ColorDarkGray,
	},
	config.ThemeNeon: {
		Border:   core.ColorMagenta,
		Head:     core.ColorBrightCyan,
		Body:     core.ColorCyan,
		Food:     core.ColorBrightMagenta,
		Obstacle: core.ColorMagenta,
		Text:     core.ColorBrightCyan,
		Dim:      core.ColorDarkGray,
	},
	config.ThemeAmber: {
		Border:   core.ColorOrange,
		Head:     core.ColorBrightYellow,
		Body:     core.ColorAmber,
		Food:     core.ColorBrightRed,
		Obstacle: core.ColorOrange,
		Text:     core.ColorAmber,
		Dim:      core.ColorDarkGray,
	},
}

// PaletteFor returns the palette of theme, falling back to classic.
func PaletteFor(theme config.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[config.ThemeClassic]
}

// Cell glyphs. Every grid cell is drawn two terminal columns wide so the
// board looks square.
const (
	cellWidth    = 2
	glyphHead    = "██"
	glyphBody    = "▓▓"
	glyphFood    = "<>"
	glyphBlock   = "▒▒"
	hudRows      = 1
	footerRows   = 1
	borderExtent = 2
)

// BoardSize returns the terminal size needed to draw a cols x rows board
// with its HUD and footer.
func BoardSize(cols, rows int) (width, height int) {
	return cols*cellWidth + borderExtent, rows + borderExtent + hudRows + footerRows
}

// DrawSnapshot paints a snapshot onto s. The board is centered
// horizontally; s is expected to be at least BoardSize large.
func DrawSnapshot(s *core.Screen, snap snake.Snapshot) {
	s.Clear()
	pal := PaletteFor(snap.Theme)

	w, _ := BoardSize(snap.Cols, snap.Rows)
	ox := max((s.Width()-w)/2, 0)
	oy := hudRows

	drawHUD(s, ox, w, snap, pal)
	s.DrawBox(core.NewRect(ox, oy, w, snap.Rows+borderExtent), pal.Border)

	put := func(p core.Point, glyph string, c core.Color) {
		s.DrawText(ox+1+p.X*cellWidth, oy+1+p.Y, glyph, c)
	}
	for _, p := range snap.Obstacles {
		put(p, glyphBlock, pal.Obstacle)
	}
	if snap.HasFood {
		put(snap.Food, glyphFood, pal.Food)
	}
	for i, p := range snap.Snake {
		if i == len(snap.Snake)-1 {
			put(p, glyphHead, pal.Head)
			continue
		}
		put(p, glyphBody, pal.Body)
	}

	drawOverlay(s, oy+1+snap.Rows/2, snap, pal)
	s.DrawTextCentered(oy+snap.Rows+borderExtent, footerText(snap.State), pal.Dim)
}

func drawHUD(s *core.Screen, x, width int, snap snake.Snapshot, pal Palette) {
	left := fmt.Sprintf(" %s  LVL %d  SPD %d", snap.Player, snap.Level, snap.Speed)
	right := fmt.Sprintf("%d pts  %.1fs ", snap.Score, snap.Elapsed.Seconds())
	s.DrawText(x, 0, left, pal.Text)
	s.DrawText(x+width-len(right), 0, right, pal.Text)
}

func drawOverlay(s *core.Screen, y int, snap snake.Snapshot, pal Palette) {
	var lines []string
	switch snap.State {
	case snake.StateIdle:
		lines = []string{"SNAKE", "press SPACE to begin"}
	case snake.StateReady:
		lines = []string{"READY", "press SPACE to go"}
	case snake.StatePaused:
		lines = []string{"PAUSED", "SPACE or P to resume"}
	case snake.StateGameOver:
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("%s: %d pts in %.1fs", snap.Collision, snap.Score, snap.Elapsed.Seconds()),
			"SPACE to play again",
		}
	default:
		return
	}
	y -= len(lines) / 2
	for i, line := range lines {
		text := " " + line + " "
		s.DrawTextCentered(y+i, text, pal.Text)
	}
}

func footerText(state snake.State) string {
	switch state {
	case snake.StateRunning, snake.StatePaused:
		return " arrows/wasd move  space pause  r reset  b back "
	default:
		return " space start  tab scores  b back  q quit "
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
