package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testSnapshot(state snake.State) snake.Snapshot {
	return snake.Snapshot{
		State:     state,
		Player:    "ada",
		Cols:      16,
		Rows:      16,
		Snake:     []core.Point{core.Pt(1, 1), core.Pt(2, 1)},
		Obstacles: []core.Point{core.Pt(0, 15)},
		Food:      core.Pt(5, 5),
		HasFood:   true,
		Score:     30,
		Level:     2,
		Speed:     4,
		Theme:     config.ThemeNeon,
		Elapsed:   12 * time.Second,
		Collision: snake.CollisionWall,
	}
}

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(32, 20)
	if w != 66 || h != 24 {
		t.Errorf("BoardSize(32, 20) = %dx%d, want 66x24", w, h)
	}
}

func TestDrawSnapshotCells(t *testing.T) {
	w, h := BoardSize(16, 16)
	s := core.NewScreen(w, h)
	DrawSnapshot(s, testSnapshot(snake.StateRunning))
	pal := PaletteFor(config.ThemeNeon)

	tests := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"border corner", 0, 1, '┌', pal.Border},
		{"head", 5, 3, '█', pal.Head},
		{"body", 3, 3, '▓', pal.Body},
		{"food", 11, 7, '<', pal.Food},
		{"obstacle", 1, 17, '▒', pal.Obstacle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := s.GetCell(tt.x, tt.y)
			if cell.Rune != tt.r || cell.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, cell.Rune, cell.Color, tt.r, tt.color)
			}
		})
	}

	if hud := s.Row(0); !strings.Contains(hud, "LVL 2") || !strings.Contains(hud, "30 pts") {
		t.Errorf("HUD = %q", hud)
	}
	if footer := s.Row(h - 1); !strings.Contains(footer, "pause") {
		t.Errorf("footer = %q", footer)
	}
}

func TestDrawSnapshotOverlay(t *testing.T) {
	w, h := BoardSize(16, 16)
	s := core.NewScreen(w, h)
	DrawSnapshot(s, testSnapshot(snake.StateGameOver))

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(out, "wall: 30 pts in 12.0s") {
		t.Error("game over summary missing")
	}
}

func TestPaletteFallback(t *testing.T) {
	if PaletteFor(config.ThemeAuto) != PaletteFor(config.ThemeClassic) {
		t.Error("unresolved theme should fall back to classic")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "snake", core.ColorGreen)
	s.DrawText(0, 1, "food", core.ColorBrightRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "snake") || !strings.Contains(out, "food") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen rows = %d, want 2", strings.Count(out, "\n")+1)
	}
}
