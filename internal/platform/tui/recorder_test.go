package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestSessionRecorder(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	board := leaderboard.New(store, 10, 18)
	rec := &SessionRecorder{Board: board, Store: store}

	res := snake.Result{
		SessionID: "5b8f0c1e-0000-4000-8000-000000000001",
		Player:    "ada",
		Mode:      snake.ModeLevels,
		Duration:  12340 * time.Millisecond,
		Points:    70,
		Level:     1,
		Foods:     7,
	}
	if err := rec.Record(res); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	points := board.Load(leaderboard.KindPoints)
	if len(points) != 1 || points[0].Player != "ada" || points[0].Value != 70 {
		t.Errorf("points board = %+v", points)
	}
	durations := board.Load(leaderboard.KindDuration)
	if len(durations) != 1 || durations[0].Value != 12.3 {
		t.Errorf("duration board = %+v", durations)
	}

	got, err := store.SessionByID(res.SessionID)
	if err != nil || got == nil {
		t.Fatalf("SessionByID() = %v, %v", got, err)
	}
	if got.Points != 70 || got.Foods != 7 || got.Mode != snake.ModeLevels {
		t.Errorf("stored session = %+v", got)
	}
}

func TestSessionRecorderNilSinks(t *testing.T) {
	rec := &SessionRecorder{}
	if err := rec.Record(snake.Result{Player: "ada", Points: 10}); err != nil {
		t.Errorf("Record() with no sinks error = %v", err)
	}
}

func TestEnvNewGameRecordsOnce(t *testing.T) {
	env := testEnv()
	game, err := env.NewGame(config.Options{PlayerName: "bob"})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	game.Start("")
	game.Start("")
	for range 100 {
		if res := game.Tick(); res.GameOver {
			break
		}
	}
	if game.State() != snake.StateGameOver {
		t.Fatalf("state = %v, want game over", game.State())
	}

	entries := env.Board.Load(leaderboard.KindDuration)
	if len(entries) != 1 || entries[0].Player != "bob" {
		t.Errorf("duration board = %+v", entries)
	}
}
