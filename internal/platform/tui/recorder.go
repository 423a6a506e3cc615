package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Env carries the shared services every session is built from.
// Store may be nil; sessions then only update the leaderboard.
type Env struct {
	Config config.SnakeConfig
	Board  *leaderboard.Board
	Store  *storage.Store
	Logger *log.Logger
	Seed   int64 // Zero seeds from the clock
}

// NewGame creates an idle engine for opts that records finished sessions
// into the environment's leaderboard and history.
func (e Env) NewGame(opts config.Options) (*snake.Game, error) {
	logger := e.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	options := []snake.Option{
		snake.WithLogger(logger),
		snake.WithRecorder(&SessionRecorder{Board: e.Board, Store: e.Store, Logger: logger}),
	}
	if e.Seed != 0 {
		options = append(options, snake.WithSeed(e.Seed))
	}
	return snake.New(e.Config, opts, options...)
}

// SessionRecorder persists finished sessions. Either sink may be nil.
type SessionRecorder struct {
	Board  *leaderboard.Board
	Store  *storage.Store
	Logger *log.Logger
}

// Record implements snake.Recorder.
func (r *SessionRecorder) Record(res snake.Result) error {
	var errs []error

	if r.Board != nil {
		if err := r.Board.Record(res.Player, res.Duration, res.Points); err != nil {
			errs = append(errs, err)
		}
	}

	if r.Store != nil {
		_, err := r.Store.SaveSession(storage.SessionRecord{
			SessionID: res.SessionID,
			Player:    res.Player,
			Mode:      res.Mode,
			Points:    res.Points,
			Duration:  res.Duration,
			Level:     res.Level,
			Foods:     res.Foods,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	if r.Logger != nil {
		r.Logger.Info("session finished",
			"session", res.SessionID,
			"player", res.Player,
			"mode", res.Mode,
			"points", res.Points,
			"duration", res.Duration.Round(100*time.Millisecond),
			"level", res.Level,
		)
	}

	return errors.Join(errs...)
}
