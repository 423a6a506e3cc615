// snake is a grid snake arcade for the terminal.
//
// Usage:
//
//	snake play               - Play one configured session
//	snake menu               - Interactive setup, game and scoreboard
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the leaderboards
//	snake levels             - List modes and obstacle patterns
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Load engine constants from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake" // Registers progression modes
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a grid arcade in your terminal",
	Long: `Snake is a terminal arcade: steer the snake, eat food, avoid walls,
yourself and the obstacle patterns of 21 levels.

Available commands:
  play     - Play one session with the given options
  menu     - Interactive setup form and scoreboard
  serve    - Start SSH server for remote play
  scores   - View the leaderboards and session history
  levels   - List progression modes and obstacle patterns

Examples:
  snake play --name ada --difficulty fast
  snake menu
  snake serve --ssh :2222
  snake scores --kind points`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// openEnv opens the shared services of a command. The returned close
// function releases the store. A store that cannot be opened is logged and
// the leaderboard falls back to memory.
func openEnv(cfg config.SnakeConfig, logger *log.Logger) (tui.Env, func()) {
	env := tui.Env{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		env.Board = leaderboard.New(leaderboard.NewMemoryBackend(), cfg.Leaderboard.Capacity, cfg.Leaderboard.NameMax)
		return env, func() {}
	}

	env.Store = store
	env.Board = leaderboard.New(store, cfg.Leaderboard.Capacity, cfg.Leaderboard.NameMax)
	return env, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
}

// newLogger builds a logger at the configured level. Interactive commands
// own the terminal, so they log to ~/.snake/snake.log instead of stderr.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if !interactive {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake",
			Level:           level,
		})
		return logger, func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, func() { f.Close() }, nil
}
