package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagName       string
	flagMode       string
	flagDifficulty string
	flagTheme      string
	flagPattern    string
	flagCols       int
	flagRows       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session",
	Long: `Start a snake session with the given options.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/Enter      - Start, launch, pause/resume
  P                - Pause
  R                - Reset to idle
  B/Esc            - Back (quit)
  Q/Ctrl+C         - Quit

Difficulty options:
  slow   - One tick per second slower than the level speed
  normal - Level speed
  fast   - Two ticks per second faster

Examples:
  snake play
  snake play --name ada --difficulty fast
  snake play --mode endless --theme neon
  snake play --pattern maze --cols 40 --rows 24`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// menu uses the same flags to pre-fill its form
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagName, "name", config.DefaultPlayerName, "Player name for the leaderboard")
		c.Flags().StringVar(&flagMode, "mode", config.DefaultMode, "Progression mode (see 'snake levels')")
		c.Flags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty: slow, normal, fast")
		c.Flags().StringVar(&flagTheme, "theme", string(config.ThemeAuto), "Theme: auto, classic, neon, amber")
		c.Flags().StringVar(&flagPattern, "pattern", "", "Pin every level to one obstacle pattern")
		c.Flags().IntVar(&flagCols, "cols", 0, "Override grid columns")
		c.Flags().IntVar(&flagRows, "rows", 0, "Override grid rows")
	}
}

// flagOptions collects the session options from the command line.
func flagOptions() config.Options {
	return config.Options{
		PlayerName: flagName,
		Mode:       flagMode,
		Difficulty: config.Difficulty(flagDifficulty),
		Theme:      config.Theme(flagTheme),
		Pattern:    flagPattern,
	}
}

// applyGridFlags overrides the configured grid size and revalidates.
func applyGridFlags(cfg config.SnakeConfig) (config.SnakeConfig, error) {
	if flagCols > 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagRows > 0 {
		cfg.Grid.Rows = flagRows
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if cfg, err = applyGridFlags(cfg); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	env, closeEnv := openEnv(cfg, logger)
	defer closeEnv()

	game, err := env.NewGame(flagOptions())
	if err != nil {
		return err
	}

	// Warn early; the game itself pauses while the window is too small
	bw, bh := tui.BoardSize(cfg.Grid.Cols, cfg.Grid.Rows)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < bw || h < bh) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, bw, bh)
	}

	logger.Info("play started", "player", game.Options().PlayerName, "mode", game.Mode())
	return tui.Run(game)
}
