package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive setup, game and scoreboard",
	Long: `Open the setup form to pick a name, mode, difficulty, theme and
obstacle pattern, then play. Tab opens the scoreboard, Esc returns.

The play flags (--name, --mode, --difficulty, --theme, --pattern, --cols,
--rows) pre-fill the form.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("menu needs an interactive terminal")
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunMenu(env, flagOptions(), width, height)
}
