package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List progression modes, levels and obstacle patterns",
	Long:  `Shows the registered progression modes, the level table and every obstacle pattern.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Modes:")
	fmt.Println()
	for _, m := range registry.List() {
		fmt.Printf("  %-8s  %s\n", m.ID, m.Title)
	}
	fmt.Println()

	policy, err := registry.Create(snake.ModeLevels, cfg, config.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-5s  %-8s  %s\n", "Level", "Foods", "Speed", "Theme", "Pattern")
	fmt.Printf("  %-5s  %-5s  %-5s  %-8s  %s\n", "-----", "-----", "-----", "-----", "-------")
	for level := 1; level <= cfg.Progression.MaxLevel; level++ {
		foods := (level - 1) * cfg.Progression.FoodsPerLevel
		st := policy.Stage(foods)
		reset := ""
		if st.HardReset {
			reset = "  (snake reset)"
		}
		fmt.Printf("  %-5d  %-5d  %-5d  %-8s  %s%s\n", st.Level, foods, st.Speed, st.Theme, st.Pattern, reset)
	}
	fmt.Println()

	grid := snake.NewGrid(cfg.Grid.Cols, cfg.Grid.Rows)
	fmt.Printf("Patterns (%dx%d grid):\n", grid.Cols, grid.Rows)
	fmt.Println()
	for _, p := range snake.Patterns() {
		obstacles, err := snake.GeneratePattern(grid, p.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s  %4d cells  %s\n", p.ID, obstacles.Len(), p.Description)
	}
	fmt.Println()
	fmt.Println("Run 'snake play --pattern <id>' to pin a pattern.")
	return nil
}
