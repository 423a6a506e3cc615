package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagKind        string
	flagHistory     int
	flagStats       bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboards",
	Long: `Display the ranked lists: longest runs (duration) and most points.

Examples:
  snake scores
  snake scores --kind points
  snake scores --history 20
  snake scores --stats
  snake scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagKind, "kind", "", "Only show one list: duration or points")
	scoresCmd.Flags().IntVar(&flagHistory, "history", 0, "Also show the N most recent sessions")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-mode statistics")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the scoreboard in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase both leaderboards")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	kinds := leaderboard.Kinds()
	if flagKind != "" {
		kind, err := leaderboard.ParseKind(flagKind)
		if err != nil {
			return err
		}
		kinds = []leaderboard.Kind{kind}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearBoards(); err != nil {
			return err
		}
		fmt.Println("Leaderboards cleared.")
		return nil
	}

	board := leaderboard.New(store, cfg.Leaderboard.Capacity, cfg.Leaderboard.NameMax)
	if flagInteractive {
		return tui.RunScoreboard(board, store, cfg.Leaderboard.NameMax)
	}

	for _, kind := range kinds {
		printBoard(board, kind, cfg.Leaderboard.NameMax)
	}

	if flagHistory > 0 {
		if err := printHistory(store, flagHistory, cfg.Leaderboard.NameMax); err != nil {
			return err
		}
	}
	if flagStats {
		return printStats(store)
	}
	return nil
}

func printBoard(board *leaderboard.Board, kind leaderboard.Kind, nameMax int) {
	title := "Longest Runs"
	if kind == leaderboard.KindPoints {
		title = "Top Points"
	}
	fmt.Printf("%s\n\n", title)

	entries := board.Load(kind)
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		fmt.Println()
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %s\n", "Rank", nameMax, "Player", "Value")
	fmt.Printf("  %-4s  %-*s  %s\n", "----", nameMax, "------", "-----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %s\n", i+1, nameMax, leaderboard.DisplayName(e.Player, nameMax), leaderboard.FormatValue(kind, e.Value))
	}
	fmt.Println()
}

func printHistory(store *storage.Store, limit, nameMax int) error {
	records, err := store.RecentSessions("", limit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Sessions\n\n")
	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-*s  %-8s  %6s  %8s  %3s  %s\n", nameMax, "Player", "Mode", "Points", "Time", "Lvl", "Date")
	for _, r := range records {
		fmt.Printf("  %-*s  %-8s  %6d  %7.1fs  %3d  %s\n",
			nameMax, leaderboard.DisplayName(r.Player, nameMax), r.Mode, r.Points,
			leaderboard.Seconds(r.Duration), r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Statistics\n\n")
	if len(stats) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		s := stats[mode]
		fmt.Printf("  %s\n", registry.Title(mode))
		fmt.Printf("    sessions:    %d\n", s.SessionCount)
		fmt.Printf("    best points: %d (avg %.1f)\n", s.BestPoints, s.AvgPoints)
		fmt.Printf("    longest run: %s\n", s.Longest.Round(100*time.Millisecond))
		fmt.Printf("    foods eaten: %d\n", s.TotalFoods)
		fmt.Printf("    max level:   %d\n", s.MaxLevel)
		if !s.LastPlayed.IsZero() {
			fmt.Printf("    last played: %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
