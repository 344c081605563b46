package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamecenter/internal/platform/tui"
	"github.com/vovakirdan/gamecenter/internal/registry"
	"github.com/vovakirdan/gamecenter/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var errNoStore = errors.New("scores database is not available")

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game, or a summary of every game.

Examples:
  gamecenter scores
  gamecenter scores flappy
  gamecenter scores snake --limit 20
  gamecenter scores -i
  gamecenter scores memory --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently launched games",
	RunE:  runHistory,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of launches to show")
}

func runScores(_ *cobra.Command, args []string) error {
	ctx, err := openApp(flagInteractive)
	if err != nil {
		return err
	}
	defer ctx.Close()
	if ctx.Store == nil {
		return errNoStore
	}

	if flagInteractive {
		if err := requireTerminal(); err != nil {
			return err
		}
		w, h := terminalSize()
		return tui.RunScoreboard(ctx.Store, w, h)
	}

	if len(args) == 0 {
		return printSummary(ctx.Store)
	}

	gameID := args[0]
	entry, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'gamecenter list' to see available games)", gameID)
	}

	if flagClear {
		if err := ctx.Store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", entry.Title)
		return nil
	}

	scores, err := ctx.Store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", entry.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gamecenter play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := ctx.Store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f  Games: %d  Launches: %d\n",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.Launches)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	best, err := store.HighScores()
	if err != nil {
		return err
	}
	launches, err := store.LaunchCounts()
	if err != nil {
		return err
	}

	fmt.Printf("  %-16s  %-8s  %s\n", "Game", "Best", "Launches")
	fmt.Printf("  %-16s  %-8s  %s\n", "----", "----", "--------")
	for _, g := range registry.List() {
		fmt.Printf("  %-16s  %-8d  %d\n", g.Title, best[g.ID], launches[g.ID])
	}
	return nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx, err := openApp(false)
	if err != nil {
		return err
	}
	defer ctx.Close()
	if ctx.Store == nil {
		return errNoStore
	}

	recent, err := ctx.Store.RecentLaunches(flagLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No games launched yet.")
		return nil
	}

	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	fmt.Printf("  %-16s  %-16s  %s\n", "When", "Game", "Player")
	for _, l := range recent {
		title := titles[l.GameID]
		if title == "" {
			title = l.GameID
		}
		fmt.Printf("  %-16s  %-16s  %s\n", l.CreatedAt.Format("2006-01-02 15:04"), title, l.Player)
	}
	return nil
}
