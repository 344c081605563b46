package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamecenter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in launcher order with its best stored score.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	best := map[string]int{}
	if ctx, err := openApp(false); err == nil {
		best = ctx.HighScores()
		ctx.Close()
	} else {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		note := "-"
		switch {
		case g.External:
			note = "external"
		case best[g.ID] > 0:
			note = fmt.Sprintf("%d", best[g.ID])
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, g.ID, g.Title, note)
	}

	fmt.Println()
	fmt.Println("Run 'gamecenter play <id>' to play a game.")
	return nil
}
