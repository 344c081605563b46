package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamecenter/internal/platform/tui"
)

// runLauncher opens the launcher grid. After a game ends the player is
// returned to the grid; Esc, Q or Ctrl+C leaves the program.
func runLauncher(_ *cobra.Command, _ []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	ctx, err := openApp(true)
	if err != nil {
		return err
	}
	defer ctx.Close()

	w, h := terminalSize()
	ctx.Logger.Info("launcher started", "width", w, "height", h)
	return tui.Run(tui.SessionOptions{
		Settings:      ctx.Settings,
		Store:         ctx.Store,
		Audio:         ctx.Audio,
		Music:         ctx.Audio,
		Logger:        ctx.Logger,
		Player:        playerName(),
		Width:         w,
		Height:        h,
		Seed:          flagSeed,
		AllowExternal: true,
	})
}
