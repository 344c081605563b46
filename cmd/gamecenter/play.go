package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamecenter/internal/app"
	"github.com/vovakirdan/gamecenter/internal/games/pacman"
	"github.com/vovakirdan/gamecenter/internal/platform/tui"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game without the launcher.

Controls:
  Arrows/WASD - Move
  Space/Enter - Flap, place, flip, launch
  P/Esc       - Pause menu
  F/F11       - Toggle fullscreen
  R           - Restart (after game over)
  Q           - Leave the game
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  gamecenter play snake
  gamecenter play flappy --difficulty hard
  gamecenter play memory --config-dir ./my-configs
  gamecenter play pong --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	entry, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'gamecenter list' to see available games)", gameID)
	}
	if err := requireTerminal(); err != nil {
		return err
	}

	ctx, err := openApp(true)
	if err != nil {
		return err
	}
	defer ctx.Close()

	player := playerName()
	if entry.External {
		return runExternal(entry, player, ctx)
	}

	w, h := terminalSize()
	return tui.Run(tui.SessionOptions{
		Settings:  ctx.Settings,
		Store:     ctx.Store,
		Audio:     ctx.Audio,
		Logger:    ctx.Logger,
		Player:    player,
		Width:     w,
		Height:    h,
		Seed:      flagSeed,
		StartGame: gameID,
	})
}

// runExternal runs the Pacman executable attached to this terminal.
func runExternal(entry registry.Entry, player string, ctx *app.Context) error {
	cmd, err := pacman.Command(ctx.Settings.Pacman)
	if err != nil {
		return err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	ctx.RecordLaunch(entry.ID, player)
	ctx.Logger.Info("launching external game", "game", entry.ID, "path", cmd.Path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited: %w", entry.Title, err)
	}
	return nil
}
