// gamecenter is a terminal game center: a launcher grid over a set of
// small games, with persistent high scores and an SSH front end.
//
// Usage:
//
//	gamecenter                  - Open the launcher
//	gamecenter list             - List available games
//	gamecenter play <game>      - Play a game directly
//	gamecenter scores [game]    - Show high scores
//	gamecenter history          - Show recent launches
//	gamecenter serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gamecenter/scores.db)
//	--config-dir <dir>    - Read YAML configs from this directory first
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--player <name>       - Name stored with scores
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamecenter/internal/app"
	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/gamecenter/internal/games/breakout"
	_ "github.com/vovakirdan/gamecenter/internal/games/flappy"
	_ "github.com/vovakirdan/gamecenter/internal/games/memory"
	_ "github.com/vovakirdan/gamecenter/internal/games/pacman"
	_ "github.com/vovakirdan/gamecenter/internal/games/pong"
	_ "github.com/vovakirdan/gamecenter/internal/games/snake"
	_ "github.com/vovakirdan/gamecenter/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigDir  string
	flagDifficulty string
	flagLogLevel   string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamecenter",
	Short: "Game Center - a launcher for small terminal games",
	Long: `Game Center is a terminal launcher for Snake, Pong, Tic-Tac-Toe,
Brick Breaker, Flappy Bird, Memory Match and an external Pacman.

Run without a command to open the launcher.

Examples:
  gamecenter
  gamecenter play flappy --difficulty hard
  gamecenter scores snake
  gamecenter serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use shell config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.gamecenter/scores.db)")
	pf.StringVar(&flagConfigDir, "config-dir", "", "Directory searched first for YAML configs")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagPlayer, "player", "", "Player name stored with scores (default: current user)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// openApp builds the app context from the global flags. Interactive
// commands log to a file so the alternate screen stays clean.
func openApp(logToFile bool) (*app.Context, error) {
	opts := app.Options{
		ConfigDir:  config.ExpandHome(flagConfigDir),
		Difficulty: flagDifficulty,
		DBPath:     config.ExpandHome(flagDBPath),
		LogLevel:   flagLogLevel,
	}
	if logToFile {
		opts.LogPath = app.DefaultLogPath()
	}
	ctx, err := app.New(opts)
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		ctx.Settings.Shell.FPS = flagFPS
	}
	return ctx, nil
}

// playerName resolves --player, falling back to the OS user.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}

// terminalSize returns the current terminal size, or 80x24 when stdout is
// not a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80, 24
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("an interactive terminal is required")
	}
	return nil
}
