package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game center SSH server",
	Long: `Start an SSH server that gives every connection its own launcher.

The SSH user name is stored with scores, and all users share the same
leaderboard. Pacman runs as a local program and is not offered over SSH.
Edits to YAML files in --config-dir or ~/.gamecenter/configs apply to new
connections without a restart.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gamecenter/host_key

Examples:
  gamecenter serve                           # Listen on :23234 with auto-generated key
  gamecenter serve --ssh :2222               # Listen on port 2222
  gamecenter serve --host-key ./my_host_key  # Use specific host key
  gamecenter serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, err := openApp(false)
	if err != nil {
		return err
	}
	defer ctx.Close()

	settings := func() *config.Settings { return ctx.Settings }
	preset, _ := config.ParsePreset(flagDifficulty)
	watcher, err := config.NewWatcher(
		config.Options{Dir: config.ExpandHome(flagConfigDir), Difficulty: preset},
		ctx.Settings,
		ctx.Logger.With("component", "config"),
	)
	if err != nil {
		ctx.Logger.Warn("config reload disabled", "error", err)
	} else {
		defer watcher.Close()
		go watcher.Run(cmd.Context())
		settings = watcher.Settings
		ctx.Logger.Info("watching config", "dirs", watcher.Dirs())
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	server, err := tui.NewSSHServer(cfg, settings, ctx.Store, ctx.Logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting game center SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
