// Package pacman launches the external Pacman executable. The game itself
// lives outside this program; the launcher hands the terminal over to it
// and takes it back when the process exits.
package pacman

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

// ID is the registry identifier of the external game.
const ID = "pacman"

func init() {
	registry.RegisterExternal(ID, "Pacman", 1)
}

// ErrNoCommand is returned when no executable is configured.
var ErrNoCommand = errors.New("pacman: no command configured")

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Command builds the process for the configured executable. The working
// directory must exist; the command must be on PATH or an explicit path.
func Command(cfg config.PacmanConfig) (*exec.Cmd, error) {
	if cfg.Command == "" {
		return nil, ErrNoCommand
	}
	path, err := lookPath(config.ExpandHome(cfg.Command))
	if err != nil {
		return nil, fmt.Errorf("pacman: cannot find %q: %w", cfg.Command, err)
	}

	cmd := exec.Command(path, cfg.Args...)
	if cfg.Dir != "" {
		dir := config.ExpandHome(cfg.Dir)
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("pacman: working directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("pacman: %s is not a directory", dir)
		}
		cmd.Dir = dir
	}
	return cmd, nil
}
