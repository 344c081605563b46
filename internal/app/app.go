// Package app builds the process-wide context: logger, settings, score
// store and audio. It is created once at startup and closed on exit.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamecenter/internal/audio"
	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/storage"
)

// LogFileName is the log file under the app directory in TUI mode.
const LogFileName = "gamecenter.log"

// Options configures New.
type Options struct {
	ConfigDir  string
	Difficulty string
	DBPath     string // Empty means ~/.gamecenter/scores.db
	LogLevel   string
	LogPath    string    // Log to this file; used when the TUI owns the terminal
	LogOutput  io.Writer // Log here when LogPath is empty; defaults to stderr
	NoStore    bool
}

// Context holds the shared services.
type Context struct {
	Logger   *log.Logger
	Settings *config.Settings
	Sources  map[string]string // config file -> where it was loaded from
	Store    *storage.Store    // nil if the database could not be opened
	Audio    *audio.Player

	logFile *os.File
}

// DefaultDBPath returns the score database location.
func DefaultDBPath() string {
	return filepath.Join(config.AppDir(), "scores.db")
}

// DefaultLogPath returns the TUI log file location.
func DefaultLogPath() string {
	return filepath.Join(config.AppDir(), LogFileName)
}

// New loads settings and opens every service. A broken database is logged
// and the program continues without score persistence.
func New(opts Options) (*Context, error) {
	c := &Context{}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	if opts.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogPath), 0o755); err != nil {
			return nil, fmt.Errorf("app: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("app: cannot open log file: %w", err)
		}
		c.logFile = f
		out = f
	}
	logger, err := newLogger(out, opts.LogLevel)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Logger = logger

	preset, ok := config.ParsePreset(opts.Difficulty)
	if !ok {
		c.Close()
		return nil, fmt.Errorf("app: unknown difficulty %q (use easy, normal, hard or fixed)", opts.Difficulty)
	}
	settings, sources, err := config.Load(config.Options{Dir: opts.ConfigDir, Difficulty: preset})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	c.Settings = settings
	c.Sources = sources
	for name, src := range sources {
		logger.Debug("config loaded", "file", name, "source", src)
	}

	if !opts.NoStore {
		dbPath := opts.DBPath
		if dbPath == "" {
			dbPath = DefaultDBPath()
		}
		store, err := storage.Open(dbPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", dbPath, "error", err)
		} else {
			c.Store = store
		}
	}

	c.Audio = audio.New(settings.Audio, logger.With("component", "audio"))
	return c, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "gamecenter",
	})
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("app: invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// HighScores returns each game's best score, or an empty map without a
// store.
func (c *Context) HighScores() map[string]int {
	if c.Store == nil {
		return map[string]int{}
	}
	best, err := c.Store.HighScores()
	if err != nil {
		c.Logger.Warn("could not read high scores", "error", err)
		return map[string]int{}
	}
	return best
}

// RecordLaunch stores a launch; failures are logged only.
func (c *Context) RecordLaunch(gameID, player string) {
	if c.Store == nil {
		return
	}
	if err := c.Store.RecordLaunch(gameID, player); err != nil {
		c.Logger.Warn("could not record launch", "game", gameID, "error", err)
	}
}

// Close releases every service in reverse order of creation.
func (c *Context) Close() error {
	if c.Audio != nil {
		c.Audio.Close()
	}
	var firstErr error
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			firstErr = err
		}
		c.Store = nil
	}
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.logFile = nil
	}
	return firstErr
}
