// Package audio plays sound cues and looped music by running an external
// player command.
package audio

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Player maps cues to sound files. Play never blocks the frame loop.
type Player struct {
	command string
	args    []string
	files   map[core.Cue]string
	music   string
	logger  *log.Logger
	run     func(ctx context.Context, name string, args ...string) error

	wg sync.WaitGroup

	loopMu   sync.Mutex
	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// New resolves every configured cue file. Files that do not exist are
// logged once and stay silent; a missing command disables audio.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		command: cfg.Command,
		args:    cfg.Args,
		files:   make(map[core.Cue]string),
		logger:  logger,
		run:     runCommand,
	}
	if !cfg.Enabled {
		return p
	}
	if _, err := lookPath(cfg.Command); err != nil {
		logger.Warn("audio disabled: player command not found", "command", cfg.Command, "error", err)
		return p
	}

	dir := config.ExpandHome(cfg.Dir)
	for name, file := range cfg.Cues {
		path := resolve(dir, file)
		if _, err := os.Stat(path); err != nil {
			logger.Warn("audio cue file missing", "cue", name, "path", path)
			continue
		}
		p.files[core.Cue(name)] = path
	}
	if cfg.Music != "" {
		path := resolve(dir, cfg.Music)
		if _, err := os.Stat(path); err != nil {
			logger.Warn("audio music file missing", "path", path)
		} else {
			p.music = path
		}
	}
	logger.Debug("audio ready", "command", cfg.Command, "cues", len(p.files), "music", p.music != "")
	return p
}

func resolve(dir, file string) string {
	path := config.ExpandHome(file)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path
}

// Enabled reports whether any cue can be played.
func (p *Player) Enabled() bool {
	return len(p.files) > 0
}

// Cues returns the playable cues, sorted.
func (p *Player) Cues() []core.Cue {
	cues := make([]core.Cue, 0, len(p.files))
	for c := range p.files {
		cues = append(cues, c)
	}
	sort.Slice(cues, func(i, j int) bool { return cues[i] < cues[j] })
	return cues
}

// Play starts the sound for c in the background. Unknown cues are ignored.
func (p *Player) Play(c core.Cue) {
	file, ok := p.files[c]
	if !ok {
		return
	}
	args := append(append([]string(nil), p.args...), file)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.run(context.Background(), p.command, args...); err != nil {
			p.logger.Debug("audio cue failed", "cue", c, "error", err)
		}
	}()
}

// HasMusic reports whether background music is configured and present.
func (p *Player) HasMusic() bool {
	return p.music != ""
}

// Loop plays the music file over and over until StopLoop is called or ctx
// is done. Calling Loop while music is already playing does nothing. A
// player command that fails ends the loop.
func (p *Player) Loop(ctx context.Context) {
	if p.music == "" {
		return
	}
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	if p.stopLoop != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.stopLoop, p.loopDone = cancel, done
	args := append(append([]string(nil), p.args...), p.music)

	go func() {
		defer close(done)
		for ctx.Err() == nil {
			err := p.run(ctx, p.command, args...)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				p.logger.Debug("audio music stopped", "error", err)
				return
			}
		}
	}()
}

// Looping reports whether music is playing.
func (p *Player) Looping() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	if p.loopDone == nil {
		return false
	}
	select {
	case <-p.loopDone:
		return false
	default:
		return true
	}
}

// StopLoop stops the music and waits for the player command to exit.
func (p *Player) StopLoop() {
	p.loopMu.Lock()
	cancel, done := p.stopLoop, p.loopDone
	p.stopLoop, p.loopDone = nil, nil
	p.loopMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Close stops the music and waits for sounds still playing.
func (p *Player) Close() {
	p.StopLoop()
	p.wg.Wait()
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
