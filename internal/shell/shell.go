// Package shell runs one game instance: it owns the render surface, the
// frame clock, pause and fullscreen state, and the running flag. Every tick
// it polls input, updates the game unless paused, and renders.
package shell

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

// ScoreRecorder persists a finished run's score.
type ScoreRecorder interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// CuePlayer plays sound cues without blocking.
type CuePlayer interface {
	Play(cue core.Cue)
}

// ExitReason tells the caller why the shell stopped running.
type ExitReason int

const (
	ExitNone     ExitReason = iota
	ExitLauncher            // "Back to Launcher" from the pause menu
	ExitQuit                // Quit action
)

func (r ExitReason) String() string {
	switch r {
	case ExitLauncher:
		return "launcher"
	case ExitQuit:
		return "quit"
	default:
		return "none"
	}
}

// Options configures a Shell.
type Options struct {
	SurfaceW, SurfaceH int     // Terminal size
	WindowScale        float64 // Windowed size relative to the surface
	Fullscreen         bool
	TickRate           int
	Seed               int64
	MaxFrameDelta      time.Duration
	Player             string
	Recorder           ScoreRecorder
	Audio              CuePlayer
	Logger             *log.Logger
}

// Shell drives a single game instance.
type Shell struct {
	game    registry.Game
	opts    Options
	logger  *log.Logger
	logical *core.Screen
	surface *core.Screen
	origin  core.Rect // Where the logical screen sits on the surface
	clock   *core.FrameClock

	phase      core.PhaseMachine // Mirrors the game phase; only the shell pauses
	menu       PauseMenu
	fullscreen bool
	running    bool
	exit       ExitReason
	state      core.GameState
	scoreSaved bool
}

// New creates a shell for game and resets the game. The logical screen
// size is fixed here: later fullscreen toggles and terminal resizes move
// and clip it, they never rescale it.
func New(game registry.Game, opts Options) *Shell {
	if opts.WindowScale <= 0 || opts.WindowScale > 1 {
		opts.WindowScale = 0.8
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Shell{
		game:       game,
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		clock:      core.NewFrameClock(opts.MaxFrameDelta),
		fullscreen: opts.Fullscreen,
		running:    true,
	}

	w, h := s.logicalSize(opts.SurfaceW, opts.SurfaceH)
	s.logical = core.NewScreen(w, h)
	s.surface = core.NewScreen(opts.SurfaceW, opts.SurfaceH)
	s.layout()

	game.Reset(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	s.state = game.State()
	s.phase.Reset(s.state.Phase)
	s.logger.Debug("game started", "width", w, "height", h, "fullscreen", s.fullscreen)
	return s
}

// logicalSize picks the game area for a surface in the launch mode.
func (s *Shell) logicalSize(sw, sh int) (int, int) {
	if s.fullscreen {
		return core.Max(sw, 20), core.Max(sh, 10)
	}
	w := int(float64(sw)*s.opts.WindowScale) - 2
	h := int(float64(sh)*s.opts.WindowScale) - 2
	return core.Max(w, 20), core.Max(h, 10)
}

// layout positions the logical screen centered on the surface.
func (s *Shell) layout() {
	lw, lh := s.logical.Width(), s.logical.Height()
	s.origin = core.NewRect((s.surface.Width()-lw)/2, (s.surface.Height()-lh)/2, lw, lh)
}

// Game returns the running game.
func (s *Shell) Game() registry.Game {
	return s.game
}

// Running reports whether the shell still owns the session.
func (s *Shell) Running() bool {
	return s.running
}

// Exit returns why the shell stopped, or ExitNone while running.
func (s *Shell) Exit() ExitReason {
	return s.exit
}

// Paused reports whether the pause overlay is up.
func (s *Shell) Paused() bool {
	return s.phase.Is(core.PhasePaused)
}

// Fullscreen reports the current display mode.
func (s *Shell) Fullscreen() bool {
	return s.fullscreen
}

// Surface returns the current render surface.
func (s *Shell) Surface() *core.Screen {
	return s.surface
}

// State returns the last game state, reported as Paused while the overlay
// is up.
func (s *Shell) State() core.GameState {
	st := s.state
	st.Phase = s.phase.Phase()
	return st
}

// TogglePause shows or hides the pause menu. Only a game in play can be
// paused; it reports whether the overlay changed.
func (s *Shell) TogglePause() bool {
	if !s.phase.Pause() && !s.phase.Resume() {
		return false
	}
	s.menu.Reset()
	return true
}

// ToggleFullscreen switches display mode and re-creates the surface.
func (s *Shell) ToggleFullscreen() {
	s.fullscreen = !s.fullscreen
	s.surface = core.NewScreen(s.surface.Width(), s.surface.Height())
	s.layout()
}

// Resize re-creates the surface for a new terminal size.
func (s *Shell) Resize(w, h int) {
	s.surface = core.NewScreen(w, h)
	s.layout()
}

// Quit stops the shell.
func (s *Shell) Quit() {
	s.stop(ExitQuit)
}

func (s *Shell) stop(reason ExitReason) {
	if !s.running {
		return
	}
	s.running = false
	s.exit = reason
	s.logger.Debug("game stopped", "reason", reason, "score", s.state.Score)
}

// Tick runs one frame: shell input, game input, update unless paused.
func (s *Shell) Tick(now time.Time, in core.InputFrame) {
	if !s.running {
		return
	}

	s.handleInput(in)
	dt := s.clock.Tick(now)
	if !s.running || s.Paused() {
		return
	}

	res := s.game.Update(dt)
	s.state = res.State
	s.phase.Reset(s.state.Phase)
	s.playCues(res.Cues)
	s.recordScore()
}

func (s *Shell) handleInput(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.Quit()
		return
	}
	if in.Has(core.ActionFullscreen) {
		s.ToggleFullscreen()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
		return
	}

	if s.Paused() {
		s.handleMenuInput(in)
		return
	}

	in.Unset(core.ActionFullscreen)
	s.game.HandleInput(s.toLogical(in))
}

func (s *Shell) handleMenuInput(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		s.menu.Move(-1)
	}
	if in.Has(core.ActionDown) {
		s.menu.Move(1)
	}
	activate := in.Has(core.ActionConfirm)

	for _, ev := range in.Pointer {
		row := itemAt(s.origin, ev.X, ev.Y)
		if row < 0 {
			continue
		}
		s.menu.Select(row)
		if ev.Kind == core.PointerClick {
			activate = true
		}
	}

	if !activate {
		return
	}
	switch s.menu.Selected() {
	case ItemResume:
		s.TogglePause()
	case ItemFullscreen:
		s.ToggleFullscreen()
	case ItemLauncher:
		s.stop(ExitLauncher)
	}
}

// toLogical translates pointer events from surface to logical coordinates
// and drops those outside the game area.
func (s *Shell) toLogical(in core.InputFrame) core.InputFrame {
	if len(in.Pointer) == 0 {
		return in
	}
	out := in.Clone()
	out.Pointer = out.Pointer[:0]
	for _, ev := range in.Pointer {
		if !s.origin.Contains(ev.X, ev.Y) {
			continue
		}
		ev.X -= s.origin.X
		ev.Y -= s.origin.Y
		out.Pointer = append(out.Pointer, ev)
	}
	return out
}

func (s *Shell) playCues(cues []core.Cue) {
	if s.opts.Audio == nil {
		return
	}
	for _, c := range cues {
		s.opts.Audio.Play(c)
	}
}

// recordScore saves the score once per finished run.
func (s *Shell) recordScore() {
	if s.state.Phase != core.PhaseGameOver {
		s.scoreSaved = false
		return
	}
	if s.scoreSaved {
		return
	}
	s.scoreSaved = true
	if s.state.Score <= 0 || s.opts.Recorder == nil {
		return
	}
	if _, err := s.opts.Recorder.SaveScore(s.game.ID(), s.opts.Player, s.state.Score); err != nil {
		s.logger.Warn("failed to save score", "score", s.state.Score, "err", err)
		return
	}
	s.logger.Info("score saved", "score", s.state.Score, "player", s.opts.Player)
}

// Render composes the game and chrome onto the surface.
func (s *Shell) Render() *core.Screen {
	s.logical.Clear()
	s.game.Render(s.logical)

	s.surface.Clear()
	if !s.fullscreen {
		frame := core.NewRect(s.origin.X-1, s.origin.Y-1, s.origin.W+2, s.origin.H+2)
		s.surface.DrawBoxColor(frame, core.ColorGray)
		title := " " + s.game.Title() + " "
		s.surface.DrawTextColor(frame.X+2, frame.Y, title, core.ColorBrightWhite)
		hint := " Esc pause  F fullscreen "
		s.surface.DrawTextColor(frame.Right()-len(hint)-2, frame.Bottom()-1, hint, core.ColorGray)
	}
	s.surface.Blit(s.logical, s.origin.X, s.origin.Y)

	if s.Paused() {
		s.menu.render(s.surface, s.origin)
	}
	return s.surface
}
