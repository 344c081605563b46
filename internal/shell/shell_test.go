package shell

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamecenter/internal/core"
)

// countingGame records every call the shell makes.
type countingGame struct {
	resets  int
	inputs  []core.InputFrame
	updates []time.Duration
	state   core.GameState
	cues    []core.Cue
	cfg     core.RuntimeConfig
}

func (g *countingGame) ID() string    { return "counting" }
func (g *countingGame) Title() string { return "Counting" }

func (g *countingGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{Phase: core.PhasePlaying}
}

func (g *countingGame) HandleInput(in core.InputFrame) {
	g.inputs = append(g.inputs, in.Clone())
}

func (g *countingGame) Update(dt time.Duration) core.StepResult {
	g.updates = append(g.updates, dt)
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *countingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "G")
}

func (g *countingGame) State() core.GameState { return g.state }

type fakeRecorder struct {
	calls int
	score int
	err   error
}

func (r *fakeRecorder) SaveScore(gameID, player string, score int) (int64, error) {
	r.calls++
	r.score = score
	return int64(r.calls), r.err
}

type fakeAudio struct{ played []core.Cue }

func (a *fakeAudio) Play(c core.Cue) { a.played = append(a.played, c) }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestShell(g *countingGame, opts Options) *Shell {
	if opts.SurfaceW == 0 {
		opts.SurfaceW, opts.SurfaceH = 100, 40
	}
	opts.Logger = quietLogger()
	return New(g, opts)
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestShellResetsGameWithLogicalSize(t *testing.T) {
	g := &countingGame{}
	newTestShell(g, Options{WindowScale: 0.8})

	if g.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", g.resets)
	}
	if g.cfg.ScreenW != 78 || g.cfg.ScreenH != 30 {
		t.Errorf("logical size = %dx%d, expected 78x30", g.cfg.ScreenW, g.cfg.ScreenH)
	}
}

func TestShellSkipsUpdateWhilePaused(t *testing.T) {
	g := &countingGame{}
	s := newTestShell(g, Options{})
	now := time.Unix(0, 0)

	s.Tick(now, frame())
	s.Tick(now.Add(16*time.Millisecond), frame(core.ActionPause))
	if !s.Paused() {
		t.Fatal("Pause action should pause the shell")
	}
	updatesAtPause := len(g.updates)
	inputsAtPause := len(g.inputs)

	for i := 2; i < 10; i++ {
		s.Tick(now.Add(time.Duration(i)*16*time.Millisecond), frame(core.ActionLeft))
	}
	if len(g.updates) != updatesAtPause {
		t.Errorf("Update called %d times while paused", len(g.updates)-updatesAtPause)
	}
	if len(g.inputs) != inputsAtPause {
		t.Errorf("game received input while paused")
	}
	if s.State().Phase != core.PhasePaused {
		t.Errorf("State().Phase = %v, expected Paused", s.State().Phase)
	}

	s.Tick(now.Add(time.Second), frame(core.ActionPause))
	if s.Paused() {
		t.Fatal("second Pause action should resume")
	}
	last := g.updates[len(g.updates)-1]
	if last > core.MaxFrameDelta {
		t.Errorf("dt after resume = %v, exceeds clamp", last)
	}
}

func TestShellPauseOnlyWhilePlaying(t *testing.T) {
	tests := []struct {
		name  string
		phase core.Phase
		pause bool
	}{
		{"begin", core.PhaseBegin, false},
		{"playing", core.PhasePlaying, true},
		{"game over", core.PhaseGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &countingGame{}
			s := newTestShell(g, Options{})
			now := time.Unix(0, 0)
			g.state = core.GameState{Phase: tc.phase}
			s.Tick(now, frame())

			if got := s.TogglePause(); got != tc.pause {
				t.Errorf("TogglePause() = %v, expected %v", got, tc.pause)
			}
			if s.Paused() != tc.pause {
				t.Errorf("Paused() = %v, expected %v", s.Paused(), tc.pause)
			}
			if !tc.pause && s.State().Phase != tc.phase {
				t.Errorf("State().Phase = %v, expected %v", s.State().Phase, tc.phase)
			}
		})
	}
}

func TestShellPauseMenu(t *testing.T) {
	g := &countingGame{}
	s := newTestShell(g, Options{})
	now := time.Unix(0, 0)

	s.Tick(now, frame(core.ActionPause))

	// Down once: Toggle Fullscreen
	s.Tick(now, frame(core.ActionDown))
	s.Tick(now, frame(core.ActionConfirm))
	if !s.Fullscreen() {
		t.Error("Toggle Fullscreen item should switch to fullscreen")
	}
	if !s.Paused() {
		t.Error("toggling fullscreen from the menu keeps the menu open")
	}

	// Down again: Back to Launcher
	s.Tick(now, frame(core.ActionDown))
	s.Tick(now, frame(core.ActionConfirm))
	if s.Running() {
		t.Fatal("Back to Launcher should stop the shell")
	}
	if s.Exit() != ExitLauncher {
		t.Errorf("Exit() = %v, expected launcher", s.Exit())
	}
}

func TestShellMenuWraps(t *testing.T) {
	var m PauseMenu
	m.Move(-1)
	if m.Selected() != ItemLauncher {
		t.Errorf("Move(-1) from top = %v, expected last item", m.Selected())
	}
	m.Move(1)
	if m.Selected() != ItemResume {
		t.Errorf("Move(1) from bottom = %v, expected first item", m.Selected())
	}
}

func TestShellQuit(t *testing.T) {
	g := &countingGame{}
	s := newTestShell(g, Options{})

	s.Tick(time.Unix(0, 0), frame(core.ActionQuit))
	if s.Running() || s.Exit() != ExitQuit {
		t.Errorf("Running() = %v, Exit() = %v after Quit", s.Running(), s.Exit())
	}
	if len(g.updates) != 0 {
		t.Error("no update should run on the quitting tick")
	}
}

func TestShellFullscreenKeepsLogicalSize(t *testing.T) {
	g := &countingGame{}
	s := newTestShell(g, Options{})
	w, h := g.cfg.ScreenW, g.cfg.ScreenH

	s.ToggleFullscreen()
	s.Resize(120, 50)
	surf := s.Render()

	if surf.Width() != 120 || surf.Height() != 50 {
		t.Errorf("surface = %dx%d, expected 120x50", surf.Width(), surf.Height())
	}
	if g.resets != 1 || g.cfg.ScreenW != w || g.cfg.ScreenH != h {
		t.Error("fullscreen and resize must not reset or rescale the game")
	}
	ox := (120 - w) / 2
	oy := (50 - h) / 2
	if surf.Get(ox, oy) != 'G' {
		t.Errorf("game not blitted at the centered origin (%d, %d)", ox, oy)
	}
}

func TestShellTranslatesPointer(t *testing.T) {
	g := &countingGame{}
	s := newTestShell(g, Options{Fullscreen: true, SurfaceW: 40, SurfaceH: 20})

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerClick, X: 5, Y: 6})
	s.Tick(time.Unix(0, 0), in)

	got := g.inputs[0].Pointer
	if len(got) != 1 || got[0].X != 5 || got[0].Y != 6 {
		t.Errorf("pointer = %+v, expected (5, 6) in fullscreen", got)
	}
}

func TestShellRecordsScoreOnce(t *testing.T) {
	g := &countingGame{}
	rec := &fakeRecorder{}
	audio := &fakeAudio{}
	s := newTestShell(g, Options{Recorder: rec, Audio: audio, Player: "ann"})
	now := time.Unix(0, 0)

	g.cues = []core.Cue{core.CueLose}
	g.state = core.GameState{Phase: core.PhaseGameOver, Score: 42}
	for i := 0; i < 5; i++ {
		s.Tick(now.Add(time.Duration(i)*time.Millisecond), frame())
	}

	if rec.calls != 1 || rec.score != 42 {
		t.Errorf("recorder calls = %d score = %d, expected one save of 42", rec.calls, rec.score)
	}
	if len(audio.played) != 5 {
		t.Errorf("played %d cues, expected 5", len(audio.played))
	}

	// A restarted run that ends again is saved again
	g.state = core.GameState{Phase: core.PhasePlaying}
	s.Tick(now.Add(time.Second), frame())
	g.state = core.GameState{Phase: core.PhaseGameOver, Score: 7}
	s.Tick(now.Add(2*time.Second), frame())
	if rec.calls != 2 {
		t.Errorf("recorder calls = %d, expected 2", rec.calls)
	}
}

func TestShellScoreSaveFailureIsNotFatal(t *testing.T) {
	g := &countingGame{}
	rec := &fakeRecorder{err: errors.New("disk full")}
	s := newTestShell(g, Options{Recorder: rec})

	g.state = core.GameState{Phase: core.PhaseGameOver, Score: 1}
	s.Tick(time.Unix(0, 0), frame())
	if !s.Running() {
		t.Error("a failed save must not stop the shell")
	}
}

func TestShellZeroScoreNotSaved(t *testing.T) {
	g := &countingGame{}
	rec := &fakeRecorder{}
	s := newTestShell(g, Options{Recorder: rec})

	g.state = core.GameState{Phase: core.PhaseGameOver}
	s.Tick(time.Unix(0, 0), frame())
	if rec.calls != 0 {
		t.Errorf("recorder called %d times for a zero score", rec.calls)
	}
}
