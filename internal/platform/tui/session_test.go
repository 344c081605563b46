package tui

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamecenter/internal/config"
	_ "github.com/vovakirdan/gamecenter/internal/games/memory"
)

func newTestSession(t *testing.T, opts SessionOptions) *SessionModel {
	t.Helper()
	opts.Settings = config.Default()
	opts.Width, opts.Height = 80, 24
	opts.Seed = 1
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	m, err := NewSessionModel(opts)
	if err != nil {
		t.Fatalf("NewSessionModel() error = %v", err)
	}
	return m
}

func press(m *SessionModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func tick(m *SessionModel) tea.Cmd {
	_, cmd := m.Update(TickMsg(time.Now()))
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// Tiles in slot order: pacman, memory.
func selectMemory(m *SessionModel) {
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	tick(m)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)
}

func TestLaunchAndReturn(t *testing.T) {
	m := newTestSession(t, SessionOptions{})
	if m.mode != modeLauncher {
		t.Fatalf("mode = %v, expected launcher", m.mode)
	}

	selectMemory(m)
	if m.mode != modeGame || m.shell == nil {
		t.Fatalf("mode = %v, expected a running game", m.mode)
	}
	if m.shell.Game().ID() != "memory" {
		t.Errorf("game = %q, expected memory", m.shell.Game().ID())
	}
	if m.View() == "" {
		t.Error("View() is empty during a game")
	}

	press(m, runeKey('q'))
	if cmd := tick(m); isQuit(cmd) {
		t.Error("leaving a game must not quit the session")
	}
	if m.mode != modeLauncher || m.shell != nil {
		t.Errorf("mode = %v, expected launcher after quitting the game", m.mode)
	}
}

func TestQuitFromLauncher(t *testing.T) {
	m := newTestSession(t, SessionOptions{})
	press(m, runeKey('q'))
	if !isQuit(tick(m)) {
		t.Error("q in the launcher should quit")
	}

	m = newTestSession(t, SessionOptions{})
	if !isQuit(press(m, tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Error("ctrl+c should quit")
	}
}

func TestLauncherExitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		quit bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"q", runeKey('q'), true},
		{"p", runeKey('p'), false},
		{"b", runeKey('b'), false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestSession(t, SessionOptions{})
			press(m, tc.msg)
			if got := isQuit(tick(m)); got != tc.quit {
				t.Errorf("quit = %v, expected %v", got, tc.quit)
			}
		})
	}
}

type fakeMusic struct {
	playing bool
	starts  int
}

func (f *fakeMusic) Loop(context.Context) {
	if !f.playing {
		f.starts++
	}
	f.playing = true
}

func (f *fakeMusic) StopLoop() { f.playing = false }

func TestMusicPlaysInLauncher(t *testing.T) {
	music := &fakeMusic{}
	m := newTestSession(t, SessionOptions{Music: music})
	m.Init()
	if !music.playing {
		t.Fatal("music should play in the launcher")
	}

	selectMemory(m)
	if music.playing {
		t.Error("music should stop when a game starts")
	}

	press(m, runeKey('q'))
	tick(m)
	if !music.playing || music.starts != 2 {
		t.Errorf("playing = %v starts = %d, expected music to resume in the launcher", music.playing, music.starts)
	}

	press(m, runeKey('q'))
	if !isQuit(tick(m)) {
		t.Fatal("q in the launcher should quit")
	}
	if music.playing {
		t.Error("music should stop on quit")
	}
}

func TestMusicSilentForDirectGame(t *testing.T) {
	music := &fakeMusic{}
	m := newTestSession(t, SessionOptions{StartGame: "memory", Music: music})
	m.Init()
	press(m, runeKey('q'))
	tick(m)
	if music.starts != 0 {
		t.Errorf("music started %d times, expected none for a directly started game", music.starts)
	}
}

func TestExternalGameDisabled(t *testing.T) {
	m := newTestSession(t, SessionOptions{AllowExternal: false})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)

	if m.mode != modeLauncher {
		t.Errorf("mode = %v, expected launcher", m.mode)
	}
	if m.launcher.Status() == "" {
		t.Error("status should explain why the game did not start")
	}
}

func TestExternalGameRuns(t *testing.T) {
	orig := externalCommand
	externalCommand = func(id string, _ *config.Settings) (*exec.Cmd, error) {
		return exec.Command("true"), nil
	}
	t.Cleanup(func() { externalCommand = orig })

	m := newTestSession(t, SessionOptions{AllowExternal: true})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := tick(m); cmd == nil {
		t.Fatal("tick() returned no command")
	}
	if m.mode != modeExternal {
		t.Fatalf("mode = %v, expected external", m.mode)
	}

	m.Update(externalExitMsg{id: "pacman", err: errors.New("exit status 1")})
	if m.mode != modeLauncher {
		t.Errorf("mode = %v, expected launcher", m.mode)
	}
	if m.launcher.Status() == "" {
		t.Error("a failed external game should leave a status message")
	}
}

func TestStartGameQuitsWhenDone(t *testing.T) {
	m := newTestSession(t, SessionOptions{StartGame: "memory"})
	if m.mode != modeGame {
		t.Fatalf("mode = %v, expected game", m.mode)
	}
	press(m, runeKey('q'))
	if !isQuit(tick(m)) {
		t.Error("a directly started game should quit the program when it ends")
	}
}

func TestStartGameUnknown(t *testing.T) {
	for _, id := range []string{"nope", "pacman"} {
		_, err := NewSessionModel(SessionOptions{StartGame: id})
		if !errors.Is(err, ErrUnknownGame) {
			t.Errorf("NewSessionModel(%q) error = %v, expected ErrUnknownGame", id, err)
		}
	}
}

func TestScoreboardToggle(t *testing.T) {
	m := newTestSession(t, SessionOptions{})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeScoreboard {
		t.Fatalf("mode = %v, expected scoreboard", m.mode)
	}
	if m.View() == "" {
		t.Error("scoreboard View() is empty")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeLauncher {
		t.Errorf("mode = %v, expected launcher after esc", m.mode)
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestSession(t, SessionOptions{ScreenshotDir: dir})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshots = %d, expected 1", len(files))
	}
	data, err := os.ReadFile(dir + "/" + files[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("screenshot is empty")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestSession(t, SessionOptions{})
	selectMemory(m)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.mode != modeGame {
		t.Fatal("resize must not end the game")
	}
	if got := m.shell.Surface().Width(); got != 120 {
		t.Errorf("surface width = %d, expected 120", got)
	}
}
