package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/games/pacman"
	"github.com/vovakirdan/gamecenter/internal/registry"
	"github.com/vovakirdan/gamecenter/internal/shell"
	"github.com/vovakirdan/gamecenter/internal/storage"
)

type mode int

const (
	modeLauncher mode = iota
	modeGame
	modeScoreboard
	modeExternal
)

// SessionOptions configures a session.
type SessionOptions struct {
	Settings      *config.Settings
	Store         *storage.Store // nil disables scores and launch history
	Audio         shell.CuePlayer
	Music         MusicPlayer // Plays while the launcher is open; may be nil
	Logger        *log.Logger
	Player        string
	Width, Height int
	Seed          int64  // Fixed seed for every launch; 0 seeds from the clock
	StartGame     string // Play this game directly and quit when it ends
	AllowExternal bool   // External games need the local terminal
	ScreenshotDir string
}

// MusicPlayer loops background music.
type MusicPlayer interface {
	Loop(ctx context.Context)
	StopLoop()
}

// externalExitMsg reports that an external game process has finished.
type externalExitMsg struct {
	id  string
	err error
}

// externalCommand builds the process for an external game.
var externalCommand = func(id string, s *config.Settings) (*exec.Cmd, error) {
	if id == pacman.ID {
		return pacman.Command(s.Pacman)
	}
	return nil, fmt.Errorf("no launcher for external game %q", id)
}

// ErrUnknownGame is returned when a session is asked to start a game that
// is not registered.
var ErrUnknownGame = errors.New("unknown game")

// SessionModel is one player's stay in the game center: the launcher, the
// game it started and the scoreboard.
type SessionModel struct {
	opts       SessionOptions
	logger     *log.Logger
	keys       *KeyMapper
	mode       mode
	launcher   *LauncherModel
	scoreboard ScoreboardModel
	shell      *shell.Shell
	input      core.InputFrame
	width      int
	height     int
}

// NewSessionModel creates a session. With StartGame set the game is
// started immediately.
func NewSessionModel(opts SessionOptions) (*SessionModel, error) {
	if opts.Settings == nil {
		opts.Settings = config.Default()
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &SessionModel{
		opts:   opts,
		logger: logger.With("player", opts.Player),
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		width:  opts.Width,
		height: opts.Height,
	}
	m.launcher = NewLauncherModel(opts.Settings.Launcher, m.highScores(), m.width, m.height)
	m.scoreboard = NewScoreboardModel(opts.Store, m.width, m.height)

	if opts.StartGame != "" {
		e, ok := registry.Lookup(opts.StartGame)
		if !ok || e.External {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGame, opts.StartGame)
		}
		if err := m.startGame(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m *SessionModel) Init() tea.Cmd {
	if m.mode == modeLauncher {
		m.startMusic()
	}
	return tickCmd(m.opts.Settings.Shell.FPS)
}

// Update handles messages for the active screen.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg); ok && m.mode != modeScoreboard {
			m.input.AddPointer(ev)
		}
		return m, nil

	case TickMsg:
		return m, m.tick(time.Time(msg))

	case externalExitMsg:
		m.enterLauncher()
		if msg.err != nil {
			m.logger.Warn("external game failed", "game", msg.id, "error", msg.err)
			m.launcher.SetStatus(fmt.Sprintf("%s exited: %v", msg.id, msg.err))
		} else {
			m.logger.Info("external game finished", "game", msg.id)
		}
		return m, nil
	}
	return m, nil
}

func (m *SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "ctrl+s":
		m.screenshot()
		return m, nil
	}

	switch m.mode {
	case modeScoreboard:
		updated, cmd := m.scoreboard.Update(msg)
		m.scoreboard = updated.(ScoreboardModel)
		switch {
		case m.scoreboard.IsQuitting():
			return m, m.quit()
		case m.scoreboard.IsGoingBack():
			m.mode = modeLauncher
		}
		return m, cmd

	case modeLauncher:
		switch {
		case key.Matches(msg, m.launcher.keys.Scores):
			m.scoreboard.Reload()
			m.mode = modeScoreboard
			return m, nil
		case key.Matches(msg, m.launcher.keys.Help):
			m.launcher.ToggleHelp()
			return m, nil
		case msg.Type == tea.KeyEsc:
			// Esc pauses a game but leaves the launcher.
			m.input.Set(core.ActionQuit)
			return m, nil
		}

	case modeExternal:
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

func (m *SessionModel) tick(now time.Time) tea.Cmd {
	next := tickCmd(m.opts.Settings.Shell.FPS)
	defer m.input.Clear()

	switch m.mode {
	case modeGame:
		m.shell.Tick(now, m.input)
		if !m.shell.Running() && m.endGame() {
			return m.quit()
		}

	case modeLauncher:
		res := m.launcher.HandleInput(m.input)
		if res.Exit {
			return m.quit()
		}
		if res.Launch != "" {
			return tea.Batch(next, m.launch(res.Launch))
		}
	}
	return next
}

func (m *SessionModel) launch(id string) tea.Cmd {
	e, ok := registry.Lookup(id)
	if !ok {
		m.launcher.SetStatus("unknown game " + id)
		return nil
	}
	if e.External {
		return m.launchExternal(e)
	}
	if err := m.startGame(e); err != nil {
		m.logger.Error("could not start game", "game", id, "error", err)
		m.launcher.SetStatus(err.Error())
	}
	return nil
}

func (m *SessionModel) startGame(e registry.Entry) error {
	game, err := registry.Create(e.ID, m.opts.Settings)
	if err != nil {
		return err
	}

	opts := shell.Options{
		SurfaceW:      m.width,
		SurfaceH:      m.height,
		WindowScale:   m.opts.Settings.Shell.WindowScale,
		Fullscreen:    m.opts.Settings.Shell.Fullscreen,
		TickRate:      m.opts.Settings.Shell.FPS,
		Seed:          m.seed(),
		MaxFrameDelta: m.opts.Settings.Shell.MaxFrameDelta,
		Player:        m.opts.Player,
		Audio:         m.opts.Audio,
		Logger:        m.logger,
	}
	if m.opts.Store != nil {
		opts.Recorder = m.opts.Store
	}
	m.stopMusic()
	m.shell = shell.New(game, opts)
	m.mode = modeGame
	m.recordLaunch(e.ID)
	m.logger.Info("game launched", "game", e.ID)
	return nil
}

func (m *SessionModel) launchExternal(e registry.Entry) tea.Cmd {
	if !m.opts.AllowExternal {
		m.logger.Info("external game unavailable in this session", "game", e.ID)
		m.launcher.SetStatus(e.Title + " needs a local terminal and is not available here")
		return nil
	}
	cmd, err := externalCommand(e.ID, m.opts.Settings)
	if err != nil {
		m.logger.Warn("cannot launch external game", "game", e.ID, "error", err)
		m.launcher.SetStatus(err.Error())
		return nil
	}

	m.recordLaunch(e.ID)
	m.stopMusic()
	m.mode = modeExternal
	m.logger.Info("launching external game", "game", e.ID, "path", cmd.Path)
	id := e.ID
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalExitMsg{id: id, err: err}
	})
}

// endGame returns to the launcher and reports whether the program should
// quit instead.
func (m *SessionModel) endGame() bool {
	state := m.shell.State()
	m.logger.Info("game ended",
		"game", m.shell.Game().ID(),
		"score", state.Score,
		"reason", m.shell.Exit(),
	)
	m.shell = nil
	if m.opts.StartGame != "" {
		m.mode = modeLauncher
		return true
	}
	m.enterLauncher()
	m.launcher.RefreshBest(m.highScores())
	return false
}

func (m *SessionModel) enterLauncher() {
	m.mode = modeLauncher
	m.startMusic()
}

func (m *SessionModel) startMusic() {
	if m.opts.Music != nil {
		m.opts.Music.Loop(context.Background())
	}
}

func (m *SessionModel) stopMusic() {
	if m.opts.Music != nil {
		m.opts.Music.StopLoop()
	}
}

// quit stops the music and ends the program.
func (m *SessionModel) quit() tea.Cmd {
	m.stopMusic()
	return tea.Quit
}

func (m *SessionModel) seed() int64 {
	if m.opts.Seed != 0 {
		return m.opts.Seed
	}
	return time.Now().UnixNano()
}

func (m *SessionModel) recordLaunch(id string) {
	if m.opts.Store == nil {
		return
	}
	if err := m.opts.Store.RecordLaunch(id, m.opts.Player); err != nil {
		m.logger.Warn("could not record launch", "game", id, "error", err)
	}
}

func (m *SessionModel) highScores() map[string]int {
	if m.opts.Store == nil {
		return map[string]int{}
	}
	best, err := m.opts.Store.HighScores()
	if err != nil {
		m.logger.Warn("could not read high scores", "error", err)
		return map[string]int{}
	}
	return best
}

func (m *SessionModel) resize(w, h int) {
	m.width, m.height = w, h
	m.launcher.Resize(w, h)
	if m.shell != nil {
		m.shell.Resize(w, h)
	}
	updated, _ := m.scoreboard.Update(tea.WindowSizeMsg{Width: w, Height: h})
	m.scoreboard = updated.(ScoreboardModel)
}

func (m *SessionModel) screenshot() {
	var (
		screen *core.Screen
		name   = "launcher"
	)
	switch m.mode {
	case modeGame:
		screen = m.shell.Render()
		name = m.shell.Game().ID()
	case modeLauncher:
		screen = m.launcher.Screen()
	default:
		return
	}
	path, err := saveScreenshot(m.opts.ScreenshotDir, name, screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	if m.mode == modeLauncher {
		m.launcher.SetStatus("saved " + path)
	}
}

// View renders the active screen.
func (m *SessionModel) View() string {
	switch m.mode {
	case modeGame:
		return RenderScreen(m.shell.Render())
	case modeScoreboard:
		return m.scoreboard.View()
	case modeExternal:
		return ""
	default:
		return m.launcher.View()
	}
}

// Run starts a local session on the current terminal.
func Run(opts SessionOptions) error {
	m, err := NewSessionModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
