package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/launcher"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LauncherModel is the game grid plus a help line. It is driven by the
// session, which feeds it one input frame per tick.
type LauncherModel struct {
	grid   *launcher.Grid
	screen *core.Screen
	help   help.Model
	keys   LauncherKeyMap
	status string
	width  int
	height int
}

// NewLauncherModel builds the grid from the registry. best maps game IDs
// to stored high scores.
func NewLauncherModel(cfg config.LauncherConfig, best map[string]int, width, height int) *LauncherModel {
	entries := registry.List()
	tiles := make([]launcher.Tile, 0, len(entries))
	for _, e := range entries {
		tiles = append(tiles, launcher.Tile{
			ID:       e.ID,
			Title:    e.Title,
			External: e.External,
			Best:     best[e.ID],
		})
	}

	m := &LauncherModel{
		grid: launcher.New(tiles, cfg.Columns, launcher.DefaultLayout(cfg.TileWidth, cfg.TileHeight)),
		help: help.New(),
		keys: DefaultLauncherKeyMap(),
	}
	m.Resize(width, height)
	return m
}

// Resize fits the grid to the terminal; the bottom rows hold help and
// status lines.
func (m *LauncherModel) Resize(width, height int) {
	m.width, m.height = width, height
	gridH := core.Max(height-m.footerHeight(), 1)
	m.grid.Resize(width, gridH)
	m.screen = core.NewScreen(core.Max(width, 1), gridH)
	m.help.Width = width
}

func (m *LauncherModel) footerHeight() int {
	if m.help.ShowAll {
		return 3
	}
	return 2
}

// ToggleHelp switches between the short and full help line.
func (m *LauncherModel) ToggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
	m.Resize(m.width, m.height)
}

// SetStatus shows a one-line message under the grid until the next launch.
func (m *LauncherModel) SetStatus(s string) {
	m.status = s
}

// Status returns the current status line.
func (m *LauncherModel) Status() string {
	return m.status
}

// RefreshBest updates the score shown on each tile.
func (m *LauncherModel) RefreshBest(best map[string]int) {
	for _, t := range m.grid.Tiles() {
		m.grid.SetBest(t.ID, best[t.ID])
	}
}

// HandleInput forwards a frame to the grid.
func (m *LauncherModel) HandleInput(in core.InputFrame) launcher.Result {
	res := m.grid.HandleInput(in)
	if res.Launch != "" {
		m.status = ""
	}
	return res
}

// Screen renders the grid into its buffer and returns it.
func (m *LauncherModel) Screen() *core.Screen {
	m.screen.Clear()
	m.grid.Render(m.screen)
	return m.screen
}

// View renders the grid with its footer.
func (m *LauncherModel) View() string {
	var b strings.Builder
	b.WriteString(RenderScreen(m.Screen()))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(m.status))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
