package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamecenter/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to input frames.
// Bindings are shared by the launcher and every game.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action for a key, or ActionNone. Digit keys return
// ActionNone and the digit; digit is -1 otherwise.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, digit int) {
	k := msg.String()
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return core.ActionNone, int(k[0] - '0')
	}

	switch k {
	case "up", "w", "k":
		return core.ActionUp, -1
	case "down", "s", "j":
		return core.ActionDown, -1
	case "left", "a", "h":
		return core.ActionLeft, -1
	case "right", "d", "l":
		return core.ActionRight, -1
	case " ", "space", "enter":
		return core.ActionConfirm, -1
	case "esc", "p":
		return core.ActionPause, -1
	case "f11", "f":
		return core.ActionFullscreen, -1
	case "r":
		return core.ActionRestart, -1
	case "backspace", "b":
		return core.ActionBack, -1
	case "q":
		return core.ActionQuit, -1
	}
	return core.ActionNone, -1
}

// MapKeyToFrame records a key in frame. It reports whether the key was
// recognised.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, digit := km.MapKey(msg)
	switch {
	case digit >= 0:
		frame.AddDigit(digit)
	case action != core.ActionNone:
		frame.Set(action)
	default:
		return false
	}
	return true
}

// MapMouse converts a mouse message to a pointer event in terminal cells.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Kind = core.PointerWheelUp
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Kind = core.PointerWheelDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev.Kind = core.PointerClick
	case msg.Action == tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	default:
		return core.PointerEvent{}, false
	}
	return ev, true
}

// LauncherKeyMap lists the launcher bindings for the help line.
type LauncherKeyMap struct {
	Move   key.Binding
	Launch key.Binding
	Scores key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Launch, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Launch},
		{k.Scores, k.Help, k.Quit},
	}
}

// DefaultLauncherKeyMap returns the launcher bindings.
func DefaultLauncherKeyMap() LauncherKeyMap {
	return LauncherKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d", "h", "j", "k", "l"),
			key.WithHelp("←↑↓→", "move"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
