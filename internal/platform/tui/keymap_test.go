package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamecenter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		want  core.Action
		digit int
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, -1},
		{"w", runeKey('w'), core.ActionUp, -1},
		{"j", runeKey('j'), core.ActionDown, -1},
		{"a", runeKey('a'), core.ActionLeft, -1},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, -1},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, -1},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, -1},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, -1},
		{"p", runeKey('p'), core.ActionPause, -1},
		{"f11", tea.KeyMsg{Type: tea.KeyF11}, core.ActionFullscreen, -1},
		{"r", runeKey('r'), core.ActionRestart, -1},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBack, -1},
		{"q", runeKey('q'), core.ActionQuit, -1},
		{"digit", runeKey('7'), core.ActionNone, 7},
		{"zero", runeKey('0'), core.ActionNone, 0},
		{"unbound", runeKey('z'), core.ActionNone, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, digit := km.MapKey(tc.msg)
			if got != tc.want || digit != tc.digit {
				t.Errorf("MapKey(%q) = %v, %d, expected %v, %d", tc.msg.String(), got, digit, tc.want, tc.digit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('d'), &frame)
	km.MapKeyToFrame(runeKey('5'), &frame)
	if ok := km.MapKeyToFrame(runeKey('z'), &frame); ok {
		t.Error("MapKeyToFrame() = true for an unbound key")
	}

	if !frame.Has(core.ActionRight) {
		t.Error("frame should contain Right")
	}
	if len(frame.Digits) != 1 || frame.Digits[0] != 5 {
		t.Errorf("Digits = %v, expected [5]", frame.Digits)
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"click", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerClick, true},
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.PointerWheelUp, true},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, core.PointerWheelDown, true},
		{"motion", tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.PointerMove, true},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, 0, false},
		{"right click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && ev.Kind != tc.kind {
				t.Errorf("MapMouse() kind = %v, expected %v", ev.Kind, tc.kind)
			}
			if ok && (ev.X != tc.msg.X || ev.Y != tc.msg.Y) {
				t.Errorf("MapMouse() at %d,%d, expected %d,%d", ev.X, ev.Y, tc.msg.X, tc.msg.Y)
			}
		})
	}
}
