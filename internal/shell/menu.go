package shell

import (
	"github.com/vovakirdan/gamecenter/internal/core"
)

// MenuItem is an entry of the pause menu.
type MenuItem int

const (
	ItemResume MenuItem = iota
	ItemFullscreen
	ItemLauncher
)

var pauseItems = []struct {
	item  MenuItem
	label string
}{
	{ItemResume, "Resume"},
	{ItemFullscreen, "Toggle Fullscreen"},
	{ItemLauncher, "Back to Launcher"},
}

// PauseMenu is the overlay shown while the shell is paused.
type PauseMenu struct {
	selected int
}

// Selected returns the highlighted item.
func (m *PauseMenu) Selected() MenuItem {
	return pauseItems[m.selected].item
}

// Reset highlights the first item.
func (m *PauseMenu) Reset() {
	m.selected = 0
}

// Move shifts the highlight by delta, wrapping around.
func (m *PauseMenu) Move(delta int) {
	n := len(pauseItems)
	m.selected = ((m.selected+delta)%n + n) % n
}

// Select highlights the item at a 0-based row, if valid.
func (m *PauseMenu) Select(row int) bool {
	if row < 0 || row >= len(pauseItems) {
		return false
	}
	m.selected = row
	return true
}

// menuBox returns the overlay rectangle centered in area.
func menuBox(area core.Rect) core.Rect {
	w := 26
	h := len(pauseItems) + 4
	return core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)
}

// render draws the menu centered over area.
func (m *PauseMenu) render(dst *core.Screen, area core.Rect) {
	box := menuBox(area)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextColor(box.X+(box.W-6)/2, box.Y+1, "PAUSED", core.ColorBrightYellow)

	for i, it := range pauseItems {
		y := box.Y + 3 + i
		label := "  " + it.label
		color := core.ColorWhite
		if i == m.selected {
			label = "> " + it.label
			color = core.ColorBrightCyan
		}
		dst.DrawTextColor(box.X+2, y, label, color)
	}
}

// itemAt maps a surface position to a menu row, or -1.
func itemAt(area core.Rect, x, y int) int {
	box := menuBox(area)
	row := y - (box.Y + 3)
	if x <= box.X || x >= box.Right()-1 || row < 0 || row >= len(pauseItems) {
		return -1
	}
	return row
}
