// Package launcher implements the game selection grid: keyboard and pointer
// navigation, scrolling and tile layout. It draws into a core.Screen and
// knows nothing about the terminal.
package launcher

import (
	"github.com/vovakirdan/gamecenter/internal/core"
)

// Tile is one launchable game.
type Tile struct {
	ID       string
	Title    string
	External bool
	Best     int // Best stored score, 0 if none
}

// Layout describes tile geometry in screen cells.
type Layout struct {
	TileW, TileH int
	GapX, GapY   int
	Top          int // Rows reserved above the grid for the header
	Bottom       int // Rows reserved below the grid
}

// DefaultLayout returns the standard tile geometry.
func DefaultLayout(tileW, tileH int) Layout {
	return Layout{TileW: tileW, TileH: tileH, GapX: 2, GapY: 1, Top: 4, Bottom: 2}
}

// Result is what a tick of input asks the caller to do.
type Result struct {
	Launch string // Game ID to launch, empty if none
	Exit   bool   // Leave the launcher
}

// Grid is the row-major selection grid.
type Grid struct {
	tiles    []Tile
	cols     int
	layout   Layout
	selected int
	hover    int
	scroll   int // First visible row
	width    int
	height   int
}

// New creates a grid over tiles with the given number of columns.
func New(tiles []Tile, cols int, layout Layout) *Grid {
	if cols <= 0 {
		cols = 3
	}
	return &Grid{
		tiles:  tiles,
		cols:   cols,
		layout: layout,
		hover:  -1,
		width:  80,
		height: 24,
	}
}

// Tiles returns the tiles in grid order.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// SetBest updates the best score shown on a tile.
func (g *Grid) SetBest(id string, best int) {
	for i := range g.tiles {
		if g.tiles[i].ID == id {
			g.tiles[i].Best = best
		}
	}
}

// Selected returns the selected index.
func (g *Grid) Selected() int {
	return g.selected
}

// SelectedTile returns the selected tile.
func (g *Grid) SelectedTile() (Tile, bool) {
	if len(g.tiles) == 0 {
		return Tile{}, false
	}
	return g.tiles[g.selected], true
}

// Hover returns the tile under the pointer, or -1.
func (g *Grid) Hover() int {
	return g.hover
}

// Scroll returns the first visible row.
func (g *Grid) Scroll() int {
	return g.scroll
}

// Resize sets the screen area the grid is laid out in.
func (g *Grid) Resize(w, h int) {
	g.width, g.height = w, h
	g.clampScroll()
	g.ensureVisible()
}

func (g *Grid) rows() int {
	return (len(g.tiles) + g.cols - 1) / g.cols
}

// visibleRows returns how many tile rows fit on screen, at least one.
func (g *Grid) visibleRows() int {
	avail := g.height - g.layout.Top - g.layout.Bottom
	n := (avail + g.layout.GapY) / (g.layout.TileH + g.layout.GapY)
	return core.Max(n, 1)
}

func (g *Grid) maxScroll() int {
	return core.Max(g.rows()-g.visibleRows(), 0)
}

func (g *Grid) clampScroll() {
	g.scroll = core.Clamp(g.scroll, 0, g.maxScroll())
}

// ensureVisible scrolls so the selected tile's row is on screen.
func (g *Grid) ensureVisible() {
	row := g.selected / g.cols
	if row < g.scroll {
		g.scroll = row
	}
	if row >= g.scroll+g.visibleRows() {
		g.scroll = row - g.visibleRows() + 1
	}
	g.clampScroll()
}

// Move shifts the selection by delta indices, clamped to valid tiles.
func (g *Grid) Move(delta int) {
	if len(g.tiles) == 0 {
		return
	}
	g.selected = core.Clamp(g.selected+delta, 0, len(g.tiles)-1)
	g.ensureVisible()
}

// MoveRow moves the selection up or down by rows, staying in the same
// column. A move that would leave the grid is ignored.
func (g *Grid) MoveRow(rows int) {
	next := g.selected + rows*g.cols
	if next < 0 || next >= len(g.tiles) {
		return
	}
	g.selected = next
	g.ensureVisible()
}

// ScrollBy scrolls the view by rows, clamped.
func (g *Grid) ScrollBy(rows int) {
	g.scroll += rows
	g.clampScroll()
}

// origin returns the top-left cell of the grid so that it is centered.
func (g *Grid) origin() (int, int) {
	cols := core.Min(g.cols, core.Max(len(g.tiles), 1))
	gridW := cols*g.layout.TileW + (cols-1)*g.layout.GapX
	return core.Max((g.width-gridW)/2, 0), g.layout.Top
}

// TileRect returns the on-screen rectangle of tile i, and whether it is
// inside the visible rows.
func (g *Grid) TileRect(i int) (core.Rect, bool) {
	row, col := i/g.cols, i%g.cols
	ox, oy := g.origin()
	vr := row - g.scroll
	r := core.NewRect(
		ox+col*(g.layout.TileW+g.layout.GapX),
		oy+vr*(g.layout.TileH+g.layout.GapY),
		g.layout.TileW,
		g.layout.TileH,
	)
	return r, vr >= 0 && vr < g.visibleRows()
}

// HitTest returns the visible tile at (x, y), or -1.
func (g *Grid) HitTest(x, y int) int {
	for i := range g.tiles {
		r, visible := g.TileRect(i)
		if visible && r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HandleInput applies one tick of input.
func (g *Grid) HandleInput(in core.InputFrame) Result {
	if in.Has(core.ActionQuit) {
		return Result{Exit: true}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.Move(-1)
	case in.Has(core.ActionRight):
		g.Move(1)
	case in.Has(core.ActionUp):
		g.MoveRow(-1)
	case in.Has(core.ActionDown):
		g.MoveRow(1)
	}

	var res Result
	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerMove:
			g.hover = g.HitTest(ev.X, ev.Y)
		case core.PointerWheelUp:
			g.ScrollBy(-1)
		case core.PointerWheelDown:
			g.ScrollBy(1)
		case core.PointerClick:
			if i := g.HitTest(ev.X, ev.Y); i >= 0 {
				g.selected = i
				res.Launch = g.tiles[i].ID
			}
		}
	}

	if in.Has(core.ActionConfirm) && res.Launch == "" {
		if t, ok := g.SelectedTile(); ok {
			res.Launch = t.ID
		}
	}
	return res
}
