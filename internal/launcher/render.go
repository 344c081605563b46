package launcher

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/gamecenter/internal/core"
)

const headline = "G A M E   C E N T E R"

// Render draws the grid into dst, which should match the size passed to
// Resize.
func (g *Grid) Render(dst *core.Screen) {
	dst.DrawTextCenteredColor(1, headline, core.ColorBrightMagenta)
	dst.DrawTextCenteredColor(2, "choose a game", core.ColorGray)

	if len(g.tiles) == 0 {
		dst.DrawTextCenteredColor(g.layout.Top+1, "No games registered", core.ColorBrightRed)
		return
	}

	for i, t := range g.tiles {
		r, visible := g.TileRect(i)
		if !visible {
			continue
		}
		g.renderTile(dst, r, t, i)
	}

	if g.scroll > 0 {
		dst.DrawTextCenteredColor(g.layout.Top-1, "▲", core.ColorGray)
	}
	if g.scroll < g.maxScroll() {
		_, oy := g.origin()
		y := oy + g.visibleRows()*(g.layout.TileH+g.layout.GapY) - g.layout.GapY
		dst.DrawTextCenteredColor(y, "▼", core.ColorGray)
	}
}

func (g *Grid) renderTile(dst *core.Screen, r core.Rect, t Tile, i int) {
	border := core.ColorGray
	titleColor := core.ColorWhite
	switch {
	case i == g.selected:
		border = core.ColorBrightCyan
		titleColor = core.ColorBrightWhite
	case i == g.hover:
		border = core.ColorBrightYellow
	}
	dst.DrawBoxColor(r, border)

	title := t.Title
	if i == g.selected {
		title = "▶ " + title
	}
	drawCentered(dst, r, r.Y+r.H/2-1+boolInt(r.H <= 3), title, titleColor)

	if r.H < 4 {
		return
	}
	sub := ""
	switch {
	case t.External:
		sub = "external"
	case t.Best > 0:
		sub = fmt.Sprintf("best %d", t.Best)
	}
	if sub != "" {
		drawCentered(dst, r, r.Y+r.H/2+1, sub, core.ColorGray)
	}
}

func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	inner := r.W - 2
	runes := []rune(text)
	if len(runes) > inner {
		runes = runes[:core.Max(inner, 0)]
	}
	x := r.X + 1 + (inner-utf8.RuneCountInString(string(runes)))/2
	dst.DrawTextColor(x, y, string(runes), c)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
