// Package tictactoe implements hot-seat Tic-Tac-Toe on an N x N board with a
// configurable winning run length.
package tictactoe

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

func init() {
	registry.Register("tictactoe", "Tic-Tac-Toe", 3, func(s *config.Settings) registry.Game {
		return New(s.TicTacToe)
	})
}

// Game implements registry.Game.
type Game struct {
	cfg     config.TicTacToeConfig
	runtime core.RuntimeConfig
	phase   core.PhaseMachine
	board   *Board
	size    int
	cursor  Pos
	cues    []core.Cue
}

// New creates a new Tic-Tac-Toe game.
func New(cfg config.TicTacToeConfig) *Game {
	return &Game{cfg: cfg, size: cfg.Size}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tictactoe" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tic-Tac-Toe" }

// Reset starts a fresh board of the configured size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.size = g.cfg.Size
	g.newBoard()
	g.phase.Reset(core.PhasePlaying)
}

func (g *Game) newBoard() {
	g.board = NewBoard(g.size, g.cfg.WinLength)
	g.cursor = Pos{Row: g.size / 2, Col: g.size / 2}
}

// Board exposes the board for inspection.
func (g *Game) Board() *Board { return g.board }

// HandleInput moves the cursor, places marks, restarts and resizes.
func (g *Game) HandleInput(in core.InputFrame) {
	for _, d := range in.Digits {
		if d >= g.cfg.MinSize && d <= g.cfg.MaxSize {
			g.size = d
			g.restart()
		}
	}
	if in.Has(core.ActionRestart) {
		g.restart()
		return
	}

	n := g.board.Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = (g.cursor.Row - 1 + n) % n
	case in.Has(core.ActionDown):
		g.cursor.Row = (g.cursor.Row + 1) % n
	case in.Has(core.ActionLeft):
		g.cursor.Col = (g.cursor.Col - 1 + n) % n
	case in.Has(core.ActionRight):
		g.cursor.Col = (g.cursor.Col + 1) % n
	}

	if in.Has(core.ActionConfirm) {
		g.place(g.cursor)
	}
	for _, ev := range in.Pointer {
		p, ok := g.cellAt(ev.X, ev.Y)
		if !ok {
			continue
		}
		g.cursor = p
		if ev.Kind == core.PointerClick {
			g.place(p)
		}
	}
}

// restart clears the board. From GameOver it is the only way back to
// Playing.
func (g *Game) restart() {
	g.phase.Restart()
	g.newBoard()
}

// place attempts a move; invalid moves are ignored.
func (g *Game) place(p Pos) {
	if !g.phase.Is(core.PhasePlaying) {
		return
	}
	if err := g.board.Place(p.Row, p.Col); err != nil {
		return
	}
	g.cues = append(g.cues, core.CueFlip)
	if g.board.Finished() {
		g.phase.End()
		if w, _ := g.board.Winner(); w != Empty {
			g.cues = append(g.cues, core.CueWin)
		}
	}
}

// Update has no continuous simulation; it reports state and queued cues.
func (g *Game) Update(dt time.Duration) core.StepResult {
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state. Tic-Tac-Toe keeps no score.
func (g *Game) State() core.GameState {
	w, _ := g.board.Winner()
	return core.GameState{Phase: g.phase.Phase(), Won: w != Empty}
}

// geometry returns the board origin and per-cell inner size.
func (g *Game) geometry() (ox, oy, cw, ch int) {
	n := g.board.Size()
	cw = core.Clamp((g.runtime.ScreenW-1)/n-1, 3, 7)
	ch = core.Clamp((g.runtime.ScreenH-5)/n-1, 1, 3)
	bw := n*(cw+1) + 1
	bh := n*(ch+1) + 1
	ox = (g.runtime.ScreenW - bw) / 2
	oy = core.Max((g.runtime.ScreenH-bh)/2, 2)
	return ox, oy, cw, ch
}

// cellAt maps a logical screen position to a board cell.
func (g *Game) cellAt(x, y int) (Pos, bool) {
	ox, oy, cw, ch := g.geometry()
	dx, dy := x-ox-1, y-oy-1
	if dx < 0 || dy < 0 {
		return Pos{}, false
	}
	col, row := dx/(cw+1), dy/(ch+1)
	if dx%(cw+1) == cw || dy%(ch+1) == ch {
		return Pos{}, false // on a grid line
	}
	n := g.board.Size()
	if row >= n || col >= n {
		return Pos{}, false
	}
	return Pos{Row: row, Col: col}, true
}

// Render draws the board, marks, cursor and status.
func (g *Game) Render(dst *core.Screen) {
	n := g.board.Size()
	ox, oy, cw, ch := g.geometry()

	for i := 0; i <= n; i++ {
		dst.DrawHLine(ox, oy+i*(ch+1), n*(cw+1)+1, '─')
		dst.DrawVLine(ox+i*(cw+1), oy, n*(ch+1)+1, '│')
	}
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			dst.Set(ox+j*(cw+1), oy+i*(ch+1), '┼')
		}
	}

	_, line := g.board.Winner()
	winning := make(map[Pos]bool, len(line))
	for _, p := range line {
		winning[p] = true
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			x := ox + 1 + c*(cw+1)
			y := oy + 1 + r*(ch+1)
			p := Pos{Row: r, Col: c}
			if p == g.cursor && !g.board.Finished() {
				dst.DrawRectColor(core.NewRect(x, y, cw, ch), '░', core.ColorGray)
			}
			m := g.board.At(r, c)
			if m == Empty {
				continue
			}
			color := core.ColorBrightCyan
			if m == O {
				color = core.ColorBrightMagenta
			}
			if winning[p] {
				color = core.ColorBrightYellow
			}
			dst.SetColor(x+cw/2, y+ch/2, []rune(m.String())[0], color)
		}
	}

	status := fmt.Sprintf("%dx%d  %d in a row  -  %s to move", n, n, g.board.WinLength(), g.board.Turn())
	if w, _ := g.board.Winner(); w != Empty {
		status = fmt.Sprintf("%s wins!  R to play again", w)
	} else if g.board.Draw() {
		status = "Draw!  R to play again"
	}
	dst.DrawTextCenteredColor(0, status, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(g.runtime.ScreenH-1, fmt.Sprintf("Arrows move  Space place  %d-%d board size  R restart", g.cfg.MinSize, g.cfg.MaxSize), core.ColorGray)
}
