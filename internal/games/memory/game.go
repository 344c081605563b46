// Package memory implements Memory Match: flip cards two at a time and find
// every pair.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

func init() {
	registry.Register("memory", "Memory Match", 6, func(s *config.Settings) registry.Game {
		return New(s.Memory)
	})
}

// Visual characters for rendering
const (
	BackChar = '░'
	FaceChar = ' '
)

const tagFlipBack = "flip-back"

// Table used when the configured size cannot hold pairs.
const defaultRows, defaultCols = 4, 4

// Game implements registry.Game.
type Game struct {
	cfg   config.MemoryConfig
	rng   *rand.Rand
	phase core.PhaseMachine
	sched core.Scheduler

	deck  *Deck
	open  int    // Index of the single unmatched face-up card, or -1
	miss  [2]int // Mismatched pair waiting to flip back
	flipB core.EventID
	moves int
	pairs int

	cursorRow, cursorCol int

	// Layout
	originX, originY int
	cellW, cellH     int

	cues []core.Cue
}

// New creates a new Memory Match game.
func New(cfg config.MemoryConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "memory" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Memory Match" }

// Reset deals a fresh table sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	if !validSize(g.cfg.Rows, g.cfg.Cols) {
		g.cfg.Rows, g.cfg.Cols = defaultRows, defaultCols
	}
	rows, cols := g.cfg.Rows, g.cfg.Cols

	g.cellW = core.Max((runtime.ScreenW-2)/cols, 4)
	g.cellH = core.Max((runtime.ScreenH-3)/rows, 2)
	g.originX = (runtime.ScreenW - g.cellW*cols) / 2
	g.originY = 2

	g.newRun()
	g.phase.Reset(core.PhasePlaying)
}

func (g *Game) newRun() {
	g.deck = g.deal()
	g.open = -1
	g.flipB = 0
	g.moves = 0
	g.pairs = 0
	g.cursorRow, g.cursorCol = 0, 0
	g.cues = nil
	g.sched.Reset()
}

// deal shuffles a deck for the configured table. The deck is never nil: a
// size NewDeck rejects falls back to the default table.
func (g *Game) deal() *Deck {
	d, err := NewDeck(g.cfg.Rows, g.cfg.Cols, g.rng)
	if err == nil {
		return d
	}
	g.cfg.Rows, g.cfg.Cols = defaultRows, defaultCols
	d, err = NewDeck(defaultRows, defaultCols, g.rng)
	if err != nil {
		panic(err) // defaultRows*defaultCols is even
	}
	return d
}

// Moves returns how many pairs of cards have been turned over.
func (g *Game) Moves() int { return g.moves }

// FaceUp returns the number of face-up cards that are not yet matched.
func (g *Game) FaceUp() int { return g.deck.Count(FaceUp) }

// HandleInput moves the cursor and flips cards.
func (g *Game) HandleInput(in core.InputFrame) {
	if g.phase.Is(core.PhaseGameOver) {
		if in.Has(core.ActionRestart) {
			g.newRun()
			g.phase.Restart()
		}
		return
	}

	rows, cols := g.deck.Rows, g.deck.Cols
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = (g.cursorRow - 1 + rows) % rows
	case in.Has(core.ActionDown):
		g.cursorRow = (g.cursorRow + 1) % rows
	case in.Has(core.ActionLeft):
		g.cursorCol = (g.cursorCol - 1 + cols) % cols
	case in.Has(core.ActionRight):
		g.cursorCol = (g.cursorCol + 1) % cols
	}
	if in.Has(core.ActionConfirm) {
		g.Flip(g.deck.Index(g.cursorRow, g.cursorCol))
	}

	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerClick {
			continue
		}
		if row, col, ok := g.cardAt(ev.X, ev.Y); ok {
			g.cursorRow, g.cursorCol = row, col
			g.Flip(g.deck.Index(row, col))
		}
	}
}

// Flip turns a face-down card over. Flipping while a mismatched pair is
// still showing turns that pair back first, so at most two unmatched cards
// are ever face up. Returns false if the card cannot be flipped.
func (g *Game) Flip(i int) bool {
	if !g.phase.Is(core.PhasePlaying) || i < 0 || i >= len(g.deck.Cards) {
		return false
	}
	if g.deck.Cards[i].Face != FaceDown {
		return false
	}
	if g.sched.Pending(g.flipB) {
		g.sched.Cancel(g.flipB)
		g.flipBack()
	}

	g.deck.Cards[i].Face = FaceUp
	g.cues = append(g.cues, core.CueFlip)
	if g.open < 0 {
		g.open = i
		return true
	}

	first := g.open
	g.open = -1
	g.moves++
	if g.deck.Cards[first].Value == g.deck.Cards[i].Value {
		g.deck.Cards[first].Face = FaceMatched
		g.deck.Cards[i].Face = FaceMatched
		g.pairs++
		g.cues = append(g.cues, core.CueMatch)
		if g.pairs == g.deck.Pairs() {
			g.phase.End()
			g.cues = append(g.cues, core.CueWin)
		}
		return true
	}

	g.miss = [2]int{first, i}
	g.flipB = g.sched.After(g.cfg.FlipBackDelay, tagFlipBack)
	g.cues = append(g.cues, core.CueFail)
	return true
}

func (g *Game) flipBack() {
	for _, i := range g.miss {
		if g.deck.Cards[i].Face == FaceUp {
			g.deck.Cards[i].Face = FaceDown
		}
	}
}

// Update runs pending flip-backs.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.phase.Is(core.PhasePlaying) {
		for _, tag := range g.sched.Advance(dt) {
			if tag == tagFlipBack {
				g.flipBack()
			}
		}
	}

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// Score rewards pairs and charges each missed move, never below zero.
func (g *Game) Score() int {
	s := g.cfg.PairPoints*g.pairs - g.cfg.MissPenalty*(g.moves-g.pairs)
	return core.Max(s, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase.Phase(),
		Score: g.Score(),
		Won:   g.phase.Is(core.PhaseGameOver),
	}
}

func (g *Game) cardRect(row, col int) core.Rect {
	return core.NewRect(g.originX+col*g.cellW, g.originY+row*g.cellH, g.cellW-1, g.cellH-1)
}

func (g *Game) cardAt(x, y int) (row, col int, ok bool) {
	for r := 0; r < g.deck.Rows; r++ {
		for c := 0; c < g.deck.Cols; c++ {
			if g.cardRect(r, c).Contains(x, y) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf("MOVES %d  PAIRS %d/%d  SCORE %d", g.moves, g.pairs, g.deck.Pairs(), g.Score())
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	for r := 0; r < g.deck.Rows; r++ {
		for c := 0; c < g.deck.Cols; c++ {
			g.drawCard(dst, r, c)
		}
	}

	if g.phase.Is(core.PhaseGameOver) {
		drawCenteredMessage(dst, fmt.Sprintf("You won in %d moves!", g.moves), fmt.Sprintf("Score: %d  |  Press R to restart", g.Score()))
		return
	}
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows move  |  Enter/Space flips", core.ColorGray)
}

func (g *Game) drawCard(dst *core.Screen, row, col int) {
	rect := g.cardRect(row, col)
	card := g.deck.Cards[g.deck.Index(row, col)]
	selected := row == g.cursorRow && col == g.cursorCol

	switch card.Face {
	case FaceDown:
		dst.DrawRectColor(rect, BackChar, core.ColorBlue)
	default:
		dst.DrawRect(rect, FaceChar)
		color := core.PaletteColor(card.Value)
		if card.Face == FaceMatched {
			color = core.ColorGreen
		}
		cx, cy := rect.Center()
		label := fmt.Sprintf("%d", card.Value)
		dst.DrawTextColor(cx-len(label)/2, cy, label, color)
	}

	if selected && rect.W >= 2 && rect.H >= 2 {
		dst.DrawBoxColor(rect, core.ColorBrightWhite)
	} else if selected {
		dst.SetColor(rect.X, rect.Y, '>', core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
