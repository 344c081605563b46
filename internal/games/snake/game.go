// Package snake implements classic Snake on a fixed grid: eat food to grow,
// speed up every few points, and die on walls or your own body.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

func init() {
	registry.Register("snake", "Snake", 0, func(s *config.Settings) registry.Game {
		return New(s.Snake)
	})
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) delta() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{Y: -1}
	}
}

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Visual characters for rendering
const (
	HeadChar = '█'
	BodyChar = '▓'
	FoodChar = '●'
)

// hudHeight is the status line above the field.
const hudHeight = 1

// Game implements registry.Game.
type Game struct {
	cfg   config.SnakeConfig
	rng   *rand.Rand
	phase core.PhaseMachine

	cols, rows int
	screenH    int

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction
	food      Point
	hasFood   bool

	score int
	moves int // Moves made this run
	acc   time.Duration
	cues  []core.Cue
}

// New creates a new Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "snake" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Snake" }

// Reset sizes the grid from the logical screen and starts a new run.
// The snake waits in Begin until the first direction key.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	cw := core.Max(g.cfg.CellWidth, 1)
	// One column and row each side for the border
	g.cols = core.Max((runtime.ScreenW-2)/cw, 4)
	g.rows = core.Max(runtime.ScreenH-hudHeight-2, 4)
	g.screenH = runtime.ScreenH
	g.newRun()
	g.phase.Reset(core.PhaseBegin)
}

func (g *Game) newRun() {
	g.score = 0
	g.moves = 0
	g.acc = 0
	g.cues = nil
	g.direction = DirRight
	g.nextDir = DirRight

	length := core.Clamp(g.cfg.StartLength, 1, g.cols/2)
	head := Point{X: g.cols / 2, Y: g.rows / 2}
	g.snake = make([]Point, 0, length)
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, Point{X: head.X - i, Y: head.Y})
	}
	g.spawnFood()
}

// MovesPerSecond returns the current speed.
func (g *Game) MovesPerSecond() int {
	every := g.cfg.SpeedupEvery
	rate := g.cfg.MovesPerSecond
	if every > 0 {
		rate += g.score / every
	}
	return core.Min(rate, core.Max(g.cfg.MaxMovesPerSecond, g.cfg.MovesPerSecond))
}

// HandleInput buffers a direction change and handles start and restart.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.phase.Is(core.PhaseGameOver) {
		g.newRun()
		g.phase.Restart()
		return
	}

	dir, ok := g.directionFrom(in)
	if !ok {
		if in.Has(core.ActionConfirm) && g.phase.Is(core.PhaseBegin) {
			g.phase.Start()
		}
		return
	}
	if g.phase.Is(core.PhaseBegin) {
		g.phase.Start()
	}
	// A reversal would step straight into the neck
	if dir == g.direction.Opposite() && len(g.snake) > 1 {
		return
	}
	g.nextDir = dir
}

func (g *Game) directionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Update advances the snake by as many grid moves as dt allows.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.phase.Is(core.PhasePlaying) {
		g.acc += dt
		for g.phase.Is(core.PhasePlaying) {
			interval := time.Second / time.Duration(g.MovesPerSecond())
			if g.acc < interval {
				break
			}
			g.acc -= interval
			g.step()
		}
	}

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// step makes exactly one grid move.
func (g *Game) step() {
	g.direction = g.nextDir
	next := g.snake[0].Add(g.direction.delta())

	if next.X < 0 || next.X >= g.cols || next.Y < 0 || next.Y >= g.rows {
		g.die()
		return
	}

	eating := g.hasFood && next == g.food
	// The tail moves away this step unless we are eating, so the head may
	// enter the cell it is leaving.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == next {
			g.die()
			return
		}
	}

	g.snake = append([]Point{next}, g.snake...)
	if !eating {
		g.snake = g.snake[:len(g.snake)-1]
	}
	g.moves++

	if eating {
		g.score++
		g.cues = append(g.cues, core.CueEat)
		g.spawnFood()
		if !g.hasFood {
			// No free cell left: the board is full
			g.phase.End()
			g.cues = append(g.cues, core.CueWin)
		}
	}
}

func (g *Game) die() {
	g.phase.End()
	g.cues = append(g.cues, core.CueLose)
}

// spawnFood picks a uniformly random cell not covered by the snake.
func (g *Game) spawnFood() {
	occupied := make(map[Point]bool, len(g.snake))
	for _, p := range g.snake {
		occupied[p] = true
	}
	free := make([]Point, 0, g.cols*g.rows-len(g.snake))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.hasFood = false
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase.Phase(),
		Score: g.score,
		Won:   g.phase.Is(core.PhaseGameOver) && !g.hasFood,
	}
}

// Render draws the field, snake, food and HUD.
func (g *Game) Render(dst *core.Screen) {
	cw := core.Max(g.cfg.CellWidth, 1)
	border := core.NewRect(0, hudHeight, g.cols*cw+2, g.rows+2)
	dst.DrawBoxColor(border, core.ColorGray)

	cell := func(p Point, r rune, c core.Color) {
		for i := 0; i < cw; i++ {
			dst.SetColor(1+p.X*cw+i, hudHeight+1+p.Y, r, c)
		}
	}

	if g.hasFood {
		dst.SetColor(1+g.food.X*cw, hudHeight+1+g.food.Y, FoodChar, core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], HeadChar, core.ColorBrightGreen)
		} else {
			cell(g.snake[i], BodyChar, core.ColorGreen)
		}
	}

	hud := fmt.Sprintf("Score: %d  Length: %d  Speed: %d", g.score, len(g.snake), g.MovesPerSecond())
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	switch g.phase.Phase() {
	case core.PhaseBegin:
		drawCenteredMessage(dst, "SNAKE", "Press an arrow key to start")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if !g.hasFood {
			title = "BOARD CLEARED!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  -  R to restart", g.score))
	}
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len([]rune(subtitle))) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(box.Y+3, subtitle, core.ColorWhite)
}
