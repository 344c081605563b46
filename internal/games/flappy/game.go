// Package flappy implements a Flappy Bird-style game.
package flappy

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

func init() {
	registry.Register("flappy", "Flappy Bird", 5, func(s *config.Settings) registry.Game {
		return New(s.Flappy)
	})
}

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	DirtChar      = '░'
)

const tagSpawn = "spawn"

// Game implements registry.Game.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	phase      core.PhaseMachine
	sched      core.Scheduler

	width, height float64
	groundY       float64

	bird  core.Box
	vy    float64
	pipes []Pipe
	score int

	flap bool
	cues []core.Cue
}

// New creates a new Flappy Bird game.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy Bird" }

// Reset sizes the field and shows the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)
	ground := math.Max(1, math.Round(g.height*g.cfg.Pipes.GroundRatio))
	g.groundY = g.height - ground
	g.newRun()
}

func (g *Game) newRun() {
	p := g.cfg.Player
	g.bird = core.Box{
		X: math.Round(g.width * p.XRatio),
		Y: math.Round((g.groundY - float64(p.Height)) / 2),
		W: float64(p.Width),
		H: float64(p.Height),
	}
	g.vy = 0
	g.pipes = g.pipes[:0]
	g.score = 0
	g.flap = false
	g.cues = nil
	g.sched.Reset()
	g.phase.Reset(core.PhaseBegin)
}

// HandleInput records a flap, or restarts after a crash.
func (g *Game) HandleInput(in core.InputFrame) {
	flap := in.Has(core.ActionConfirm) || in.Has(core.ActionUp)
	for _, ev := range in.Pointer {
		flap = flap || ev.Kind == core.PointerClick
	}

	if g.phase.Is(core.PhaseGameOver) {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newRun()
		}
		return
	}
	if !flap {
		return
	}
	if g.phase.Start() {
		g.sched.After(0, tagSpawn)
	}
	g.flap = true
}

// Update applies gravity, scrolls pipes and resolves collisions.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.phase.Is(core.PhasePlaying) {
		g.step(dt)
	}

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) step(dt time.Duration) {
	sec := dt.Seconds()
	for _, tag := range g.sched.Advance(dt) {
		if tag == tagSpawn {
			g.spawn()
		}
	}

	if g.flap {
		g.vy = g.cfg.Physics.FlapImpulse
		g.flap = false
		g.cues = append(g.cues, core.CueFlap)
	}
	g.vy = math.Min(g.vy+g.cfg.Physics.Gravity*sec, g.cfg.Physics.MaxFallSpeed)
	g.bird.Y += g.vy * sec
	if g.bird.Y < 0 {
		g.bird.Y = 0
		g.vy = 0
	}

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.score, 0)
	kept := g.pipes[:0]
	for _, p := range g.pipes {
		p.X -= speed * sec
		if p.Right() < 0 {
			continue
		}
		if !p.Scored && p.Right() < g.bird.X {
			p.Scored = true
			g.score++
			g.cues = append(g.cues, core.CueScore)
		}
		kept = append(kept, p)
	}
	g.pipes = kept

	if g.bird.Bottom() >= g.groundY {
		g.bird.Y = g.groundY - g.bird.H
		g.crash()
		return
	}
	for _, p := range g.pipes {
		if p.Collides(g.bird, g.groundY) {
			g.crash()
			return
		}
	}
}

// spawn adds a pipe pair at the right edge and schedules the next one.
// Difficulty narrows the gap and shortens the interval as the score grows.
func (g *Game) spawn() {
	pc := g.cfg.Pipes
	gap := g.difficulty.Gap(g.height*pc.GapRatio, float64(pc.MinGap), g.score, 0)
	lo, hi := gapBand(g.groundY, gap, pc.TopMargin, pc.BottomMargin)
	g.pipes = append(g.pipes, Pipe{
		X:     g.width,
		Width: float64(pc.Width),
		GapY:  lo + g.rng.Float64()*(hi-lo),
		Gap:   gap,
	})

	next := g.difficulty.Interval(pc.SpawnInterval, pc.SpawnInterval/2, g.score, 0)
	g.sched.After(next, tagSpawn)
}

func (g *Game) crash() {
	g.phase.End()
	g.sched.Reset()
	g.cues = append(g.cues, core.CueHit, core.CueLose)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.phase.Phase(), Score: g.score}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	groundY := int(g.groundY)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar)
	}

	for _, p := range g.pipes {
		g.drawPipe(dst, p)
	}

	bx, by := int(g.bird.X), int(g.bird.Y)
	for dy := 0; dy < int(g.bird.H); dy++ {
		for dx := 0; dx < int(g.bird.W); dx++ {
			ch := BirdChar
			if dx == int(g.bird.W)-1 && dy == 0 {
				ch = BeakChar
			}
			dst.SetColor(bx+dx, by+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawTextCenteredColor(0, fmt.Sprintf(" %d ", g.score), core.ColorBrightWhite)

	switch g.phase.Phase() {
	case core.PhaseBegin:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press Space to flap")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space or R to restart", g.score))
	}
}

func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	top := p.Top().Cells()
	dst.DrawRectColor(core.NewRect(top.X, 0, top.W, int(p.GapY)), PipeChar, core.ColorGreen)
	if gy := int(p.GapY); gy > 0 {
		dst.DrawHLine(top.X, gy-1, top.W, PipeCapTop)
	}

	by := int(math.Ceil(p.GapY + p.Gap))
	dst.DrawRectColor(core.NewRect(top.X, by, top.W, int(g.groundY)-by), PipeChar, core.ColorGreen)
	if by < int(g.groundY) {
		dst.DrawHLine(top.X, by, top.W, PipeCapBottom)
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
