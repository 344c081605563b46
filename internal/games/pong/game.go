// Package pong implements Pong against a CPU paddle.
// The player controls the left paddle, the CPU the right one.
package pong

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
	registry.Register("pong", "Pong", 2, func(s *config.Settings) registry.Game {
		return New(s.Pong)
	})
}

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Side identifies a player.
type Side int

const (
	SidePlayer Side = iota
	SideCPU
)

// fieldTop is the first row below the score line.
const fieldTop = 1

// maxSubstep bounds how far the ball travels between collision checks so a
// fast ball cannot skip over a one-cell paddle.
const maxSubstep = 0.5

// Game implements registry.Game.
type Game struct {
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	phase      core.PhaseMachine

	width, height float64

	player core.Box
	cpu    core.Box
	ball   core.Circle
	vx, vy float64
	speed  float64

	scores     [2]int
	serveTimer time.Duration
	elapsed    time.Duration
	hold       core.HoldIntent
	cues       []core.Cue
}

// New creates a new Pong game.
func New(cfg config.PongConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "pong" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Pong" }

// Reset lays out the field proportionally and waits for the first input.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)
	g.newMatch()
	g.phase.Reset(core.PhaseBegin)
}

func (g *Game) newMatch() {
	fieldH := g.height - fieldTop
	ph := math.Max(math.Round(fieldH*g.cfg.Field.PaddleHeightRatio), float64(g.cfg.Field.MinPaddleHeight))
	off := float64(g.cfg.Field.PaddleOffset)
	y := fieldTop + (fieldH-ph)/2

	g.player = core.Box{X: off, Y: y, W: 1, H: ph}
	g.cpu = core.Box{X: g.width - off - 1, Y: y, W: 1, H: ph}
	g.scores = [2]int{}
	g.elapsed = 0
	g.cues = nil
	g.hold.Release()
	g.serve()
}

// serve puts the ball at the center heading to a random side at a random
// angle, after the serve delay.
func (g *Game) serve() {
	g.ball = core.Circle{X: g.width / 2, Y: fieldTop + (g.height-fieldTop)/2, R: 0.5}
	g.speed = g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.scores[SideCPU], g.elapsed)

	spread := g.cfg.Physics.ServeAngle * math.Pi / 180
	angle := (g.rng.Float64()*2 - 1) * spread
	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	g.vx = dir * g.speed * math.Cos(angle)
	g.vy = g.speed * math.Sin(angle)
	g.serveTimer = g.cfg.Gameplay.ServeDelay
}

// Score returns the points of one side.
func (g *Game) Score(s Side) int {
	return g.scores[s]
}

// HandleInput moves the player's paddle intent.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.phase.Is(core.PhaseGameOver) {
		g.newMatch()
		g.phase.Restart()
		return
	}
	if g.phase.Is(core.PhaseBegin) && !in.Empty() {
		g.phase.Start()
	}

	switch {
	case in.Has(core.ActionUp):
		g.hold.Press(-1)
	case in.Has(core.ActionDown):
		g.hold.Press(1)
	}
	for _, ev := range in.Pointer {
		if ev.Kind == core.PointerMove || ev.Kind == core.PointerClick {
			g.player.Y = g.clampPaddle(float64(ev.Y) - g.player.H/2)
		}
	}
}

func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, fieldTop, g.height-g.player.H)
}

// Update advances paddles and ball by dt.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.phase.Is(core.PhasePlaying) {
		g.elapsed += dt
		sec := dt.Seconds()

		dir := g.hold.Consume(dt)
		g.player.Y = g.clampPaddle(g.player.Y + float64(dir)*g.cfg.Physics.PaddleSpeed*sec)
		g.updateCPU(sec)

		if g.serveTimer > 0 {
			g.serveTimer -= dt
		} else {
			g.updateBall(sec)
		}
	}

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// updateCPU tracks the ball while it approaches, else drifts to center.
func (g *Game) updateCPU(sec float64) {
	target := fieldTop + (g.height-fieldTop)/2
	if g.vx > 0 {
		target = g.ball.Y
	}
	aiSpeed := g.difficulty.Speed(g.cfg.Physics.AISpeed, g.scores[SidePlayer], g.elapsed)
	diff := target - g.cpu.CenterY()
	step := math.Min(aiSpeed*sec, math.Abs(diff))
	g.cpu.Y = core.ClampF(g.cpu.Y+math.Copysign(step, diff), fieldTop, g.height-g.cpu.H)
}

func (g *Game) updateBall(sec float64) {
	dist := math.Hypot(g.vx, g.vy) * sec
	steps := int(math.Ceil(dist / maxSubstep))
	if steps < 1 {
		steps = 1
	}
	h := sec / float64(steps)
	for i := 0; i < steps; i++ {
		if g.moveBall(h) {
			return
		}
	}
}

// moveBall advances the ball by h seconds and reports whether a point was
// scored.
func (g *Game) moveBall(h float64) bool {
	g.ball.X += g.vx * h
	g.ball.Y += g.vy * h

	r := g.ball.R
	if g.ball.Y-r < fieldTop {
		g.ball.Y = fieldTop + r
		g.vy = math.Abs(g.vy)
		g.cues = append(g.cues, core.CueBounce)
	}
	if g.ball.Y+r > g.height {
		g.ball.Y = g.height - r
		g.vy = -math.Abs(g.vy)
		g.cues = append(g.cues, core.CueBounce)
	}

	if g.vx < 0 && g.ball.Overlaps(g.player) {
		g.ball.X = g.player.Right() + r
		g.deflect(g.player, 1)
	}
	if g.vx > 0 && g.ball.Overlaps(g.cpu) {
		g.ball.X = g.cpu.X - r
		g.deflect(g.cpu, -1)
	}

	switch {
	case g.ball.X < 0:
		g.point(SideCPU)
		return true
	case g.ball.X > g.width:
		g.point(SidePlayer)
		return true
	}
	return false
}

// deflect reflects the ball off a paddle; the exit angle follows how far
// from the paddle center the ball hit.
func (g *Game) deflect(p core.Box, dir float64) {
	offset := core.ClampF((g.ball.Y-p.CenterY())/(p.H/2), -1, 1)
	angle := offset * g.cfg.Physics.MaxBounceAngle * math.Pi / 180
	g.speed = math.Min(g.speed*g.cfg.Physics.SpeedUp, g.cfg.Physics.MaxBallSpeed)
	g.vx = dir * g.speed * math.Cos(angle)
	g.vy = g.speed * math.Sin(angle)
	g.cues = append(g.cues, core.CueHit)
}

// point awards one point, then ends the match or re-serves.
func (g *Game) point(to Side) {
	g.scores[to]++
	if g.scores[to] >= g.cfg.Gameplay.WinScore {
		g.phase.End()
		if to == SidePlayer {
			g.cues = append(g.cues, core.CueWin)
		} else {
			g.cues = append(g.cues, core.CueLose)
		}
		return
	}
	g.cues = append(g.cues, core.CueScore)
	g.serve()
}

// State returns the current game state. The score is the player's points.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase.Phase(),
		Score: g.scores[SidePlayer],
		Won:   g.scores[SidePlayer] >= g.cfg.Gameplay.WinScore,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	centerX := dst.Width() / 2
	for y := fieldTop; y < dst.Height(); y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	dst.DrawRectColor(g.player.Cells(), PaddleChar, core.ColorBrightCyan)
	dst.DrawRectColor(g.cpu.Cells(), PaddleChar, core.ColorBrightRed)

	blink := g.serveTimer > 0 && (g.serveTimer/(150*time.Millisecond))%2 == 1
	if !blink {
		dst.SetColor(int(g.ball.X), int(g.ball.Y), BallChar, core.ColorBrightWhite)
	}

	dst.DrawTextColor(1, 0, "YOU", core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-4, 0, "CPU", core.ColorBrightRed)
	dst.DrawTextColor(centerX-5, 0, fmt.Sprintf("%2d", g.scores[SidePlayer]), core.ColorBrightWhite)
	dst.DrawTextColor(centerX+4, 0, fmt.Sprintf("%d", g.scores[SideCPU]), core.ColorBrightWhite)

	switch g.phase.Phase() {
	case core.PhaseBegin:
		drawCenteredMessage(dst, "PONG", fmt.Sprintf("First to %d  -  press any key", g.cfg.Gameplay.WinScore))
	case core.PhaseGameOver:
		msg := "CPU WINS!"
		if g.State().Won {
			msg = "YOU WIN!"
		}
		drawCenteredMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.scores[SidePlayer], g.scores[SideCPU]))
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
