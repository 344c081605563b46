// Package breakout implements a brick breaker with lives, waves and a
// time-based ball speed ramp.
package breakout

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
	"github.com/vovakirdan/gamecenter/internal/registry"
)

func init() {
	registry.Register("breakout", "Brick Breaker", 4, func(s *config.Settings) registry.Game {
		return New(s.Breakout)
	})
}

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	LifeChar   = '♥'
)

// fieldTop is the first row below the HUD.
const fieldTop = 1

const maxSubstep = 0.5

// launchSpread is the widest launch angle from vertical, in degrees.
const launchSpread = 30

// Game implements registry.Game.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	phase      core.PhaseMachine

	width, height float64

	paddle core.Box
	ball   core.Circle
	vx, vy float64
	stuck  bool // Ball rides the paddle until launched

	wall       *Wall
	wave       int
	score      int
	lives      int
	multiplier float64
	rampTimer  time.Duration
	elapsed    time.Duration

	hold   core.HoldIntent
	launch bool
	cues   []core.Cue
}

// New creates a new Brick Breaker game.
func New(cfg config.BreakoutConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Breaker" }

// Reset sizes the field and waits for the first input.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width = float64(runtime.ScreenW)
	g.height = float64(runtime.ScreenH)
	g.newRun()
	g.phase.Reset(core.PhaseBegin)
}

func (g *Game) newRun() {
	pw := math.Max(math.Round(g.width*g.cfg.Paddle.WidthRatio), float64(g.cfg.Paddle.MinWidth))
	g.paddle = core.Box{X: (g.width - pw) / 2, Y: g.height - 2, W: pw, H: 1}
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.multiplier = 1
	g.rampTimer = 0
	g.elapsed = 0
	g.cues = nil
	g.hold.Release()
	g.buildWave()
}

func (g *Game) buildWave() {
	b := g.cfg.Bricks
	g.wall = NewWall(g.width, fieldTop+b.TopOffset, b.Rows, b.Columns, b.RowPoints)
	g.serve()
}

// serve parks the ball on the paddle.
func (g *Game) serve() {
	g.stuck = true
	g.vx, g.vy = 0, 0
	g.ball = core.Circle{R: g.cfg.Physics.BallRadius}
	g.followPaddle()
}

func (g *Game) followPaddle() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = g.paddle.Y - g.ball.R
}

// speed is the current ball speed magnitude.
func (g *Game) speed() float64 {
	base := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.score, g.elapsed)
	return base * g.multiplier
}

func (g *Game) launchBall() {
	angle := (g.rng.Float64()*2 - 1) * launchSpread * math.Pi / 180
	s := g.speed()
	g.vx = s * math.Sin(angle)
	g.vy = -s * math.Cos(angle)
	g.stuck = false
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Multiplier returns the current speed multiplier.
func (g *Game) Multiplier() float64 { return g.multiplier }

// HandleInput records paddle intent and launch requests.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.phase.Is(core.PhaseGameOver) {
		g.newRun()
		g.phase.Restart()
		return
	}
	if g.phase.Is(core.PhaseBegin) && !in.Empty() {
		g.phase.Start()
	}

	switch {
	case in.Has(core.ActionLeft):
		g.hold.Press(-1)
	case in.Has(core.ActionRight):
		g.hold.Press(1)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionUp) {
		g.launch = true
	}
	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerMove:
			g.paddle.X = g.clampPaddle(float64(ev.X) - g.paddle.W/2)
		case core.PointerClick:
			g.paddle.X = g.clampPaddle(float64(ev.X) - g.paddle.W/2)
			g.launch = true
		}
	}
}

func (g *Game) clampPaddle(x float64) float64 {
	return core.ClampF(x, 0, g.width-g.paddle.W)
}

// Update advances the paddle, the ball and the speed ramp by dt.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.phase.Is(core.PhasePlaying) {
		g.step(dt)
	}
	g.launch = false

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) step(dt time.Duration) {
	sec := dt.Seconds()
	dir := g.hold.Consume(dt)
	g.paddle.X = g.clampPaddle(g.paddle.X + float64(dir)*g.cfg.Paddle.Speed*sec)

	if g.stuck {
		g.followPaddle()
		if g.launch {
			g.launchBall()
		}
		return
	}

	g.elapsed += dt
	g.rampTimer += dt
	for g.cfg.Physics.RampInterval > 0 && g.rampTimer >= g.cfg.Physics.RampInterval {
		g.rampTimer -= g.cfg.Physics.RampInterval
		g.ramp()
	}

	dist := math.Hypot(g.vx, g.vy) * sec
	steps := core.Max(int(math.Ceil(dist/maxSubstep)), 1)
	h := sec / float64(steps)
	for i := 0; i < steps && !g.stuck && g.phase.Is(core.PhasePlaying); i++ {
		g.moveBall(h)
	}
}

// ramp raises the speed multiplier one step and rescales the velocity along
// its current heading.
func (g *Game) ramp() {
	next := math.Min(g.multiplier+g.cfg.Physics.RampStep, g.cfg.Physics.MaxMultiplier)
	if next <= g.multiplier {
		return
	}
	g.multiplier = next
	heading := math.Atan2(g.vy, g.vx)
	s := g.speed()
	g.vx = s * math.Cos(heading)
	g.vy = s * math.Sin(heading)
}

func (g *Game) moveBall(h float64) {
	prevX, prevY := g.ball.X, g.ball.Y
	g.ball.X += g.vx * h
	g.ball.Y += g.vy * h
	r := g.ball.R

	if g.ball.X-r < 0 {
		g.ball.X = r
		g.vx = math.Abs(g.vx)
		g.cues = append(g.cues, core.CueBounce)
	}
	if g.ball.X+r > g.width {
		g.ball.X = g.width - r
		g.vx = -math.Abs(g.vx)
		g.cues = append(g.cues, core.CueBounce)
	}
	if g.ball.Y-r < fieldTop {
		g.ball.Y = fieldTop + r
		g.vy = math.Abs(g.vy)
		g.cues = append(g.cues, core.CueBounce)
	}

	if g.vy > 0 && g.ball.Overlaps(g.paddle) {
		g.ball.Y = g.paddle.Y - r
		g.deflect()
	}

	if i := g.wall.Hit(g.ball); i >= 0 {
		g.hitBrick(i, prevX, prevY)
	}

	if g.ball.Y-r > g.height {
		g.loseLife()
	}
}

// deflect sends the ball upward; the angle from vertical follows the
// impact offset from the paddle center.
func (g *Game) deflect() {
	offset := core.ClampF((g.ball.X-g.paddle.CenterX())/(g.paddle.W/2), -1, 1)
	angle := offset * g.cfg.Physics.MaxBounceAngle * math.Pi / 180
	s := g.speed()
	g.vx = s * math.Sin(angle)
	g.vy = -s * math.Cos(angle)
	g.cues = append(g.cues, core.CueHit)
}

// hitBrick removes a brick and reflects the ball on the axis it came in on.
func (g *Game) hitBrick(i int, prevX, prevY float64) {
	b := &g.wall.Bricks[i]
	b.Alive = false
	g.score += b.Points
	g.cues = append(g.cues, core.CueBrick)

	r := g.ball.R
	fromSide := prevX+r <= b.X || prevX-r >= b.Right()
	fromAbove := prevY+r <= b.Y || prevY-r >= b.Bottom()
	switch {
	case fromSide && !fromAbove:
		g.vx = -g.vx
	default:
		g.vy = -g.vy
	}

	if g.wall.Alive() == 0 {
		g.wave++
		g.cues = append(g.cues, core.CueWin)
		g.buildWave()
	}
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase.End()
		g.cues = append(g.cues, core.CueLose)
		return
	}
	g.cues = append(g.cues, core.CueFail)
	g.serve()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.phase.Phase(), Score: g.score}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	for _, b := range g.wall.Bricks {
		if !b.Alive {
			continue
		}
		x0 := int(math.Floor(b.X))
		x1 := int(math.Floor(b.Right())) - 1 // leave a one-cell gap
		if x1 <= x0 {
			x1 = x0 + 1
		}
		dst.DrawRectColor(core.NewRect(x0, int(b.Y), x1-x0, 1), BrickChar, core.PaletteColor(b.Row))
	}

	dst.DrawRectColor(g.paddle.Cells(), PaddleChar, core.ColorBrightCyan)
	dst.SetColor(int(g.ball.X), int(g.ball.Y), BallChar, core.ColorBrightWhite)

	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColor(14, 0, strings.Repeat(string(LifeChar), g.lives), core.ColorBrightRed)
	hud := fmt.Sprintf("WAVE %d  SPEED x%.2f", g.wave, g.multiplier)
	dst.DrawTextColor(dst.Width()-len(hud)-1, 0, hud, core.ColorGray)

	switch {
	case g.phase.Is(core.PhaseBegin):
		drawCenteredMessage(dst, "BRICK BREAKER", "Arrows move  -  Space launches")
	case g.phase.Is(core.PhaseGameOver):
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.stuck:
		dst.DrawTextCenteredColor(int(g.paddle.Y)-3, "Press Space to launch", core.ColorGray)
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
