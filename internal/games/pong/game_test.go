package pong

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
)

const frame = 16 * time.Millisecond

func newPlayingGame(seed int64) *Game {
	g := New(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.HandleInput(in)
	g.serveTimer = 0
	return g
}

func TestBeginWaitsForInput(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	before := g.Snapshot()

	g.Update(time.Second)
	if g.Snapshot() != before {
		t.Error("nothing should move before the first input")
	}
	if g.State().Phase != core.PhaseBegin {
		t.Errorf("Phase = %v, expected Begin", g.State().Phase)
	}
}

func TestProportionalLayout(t *testing.T) {
	g := newPlayingGame(1)
	if g.player.H != 5 {
		t.Errorf("paddle height = %v, expected 5 (a fifth of the field)", g.player.H)
	}
	if g.cpu.X != 77 {
		t.Errorf("cpu paddle x = %v, expected 77", g.cpu.X)
	}
}

func TestBallPastLeftEdgeScoresCPU(t *testing.T) {
	g := newPlayingGame(1)
	g.ball = core.Circle{X: 0.3, Y: 3, R: 0.5}
	g.vx, g.vy = -30, 0

	res := g.Update(frame)
	if g.Score(SideCPU) != 1 || g.Score(SidePlayer) != 0 {
		t.Fatalf("scores = %d/%d, expected CPU 1 player 0", g.Score(SidePlayer), g.Score(SideCPU))
	}
	if g.ball.X != 40 || g.ball.Y != 12.5 {
		t.Errorf("ball = (%v, %v), expected re-serve at center (40, 12.5)", g.ball.X, g.ball.Y)
	}
	if res.State.Score != 0 {
		t.Errorf("reported score = %d, expected the player's 0", res.State.Score)
	}
}

func TestBallPastRightEdgeScoresPlayer(t *testing.T) {
	g := newPlayingGame(1)
	g.ball = core.Circle{X: 79.8, Y: 3, R: 0.5}
	g.vx, g.vy = 30, 0

	res := g.Update(frame)
	if g.Score(SidePlayer) != 1 || g.Score(SideCPU) != 0 {
		t.Fatalf("scores = %d/%d, expected player 1", g.Score(SidePlayer), g.Score(SideCPU))
	}
	if res.State.Score != 1 {
		t.Errorf("State().Score = %d, expected 1", res.State.Score)
	}
}

func TestOneScorePerCrossing(t *testing.T) {
	g := newPlayingGame(7)
	total := 0
	for i := 0; i < 20000 && g.State().Phase == core.PhasePlaying; i++ {
		g.Update(frame)
		now := g.Score(SidePlayer) + g.Score(SideCPU)
		if now-total > 1 {
			t.Fatalf("tick %d: %d points in one update", i, now-total)
		}
		if now > total && g.State().Phase == core.PhasePlaying {
			if g.ball.X != 40 {
				t.Fatalf("tick %d: ball x = %v after a point, expected center", i, g.ball.X)
			}
		}
		total = now
	}
	if g.State().Phase != core.PhaseGameOver {
		t.Fatal("the match should finish")
	}
	if g.Score(SideCPU) != 11 && g.Score(SidePlayer) != 11 {
		t.Errorf("final score %d - %d, expected one side at 11", g.Score(SidePlayer), g.Score(SideCPU))
	}
}

func TestPaddleDeflection(t *testing.T) {
	tests := []struct {
		name   string
		offset float64 // relative to paddle center, in cells
		wantVY func(vy float64) bool
	}{
		{"center hit goes straight", 0, func(vy float64) bool { return math.Abs(vy) < 1e-9 }},
		{"top hit goes up", -2.5, func(vy float64) bool { return vy < 0 }},
		{"bottom hit goes down", 2.5, func(vy float64) bool { return vy > 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlayingGame(1)
			g.ball = core.Circle{X: 3.6, Y: g.player.CenterY() + tc.offset, R: 0.5}
			g.vx, g.vy = -30, 0
			g.speed = 30

			res := g.Update(frame)
			if g.vx <= 0 {
				t.Fatalf("vx = %v after hitting the left paddle, expected > 0", g.vx)
			}
			if !tc.wantVY(g.vy) {
				t.Errorf("vy = %v", g.vy)
			}
			if math.Abs(math.Hypot(g.vx, g.vy)-33) > 1e-6 {
				t.Errorf("speed = %v, expected 33 after a 1.1x speed-up", math.Hypot(g.vx, g.vy))
			}
			found := false
			for _, c := range res.Cues {
				found = found || c == core.CueHit
			}
			if !found {
				t.Errorf("Cues = %v, expected hit", res.Cues)
			}
		})
	}
}

func TestMaxBounceAngle(t *testing.T) {
	g := newPlayingGame(1)
	g.ball = core.Circle{X: 3.6, Y: g.player.Y, R: 0.5}
	g.vx, g.vy = -30, 0
	g.speed = 30
	g.Update(frame)

	angle := math.Atan2(math.Abs(g.vy), g.vx) * 180 / math.Pi
	if angle > 60+1e-6 {
		t.Errorf("bounce angle = %v, expected <= 60", angle)
	}
}

func TestWallBounce(t *testing.T) {
	g := newPlayingGame(1)
	g.ball = core.Circle{X: 40, Y: 1.6, R: 0.5}
	g.vx, g.vy = 0, -30

	g.Update(frame)
	if g.vy <= 0 {
		t.Errorf("vy = %v after the top wall, expected > 0", g.vy)
	}
	if g.ball.Y-g.ball.R < fieldTop {
		t.Errorf("ball y = %v escaped the field", g.ball.Y)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newPlayingGame(99)
	g2 := newPlayingGame(99)
	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if i%50 < 10 {
			in.Set(core.ActionUp)
		}
		g1.HandleInput(in)
		g2.HandleInput(in)
		g1.Update(frame)
		g2.Update(frame)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPlayerPaddleMovesAndClamps(t *testing.T) {
	g := newPlayingGame(1)
	startY := g.player.Y
	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionUp)
		g.HandleInput(in)
		g.Update(frame)
		if g.player.Y < fieldTop {
			t.Fatalf("paddle y = %v above the field", g.player.Y)
		}
	}
	if g.player.Y >= startY {
		t.Errorf("paddle did not move up: %v -> %v", startY, g.player.Y)
	}
}

func TestRestartAfterMatch(t *testing.T) {
	g := newPlayingGame(1)
	g.scores[SidePlayer] = 10
	g.point(SidePlayer)
	if st := g.State(); st.Phase != core.PhaseGameOver || !st.Won {
		t.Fatalf("State = %+v, expected won GameOver", st)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.HandleInput(in)
	if g.State().Phase != core.PhasePlaying || g.Score(SidePlayer) != 0 {
		t.Errorf("State after restart = %+v", g.State())
	}
}
