package breakout

import "github.com/vovakirdan/gamecenter/internal/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	BallX, BallY float64
	VX, VY       float64
	PaddleX      float64
	Score        int
	Lives        int
	Wave         int
	BricksLeft   int
	Multiplier   float64
	Phase        core.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		BallX:      g.ball.X,
		BallY:      g.ball.Y,
		VX:         g.vx,
		VY:         g.vy,
		PaddleX:    g.paddle.X,
		Score:      g.score,
		Lives:      g.lives,
		Wave:       g.wave,
		BricksLeft: g.wall.Alive(),
		Multiplier: g.multiplier,
		Phase:      g.phase.Phase(),
	}
}
