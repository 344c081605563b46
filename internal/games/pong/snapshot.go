package pong

import "github.com/vovakirdan/gamecenter/internal/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	BallX, BallY  float64
	VX, VY        float64
	PlayerY, CPUY float64
	PlayerScore   int
	CPUScore      int
	Phase         core.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		VX:          g.vx,
		VY:          g.vy,
		PlayerY:     g.player.Y,
		CPUY:        g.cpu.Y,
		PlayerScore: g.scores[SidePlayer],
		CPUScore:    g.scores[SideCPU],
		Phase:       g.phase.Phase(),
	}
}
