package flappy

import "github.com/vovakirdan/gamecenter/internal/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	BirdY    float64
	VY       float64
	Score    int
	Pipes    int
	LastGapY float64
	Phase    core.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		BirdY: g.bird.Y,
		VY:    g.vy,
		Score: g.score,
		Pipes: len(g.pipes),
		Phase: g.phase.Phase(),
	}
	if n := len(g.pipes); n > 0 {
		s.LastGapY = g.pipes[n-1].GapY
	}
	return s
}
