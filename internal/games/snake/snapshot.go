package snake

import "github.com/vovakirdan/gamecenter/internal/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Moves    int
	Score    int
	SnakeLen int
	Head     Point
	Dir      Direction
	Food     Point
	Speed    int
	Phase    core.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Moves:    g.moves,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     head,
		Dir:      g.direction,
		Food:     g.food,
		Speed:    g.MovesPerSecond(),
		Phase:    g.phase.Phase(),
	}
}
