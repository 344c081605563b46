package breakout

import "github.com/vovakirdan/gamecenter/internal/core"

// Brick is a single destructible brick.
type Brick struct {
	core.Box
	Row    int
	Points int
	Alive  bool
}

// Wall is the brick layout for one wave.
type Wall struct {
	Bricks []Brick
}

// NewWall lays out rows x cols bricks across the full field width, so brick
// width is width/cols. Row i sits at top+i. Points come from rowPoints, top
// first, with the last value repeating.
func NewWall(width float64, top, rows, cols int, rowPoints []int) *Wall {
	w := &Wall{}
	if cols <= 0 || rows <= 0 {
		return w
	}
	bw := width / float64(cols)
	for r := 0; r < rows; r++ {
		pts := 10
		if len(rowPoints) > 0 {
			pts = rowPoints[core.Min(r, len(rowPoints)-1)]
		}
		for c := 0; c < cols; c++ {
			w.Bricks = append(w.Bricks, Brick{
				Box:    core.Box{X: float64(c) * bw, Y: float64(top + r), W: bw, H: 1},
				Row:    r,
				Points: pts,
				Alive:  true,
			})
		}
	}
	return w
}

// Alive returns the number of bricks still standing.
func (w *Wall) Alive() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Hit returns the index of the first live brick the ball touches, or -1.
func (w *Wall) Hit(ball core.Circle) int {
	for i := range w.Bricks {
		if w.Bricks[i].Alive && ball.Overlaps(w.Bricks[i].Box) {
			return i
		}
	}
	return -1
}
