package flappy

import "github.com/vovakirdan/gamecenter/internal/core"

// Pipe is a pair of obstacles with a passable gap between them.
type Pipe struct {
	X      float64 // Left edge
	Width  float64
	GapY   float64 // Top of the gap
	Gap    float64 // Gap height
	Scored bool
}

// Right returns the trailing edge of the pair.
func (p Pipe) Right() float64 { return p.X + p.Width }

// Top returns the upper obstacle, from the ceiling to the gap.
func (p Pipe) Top() core.Box {
	return core.Box{X: p.X, Y: 0, W: p.Width, H: p.GapY}
}

// Bottom returns the lower obstacle, from the gap to the ground.
func (p Pipe) Bottom(groundY float64) core.Box {
	y := p.GapY + p.Gap
	return core.Box{X: p.X, Y: y, W: p.Width, H: groundY - y}
}

// Collides reports whether the box touches either obstacle.
func (p Pipe) Collides(b core.Box, groundY float64) bool {
	return b.Intersects(p.Top()) || b.Intersects(p.Bottom(groundY))
}

// gapBand returns the allowed range for the top of a gap of the given
// height: [top, ground-gap-bottom]. The range collapses to top when the
// field is too short.
func gapBand(groundY, gap float64, top, bottom int) (lo, hi float64) {
	lo = float64(top)
	hi = groundY - gap - float64(bottom)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
