package config

import (
	"math"
	"time"
)

// DifficultyManager derives in-run game parameters from score or elapsed
// game time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score int, elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base from base to base*(1+speed_multiplier) across levels.
func (d *DifficultyManager) Speed(base float64, score int, elapsed time.Duration) float64 {
	return base * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Gap shrinks base by up to gap_reduction, never below floor.
func (d *DifficultyManager) Gap(base, floor float64, score int, elapsed time.Duration) float64 {
	g := base - d.Level(score, elapsed)*d.cfg.Scaling.GapReduction
	return math.Max(g, floor)
}

// Interval shortens base by up to interval_reduction, never below floor.
func (d *DifficultyManager) Interval(base, floor time.Duration, score int, elapsed time.Duration) time.Duration {
	cut := time.Duration(d.Level(score, elapsed) * float64(d.cfg.Scaling.IntervalReduction))
	if base-cut < floor {
		return floor
	}
	return base - cut
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
