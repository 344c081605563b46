// Package config provides YAML-based configuration for the shell, the
// launcher and every game, plus difficulty presets and progression.
package config

import "time"

// Settings is the full configuration of a Game Center process.
type Settings struct {
	Shell      ShellConfig      `yaml:"shell"`
	Launcher   LauncherConfig   `yaml:"launcher"`
	Audio      AudioConfig      `yaml:"audio"`
	Snake      SnakeConfig      `yaml:"snake"`
	Pong       PongConfig       `yaml:"pong"`
	Breakout   BreakoutConfig   `yaml:"breakout"`
	Flappy     FlappyConfig     `yaml:"flappy"`
	Memory     MemoryConfig     `yaml:"memory"`
	TicTacToe  TicTacToeConfig  `yaml:"tictactoe"`
	Pacman     PacmanConfig     `yaml:"pacman"`
	Difficulty DifficultyPreset `yaml:"-"`
}

// ShellConfig controls the frame loop and window chrome.
type ShellConfig struct {
	FPS           int           `yaml:"fps"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
	WindowScale   float64       `yaml:"window_scale"` // Windowed size relative to the terminal
	Fullscreen    bool          `yaml:"fullscreen"`   // Start in fullscreen mode
}

// LauncherConfig controls the game selection grid.
type LauncherConfig struct {
	Columns    int `yaml:"columns"`
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// AudioConfig maps sound cues to files played by an external command.
type AudioConfig struct {
	Enabled bool              `yaml:"enabled"`
	Command string            `yaml:"command"` // e.g. "paplay" or "afplay"
	Args    []string          `yaml:"args"`    // Extra args placed before the file path
	Dir     string            `yaml:"dir"`     // Base directory for relative cue paths
	Cues    map[string]string `yaml:"cues"`    // cue name -> file
	Music   string            `yaml:"music"`   // Looped while the launcher is open
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	MovesPerSecond    int `yaml:"moves_per_second"`
	SpeedupEvery      int `yaml:"speedup_every"` // Points per +1 move/s
	MaxMovesPerSecond int `yaml:"max_moves_per_second"`
	StartLength       int `yaml:"start_length"`
	CellWidth         int `yaml:"cell_width"` // Terminal columns per grid cell
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Field      PongField        `yaml:"field"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines speeds in cells per second and angles in degrees.
type PongPhysics struct {
	BallSpeed      float64 `yaml:"ball_speed"`
	SpeedUp        float64 `yaml:"speed_up"` // Multiplier applied on every paddle hit
	MaxBallSpeed   float64 `yaml:"max_ball_speed"`
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	AISpeed        float64 `yaml:"ai_speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"`
	ServeAngle     float64 `yaml:"serve_angle"` // Serve direction is random within +/- this
}

// PongField defines proportional layout.
type PongField struct {
	PaddleHeightRatio float64 `yaml:"paddle_height_ratio"`
	MinPaddleHeight   int     `yaml:"min_paddle_height"`
	PaddleOffset      int     `yaml:"paddle_offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int           `yaml:"win_score"`
	ServeDelay time.Duration `yaml:"serve_delay"`
}

// BreakoutConfig contains all configuration for Brick Breaker.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines ball speed and the speed ramp.
type BreakoutPhysics struct {
	BallSpeed      float64       `yaml:"ball_speed"`
	BallRadius     float64       `yaml:"ball_radius"`
	MaxBounceAngle float64       `yaml:"max_bounce_angle"`
	RampInterval   time.Duration `yaml:"ramp_interval"`
	RampStep       float64       `yaml:"ramp_step"`
	MaxMultiplier  float64       `yaml:"max_multiplier"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	WidthRatio float64 `yaml:"width_ratio"`
	MinWidth   int     `yaml:"min_width"`
	Speed      float64 `yaml:"speed"`
}

// BreakoutBricks defines the brick wall. Width comes from Columns.
type BreakoutBricks struct {
	Rows      int   `yaml:"rows"`
	Columns   int   `yaml:"columns"`
	TopOffset int   `yaml:"top_offset"`
	RowPoints []int `yaml:"row_points"` // Points per row, top first; last value repeats
}

// BreakoutGameplay defines lives.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines speeds in cells per second.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// FlappyPipes defines pipe spawning and the playable band.
type FlappyPipes struct {
	Width         int           `yaml:"width"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	GapRatio      float64       `yaml:"gap_ratio"` // Gap height relative to field height
	MinGap        int           `yaml:"min_gap"`
	TopMargin     int           `yaml:"top_margin"`
	BottomMargin  int           `yaml:"bottom_margin"`
	GroundRatio   float64       `yaml:"ground_ratio"`
}

// FlappyPlayer defines the bird.
type FlappyPlayer struct {
	XRatio float64 `yaml:"x_ratio"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// MemoryConfig contains all configuration for Memory Match.
type MemoryConfig struct {
	Rows          int           `yaml:"rows"`
	Cols          int           `yaml:"cols"`
	FlipBackDelay time.Duration `yaml:"flip_back_delay"`
	PairPoints    int           `yaml:"pair_points"`
	MissPenalty   int           `yaml:"miss_penalty"`
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Size      int `yaml:"size"`
	WinLength int `yaml:"win_length"` // 0 picks a length from the size
	MinSize   int `yaml:"min_size"`
	MaxSize   int `yaml:"max_size"`
}

// PacmanConfig describes the external Pacman executable.
type PacmanConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Dir     string   `yaml:"dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, or seconds, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64       `yaml:"speed_multiplier"`
	GapReduction      float64       `yaml:"gap_reduction"`
	IntervalReduction time.Duration `yaml:"interval_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyPreset adjusts every game's difficulty for the preset.
func (s *Settings) ApplyPreset(preset DifficultyPreset) {
	s.Difficulty = preset
	applyPreset(&s.Pong.Difficulty, preset)
	applyPreset(&s.Breakout.Difficulty, preset)
	applyPreset(&s.Flappy.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		s.Breakout.Gameplay.Lives = 5
		s.Snake.MaxMovesPerSecond = s.Snake.MovesPerSecond + 5
	case DifficultyHard:
		s.Breakout.Gameplay.Lives = 2
		s.Snake.MovesPerSecond += 4
		s.Memory.FlipBackDelay /= 2
	}
}
