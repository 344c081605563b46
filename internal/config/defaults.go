package config

import (
	"embed"
	"time"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// Default returns the hard-coded configuration used when neither a config
// file nor the embedded YAML can be read.
func Default() *Settings {
	return &Settings{
		Shell:      DefaultShellConfig(),
		Launcher:   DefaultLauncherConfig(),
		Audio:      DefaultAudioConfig(),
		Snake:      DefaultSnakeConfig(),
		Pong:       DefaultPongConfig(),
		Breakout:   DefaultBreakoutConfig(),
		Flappy:     DefaultFlappyConfig(),
		Memory:     DefaultMemoryConfig(),
		TicTacToe:  DefaultTicTacToeConfig(),
		Pacman:     DefaultPacmanConfig(),
		Difficulty: DifficultyNormal,
	}
}

// DefaultShellConfig returns the default shell configuration.
func DefaultShellConfig() ShellConfig {
	return ShellConfig{
		FPS:           60,
		MaxFrameDelta: 100 * time.Millisecond,
		WindowScale:   0.8,
		Fullscreen:    false,
	}
}

// DefaultLauncherConfig returns the default launcher configuration.
func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Columns:    3,
		TileWidth:  22,
		TileHeight: 5,
	}
}

// DefaultAudioConfig returns the default audio configuration.
// Audio is off unless a player command is configured.
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled: false,
		Command: "paplay",
		Dir:     "~/.gamecenter/sounds",
		Cues: map[string]string{
			"flap":   "flap.wav",
			"hit":    "hit.wav",
			"bounce": "bounce.wav",
			"score":  "score.wav",
			"eat":    "eat.wav",
			"brick":  "brick.wav",
			"flip":   "flip.wav",
			"match":  "match.wav",
			"fail":   "fail.wav",
			"win":    "win.wav",
			"lose":   "lose.wav",
		},
		Music: "background.wav",
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		MovesPerSecond:    10,
		SpeedupEvery:      5,
		MaxMovesPerSecond: 20,
		StartLength:       1,
		CellWidth:         2,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:      30,
			SpeedUp:        1.1,
			MaxBallSpeed:   80,
			PaddleSpeed:    30,
			AISpeed:        20,
			MaxBounceAngle: 60,
			ServeAngle:     45,
		},
		Field: PongField{
			PaddleHeightRatio: 0.2,
			MinPaddleHeight:   3,
			PaddleOffset:      2,
		},
		Gameplay: PongGameplay{
			WinScore:   11,
			ServeDelay: time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultBreakoutConfig returns the default Brick Breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:      20,
			BallRadius:     0.5,
			MaxBounceAngle: 60,
			RampInterval:   10 * time.Second,
			RampStep:       0.25,
			MaxMultiplier:  3,
		},
		Paddle: BreakoutPaddle{
			WidthRatio: 0.125,
			MinWidth:   5,
			Speed:      50,
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Columns:   20,
			TopOffset: 3,
			RowPoints: []int{50, 40, 30, 20, 10},
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  ProgressionConfig{Type: "none"},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      60,
			FlapImpulse:  -18,
			MaxFallSpeed: 25,
			ScrollSpeed:  20,
		},
		Pipes: FlappyPipes{
			Width:         5,
			SpawnInterval: 1800 * time.Millisecond,
			GapRatio:      1 / 3.5,
			MinGap:        5,
			TopMargin:     2,
			BottomMargin:  2,
			GroundRatio:   0.125,
		},
		Player: FlappyPlayer{
			XRatio: 0.2,
			Width:  2,
			Height: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				GapReduction:      2,
				IntervalReduction: 500 * time.Millisecond,
			},
		},
	}
}

// DefaultMemoryConfig returns the default Memory Match configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Rows:          4,
		Cols:          4,
		FlipBackDelay: time.Second,
		PairPoints:    100,
		MissPenalty:   10,
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Size:      3,
		WinLength: 0,
		MinSize:   3,
		MaxSize:   9,
	}
}

// DefaultPacmanConfig returns the default external Pacman launcher.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Command: "python3",
		Args:    []string{"run.py"},
		Dir:     "Pacman_main",
	}
}
