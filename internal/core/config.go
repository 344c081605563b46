package core

// RuntimeConfig is passed to games on Reset.
// Games derive all their sizes from the logical width and height.
type RuntimeConfig struct {
	ScreenW  int   // Logical screen width in cells
	ScreenH  int   // Logical screen height in cells
	TickRate int   // Frames per second the shell is driven at
	Seed     int64 // RNG seed for deterministic gameplay
}

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseBegin Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "Begin"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is what a game reports to the shell after each update.
type GameState struct {
	Phase Phase
	Score int
	Won   bool // Meaningful only in PhaseGameOver
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Cue names a sound effect a game wants played.
type Cue string

const (
	CueFlap   Cue = "flap"
	CueHit    Cue = "hit"
	CueBounce Cue = "bounce"
	CueScore  Cue = "score"
	CueEat    Cue = "eat"
	CueBrick  Cue = "brick"
	CueFlip   Cue = "flip"
	CueMatch  Cue = "match"
	CueFail   Cue = "fail"
	CueWin    Cue = "win"
	CueLose   Cue = "lose"
)

// StepResult is returned by Update.
type StepResult struct {
	State GameState
	Cues  []Cue
}
