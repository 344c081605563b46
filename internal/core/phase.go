package core

// PhaseMachine enforces the legal lifecycle transitions:
//
//	Begin -> Playing           (first input)
//	Playing <-> Paused         (pause toggle)
//	Playing -> GameOver        (loss or win)
//	GameOver -> Playing        (explicit restart only)
//
// Illegal transitions are ignored and reported as false.
type PhaseMachine struct {
	phase Phase
}

// NewPhaseMachine creates a machine in the given phase.
func NewPhaseMachine(initial Phase) PhaseMachine {
	return PhaseMachine{phase: initial}
}

// Phase returns the current phase.
func (m *PhaseMachine) Phase() Phase {
	return m.phase
}

// Is reports whether the machine is in phase p.
func (m *PhaseMachine) Is(p Phase) bool {
	return m.phase == p
}

// Reset forces the machine into the given phase. Games call it from their
// own Reset; the shell calls it to mirror the phase a game reports.
func (m *PhaseMachine) Reset(initial Phase) {
	m.phase = initial
}

// Start moves Begin to Playing.
func (m *PhaseMachine) Start() bool {
	return m.move(PhaseBegin, PhasePlaying)
}

// Pause moves Playing to Paused.
func (m *PhaseMachine) Pause() bool {
	return m.move(PhasePlaying, PhasePaused)
}

// Resume moves Paused to Playing.
func (m *PhaseMachine) Resume() bool {
	return m.move(PhasePaused, PhasePlaying)
}

// End moves Playing to GameOver.
func (m *PhaseMachine) End() bool {
	return m.move(PhasePlaying, PhaseGameOver)
}

// Restart moves GameOver to Playing.
func (m *PhaseMachine) Restart() bool {
	return m.move(PhaseGameOver, PhasePlaying)
}

func (m *PhaseMachine) move(from, to Phase) bool {
	if m.phase != from {
		return false
	}
	m.phase = to
	return true
}
