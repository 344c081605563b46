package core

import "testing"

func TestPhaseMachineTransitions(t *testing.T) {
	m := NewPhaseMachine(PhaseBegin)

	if m.End() {
		t.Error("Begin -> GameOver should be rejected")
	}
	if m.Restart() {
		t.Error("Begin -> Playing via Restart should be rejected")
	}
	if !m.Start() || !m.Is(PhasePlaying) {
		t.Fatalf("Start() from Begin failed, phase = %v", m.Phase())
	}
	if !m.Pause() || !m.Is(PhasePaused) {
		t.Fatalf("Pause() failed, phase = %v", m.Phase())
	}
	if m.End() {
		t.Error("Paused -> GameOver should be rejected")
	}
	if !m.Resume() || !m.End() {
		t.Fatalf("Resume() then End() failed, phase = %v", m.Phase())
	}
	if m.Start() || m.Resume() || m.Pause() {
		t.Error("GameOver should only leave through Restart")
	}
	if !m.Restart() || !m.Is(PhasePlaying) {
		t.Errorf("Restart() failed, phase = %v", m.Phase())
	}
}
