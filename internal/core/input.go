package core

import "time"

// Action represents a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionConfirm           // Space, Enter - flap, place, flip, launch
	ActionPause             // Esc, P
	ActionFullscreen        // F11, F
	ActionRestart           // R
	ActionBack              // Backspace - leave the current screen
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerClick
	PointerWheelUp
	PointerWheelDown
)

// PointerEvent is a mouse event in logical screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame collects everything the player did during one tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent
	Digits  []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Unset removes an action from the frame.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// AddDigit appends a digit key press (0-9).
func (f *InputFrame) AddDigit(d int) {
	f.Digits = append(f.Digits, d)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0 && len(f.Digits) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Digits = f.Digits[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	clone.Digits = append([]int(nil), f.Digits...)
	return clone
}

// HoldWindow is how long a key press keeps a continuous-movement intent
// alive. Terminals only report key presses, so a held key shows up as a
// stream of repeats; the window bridges the gap between repeats.
const HoldWindow = 150 * time.Millisecond

// HoldIntent tracks a held direction for continuous movement.
type HoldIntent struct {
	Dir       int // -1, 0 or +1
	remaining time.Duration
}

// Press refreshes the intent in the given direction.
func (h *HoldIntent) Press(dir int) {
	h.Dir = dir
	h.remaining = HoldWindow
}

// Release clears the intent immediately.
func (h *HoldIntent) Release() {
	h.Dir = 0
	h.remaining = 0
}

// Consume returns the active direction for the next dt of game time and
// ages the intent.
func (h *HoldIntent) Consume(dt time.Duration) int {
	if h.remaining <= 0 {
		h.Dir = 0
		return 0
	}
	dir := h.Dir
	h.remaining -= dt
	return dir
}
