package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionStart          // Space, Enter - start/launch
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionMode           // M key - toggle letter/classic mode
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMode:
		return "Mode"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, any
// printable letters pressed, and at most one tap position (terminal mouse
// click standing in for touch).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Letters holds lowercase letters (a-z) pressed during this frame.
	Letters []rune

	// Tap position in screen cells. Valid only when HasTap is true.
	TapX, TapY int
	HasTap     bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PressLetter records a letter press for this frame.
// Uppercase input is folded to lowercase; non-letters are ignored.
func (f *InputFrame) PressLetter(r rune) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return
	}
	f.Letters = append(f.Letters, r)
}

// SetTap records a tap at the given screen cell.
// Only the latest tap in a frame matters.
func (f *InputFrame) SetTap(x, y int) {
	f.TapX = x
	f.TapY = y
	f.HasTap = true
}

// Clear resets all actions, letters and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
	f.HasTap = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Letters = append(clone.Letters, f.Letters...)
	clone.TapX = f.TapX
	clone.TapY = f.TapY
	clone.HasTap = f.HasTap
	return clone
}
