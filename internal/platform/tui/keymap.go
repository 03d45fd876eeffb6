package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typebrick/typebrick/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
//
// Single letters are the typing challenge, so letter keys cannot double as
// action shortcuts while the ball is in play. Non-letter keys (arrows, space,
// enter, esc, tab, ctrl+c) work in every state; the letter shortcuts
// (a/d move, p pause, m mode, r restart, q quit) are honored only when the
// simulation is not running.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message. running
// reports whether the ball is currently in play, which decides how letter
// keys are routed. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, running bool) bool {
	key := msg.String()

	// Non-letter bindings, always active
	switch key {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return true
	case "left":
		frame.Set(core.ActionLeft)
		return false
	case "right":
		frame.Set(core.ActionRight)
		return false
	case " ", "enter":
		frame.Set(core.ActionStart)
		return false
	case "esc":
		frame.Set(core.ActionPause)
		return false
	case "tab":
		frame.Set(core.ActionMode)
		return false
	}

	// Mid-game, every letter is typing input
	if running {
		if len(key) == 1 {
			frame.PressLetter(rune(key[0]))
		}
		return false
	}

	// Letter shortcuts outside play
	switch key {
	case "q":
		frame.Set(core.ActionQuit)
		return true
	case "a":
		frame.Set(core.ActionLeft)
	case "d":
		frame.Set(core.ActionRight)
	case "p":
		frame.Set(core.ActionPause)
	case "m":
		frame.Set(core.ActionMode)
	case "r":
		frame.Set(core.ActionRestart)
	}

	return false
}

// MapMouseToFrame records a left-button press as a tap. Taps are the touch
// stand-in: tapping the target brick counts as answering it.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.SetTap(msg.X, msg.Y)
	}
}
