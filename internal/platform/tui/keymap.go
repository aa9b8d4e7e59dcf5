package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DefaultHoldTicks is how many ticks a movement or fire key stays held after
// its last key event. Terminals report presses only, repeated at the
// keyboard auto-repeat rate, so a press is stretched until the next repeat.
const DefaultHoldTicks = 8

// opposite pairs directions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns key presses into per-tick input frames.
// Directions and fire are held for a number of ticks; everything else
// fires once on the next frame.
type HeldInput struct {
	hold int
	held map[core.Action]int
	once core.InputFrame
}

// NewHeldInput creates an input accumulator. hold <= 0 uses DefaultHoldTicks.
func NewHeldInput(hold int) HeldInput {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return HeldInput{
		hold: hold,
		held: make(map[core.Action]int),
		once: core.NewInputFrame(),
	}
}

// Press records a key event for action.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		delete(h.held, opposite[a])
		h.held[a] = h.hold
	case core.ActionFire:
		h.held[a] = h.hold
	default:
		h.once.Set(a)
	}
}

// Frame returns the input for the coming tick.
func (h *HeldInput) Frame() core.InputFrame {
	f := h.once.Clone()
	for a := range h.held {
		f.Set(a)
	}
	return f
}

// Advance ages held keys by one tick and drops one-shot actions.
func (h *HeldInput) Advance() {
	h.once.Clear()
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	h.once.Clear()
	for a := range h.held {
		delete(h.held, a)
	}
}
