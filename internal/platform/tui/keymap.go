package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// isHeld reports whether an action is a held (level) input. Everything else
// is a one-shot that applies to the next tick only.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// HeldKeys turns key press events into held state. Terminals only report
// presses and auto-repeats, never releases, so a press holds its action for
// a few ticks and every repeat extends it. The first press waits out the
// usual auto-repeat delay; later repeats only need to bridge the repeat
// interval.
type HeldKeys struct {
	initial int
	repeat  int
	ticks   map[core.Action]int
	pending core.InputFrame
}

// NewHeldKeys creates a held-key tracker.
func NewHeldKeys(initialHoldTicks, repeatHoldTicks int) *HeldKeys {
	return &HeldKeys{
		initial: initialHoldTicks,
		repeat:  repeatHoldTicks,
		ticks:   make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press for an action.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.pending.Set(a)
		return
	}

	// Pressing a direction releases its opposite at once.
	if opp := a.Opposite(); opp != core.ActionNone {
		delete(h.ticks, opp)
	}

	if _, held := h.ticks[a]; held {
		h.ticks[a] = max(h.ticks[a], h.repeat)
	} else {
		h.ticks[a] = h.initial
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.ticks)
	h.pending.Clear()
}

// Frame returns the input for the coming tick and ages held actions by one
// tick. One-shot actions are delivered once.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for a, left := range h.ticks {
		frame.Set(a)
		if left <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = left - 1
		}
	}
	return frame
}

// Held reports whether an action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.ticks[a]
	return ok
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
