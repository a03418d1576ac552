package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexstar/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes the bindings and makes them testable.
//
// Movement mirrors the six hex directions on the left hand:
//
//	q w     up-left / up-right
//	a d     left / right
//	z x     down-left / down-right
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys. Plain q steps up-left here, unlike the menus.
	switch key {
	case "ctrl+c":
		return core.ActionQuit, true
	}

	switch key {
	case "q":
		return core.ActionStepUpLeft, false
	case "w", "up":
		return core.ActionStepUpRight, false
	case "a", "left":
		return core.ActionStepLeft, false
	case "d", "right":
		return core.ActionStepRight, false
	case "z", "down":
		return core.ActionStepDownLeft, false
	case "x":
		return core.ActionStepDownRight, false
	case "g":
		return core.ActionToggleEdges, false
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

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event.
// Returns false when the message carries nothing a game cares about, such as
// releases and wheel movement.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
		return ev, true
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Kind = core.PointerPrimary
			return ev, true
		case tea.MouseButtonRight:
			ev.Kind = core.PointerSecondary
			return ev, true
		}
	}

	return core.PointerEvent{}, false
}

// MapMouseToFrame appends a pointer event to the frame if the mouse message
// is relevant.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if ev, ok := km.MapMouse(msg); ok {
		frame.AddPointer(ev)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
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
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
