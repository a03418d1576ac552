package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStepLeft         // A - step to the left neighbor
	ActionStepRight        // D - step to the right neighbor
	ActionStepUpLeft
	ActionStepUpRight
	ActionStepDownLeft
	ActionStepDownRight
	ActionToggleEdges // G - toggle hex edge drawing (rendering only)
	ActionConfirm     // Enter - confirm selection in menu
	ActionBack        // B, Escape - go back to menu
	ActionRestart     // R - restart the session
	ActionQuit        // Ctrl+C - exit game/session
	ActionPause       // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStepLeft:
		return "StepLeft"
	case ActionStepRight:
		return "StepRight"
	case ActionStepUpLeft:
		return "StepUpLeft"
	case ActionStepUpRight:
		return "StepUpRight"
	case ActionStepDownLeft:
		return "StepDownLeft"
	case ActionStepDownRight:
		return "StepDownRight"
	case ActionToggleEdges:
		return "ToggleEdges"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the pointer events a game can receive.
type PointerKind int

const (
	PointerMove      PointerKind = iota // pointer moved over the screen
	PointerPrimary                      // primary (left) click
	PointerSecondary                    // secondary (right) click
)

// PointerEvent carries a pointer event in screen-cell coordinates.
// The game maps these into its own playfield space.
type PointerEvent struct {
	X, Y int
	Kind PointerKind
}

// InputFrame represents the input gathered for a single simulation tick:
// the set of triggered actions plus any pointer events, in arrival order.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []PointerEvent
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

// AddPointer appends a pointer event for this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointers = append(clone.Pointers, f.Pointers...)
	return clone
}
