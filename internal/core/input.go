package core

// Action is a semantic input, abstracted from keys and mouse buttons.
type Action uint8

const (
	ActionNone    Action = iota
	ActionEngage         // Thrust: mouse button held or space latched
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionEngage:  "Engage",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions for one simulation tick. ActionEngage is
// sampled once per tick by the platform; discrete actions are set for the
// tick they were pressed in. The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
