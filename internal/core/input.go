package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move paddle left
	ActionRight          // Right arrow, D, L - move paddle right
	ActionStop           // Space, Down, S - stop paddle
	ActionConfirm        // Enter - confirm name entry
	ActionRestart        // R key - new session after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionStop:
		return "Stop"
	case ActionConfirm:
		return "Confirm"
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

// IsMove reports whether the action is a paddle movement command.
func (a Action) IsMove() bool {
	return a == ActionLeft || a == ActionRight || a == ActionStop
}

// Direction is the horizontal paddle command.
type Direction int

const (
	DirStop  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "stop"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Move is the most recent movement action seen this frame, or ActionNone.
	// Later commands supersede earlier ones within the same frame.
	Move Action
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
	if a.IsMove() {
		f.Move = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the paddle command carried by this frame.
// ok is false when the frame carries no movement command.
func (f InputFrame) Direction() (d Direction, ok bool) {
	switch f.Move {
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	case ActionStop:
		return DirStop, true
	}
	return DirStop, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Move = ActionNone
}
