package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // Up arrow, k - move cursor up
	ActionDown                 // Down arrow, j - move cursor down
	ActionLeft                 // Left arrow, h - move cursor left
	ActionRight                // Right arrow, l - move cursor right
	ActionPlace                // Enter, Space - place a mark under the cursor
	ActionNewGame              // N - start a new game
	ActionResetScore           // R - zero both scores
	ActionChangeStarter        // C - toggle who opens the next game
	ActionHistory              // H - show recorded results
	ActionQuit                 // Q, Ctrl+C - exit
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
	case ActionPlace:
		return "Place"
	case ActionNewGame:
		return "NewGame"
	case ActionResetScore:
		return "ResetScore"
	case ActionChangeStarter:
		return "ChangeStarter"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for a single update.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pick is a direct cell choice in keypad order: 1..3 top row,
	// 4..6 middle, 7..9 bottom. Zero means no pick.
	Pick int
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

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Pick == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pick = 0
}
