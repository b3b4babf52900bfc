package core

// Action represents a semantic player action, abstracted from physical key
// presses. Move tokens travel next to actions in InputFrame.Moves.
type Action int

const (
	ActionNone       Action = iota
	ActionUndo              // Backspace - reverse the last move
	ActionReset             // Ctrl+R - restore the solved state
	ActionPlay              // Enter - parse and play the typed algorithm
	ActionSpeed             // Tab - cycle speed presets
	ActionNextPuzzle        // Ctrl+N - switch to the next registered puzzle
	ActionOrbitLeft         // Left arrow - rotate the camera
	ActionOrbitRight        // Right arrow
	ActionTiltUp            // Up arrow
	ActionTiltDown          // Down arrow
	ActionHover             // Ctrl+H - toggle the view from behind
	ActionEdit              // / or : - focus the algorithm prompt
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // Esc - go back to menu
	ActionQuit              // Ctrl+C - exit player/session
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionUndo:       "Undo",
	ActionReset:      "Reset",
	ActionPlay:       "Play",
	ActionSpeed:      "Speed",
	ActionNextPuzzle: "NextPuzzle",
	ActionOrbitLeft:  "OrbitLeft",
	ActionOrbitRight: "OrbitRight",
	ActionTiltUp:     "TiltUp",
	ActionTiltDown:   "TiltDown",
	ActionHover:      "Hover",
	ActionEdit:       "Edit",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects everything the player triggered between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Moves holds move tokens in the order they were typed.
	Moves []string
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
	return f.Actions[a]
}

// PushMove queues a move token.
func (f *InputFrame) PushMove(token string) {
	f.Moves = append(f.Moves, token)
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Moves) == 0
}

// Clear resets all actions and moves for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Moves = f.Moves[:0]
}
