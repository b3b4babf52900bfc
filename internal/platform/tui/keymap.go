package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/square"
)

// KeyMapper translates Bubble Tea key messages to player actions and move
// tokens. It doubles as the help.KeyMap of the play screen.
type KeyMapper struct {
	Undo       key.Binding
	Reset      key.Binding
	Edit       key.Binding
	Speed      key.Binding
	NextPuzzle key.Binding
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	TiltUp     key.Binding
	TiltDown   key.Binding
	Hover      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
	Move       key.Binding
	Prime      key.Binding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Undo:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "undo")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "reset")),
		Edit:       key.NewBinding(key.WithKeys(":", "enter"), key.WithHelp(":", "algorithm")),
		Speed:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "speed")),
		NextPuzzle: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^n", "next puzzle")),
		OrbitLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "orbit")),
		OrbitRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "orbit")),
		TiltUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "tilt")),
		TiltDown:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "tilt")),
		Hover:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^o", "back view")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "screenshot")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
		Move:       key.NewBinding(key.WithKeys("U", "R", "F"), key.WithHelp("letter", "move")),
		Prime:      key.NewBinding(key.WithKeys("alt+U"), key.WithHelp("alt+letter", "prime")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{km.Move, km.Prime, km.Undo, km.Edit, km.Speed, km.Back}
}

// FullHelp returns key bindings for the full help view.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Move, km.Prime, km.Undo, km.Reset, km.Edit},
		{km.OrbitLeft, km.OrbitRight, km.TiltUp, km.TiltDown, km.Hover},
		{km.Speed, km.NextPuzzle, km.Screenshot, km.Back, km.Quit},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.Undo):
		return core.ActionUndo, false
	case key.Matches(msg, km.Reset):
		return core.ActionReset, false
	case key.Matches(msg, km.Edit):
		return core.ActionEdit, false
	case key.Matches(msg, km.Speed):
		return core.ActionSpeed, false
	case key.Matches(msg, km.NextPuzzle):
		return core.ActionNextPuzzle, false
	case key.Matches(msg, km.OrbitLeft):
		return core.ActionOrbitLeft, false
	case key.Matches(msg, km.OrbitRight):
		return core.ActionOrbitRight, false
	case key.Matches(msg, km.TiltUp):
		return core.ActionTiltUp, false
	case key.Matches(msg, km.TiltDown):
		return core.ActionTiltDown, false
	case key.Matches(msg, km.Hover):
		return core.ActionHover, false
	}
	return core.ActionNone, false
}

// squareKeys drive the square, whose tokens are not letters.
var squareKeys = map[string]string{
	"/":  square.Swap,
	"\\": square.SwapInverse,
	"a":  square.TwistToken(1, 0),
	"d":  square.TwistToken(-1, 0),
	"j":  square.TwistToken(0, 1),
	"l":  square.TwistToken(0, -1),
}

// MapMove translates a key to a move token of the given vocabulary. A
// letter is its own token; with alt held it becomes the prime.
func (km *KeyMapper) MapMove(msg tea.KeyMsg, moves map[string]bool) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	k := string(msg.Runes)
	if tok, ok := squareKeys[k]; ok && moves[tok] {
		return tok, true
	}
	if msg.Alt {
		k += "'"
	}
	if moves[k] {
		return k, true
	}
	return "", false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, moves map[string]bool, frame *core.InputFrame) bool {
	if tok, ok := km.MapMove(msg, moves); ok {
		frame.PushMove(tok)
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
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
	MenuActionLibrary
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch strings.ToLower(msg.String()) {
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
	case "tab":
		return MenuActionLibrary
	}

	return MenuActionNone
}

// moveSet indexes a move list for MapMove.
func moveSet(moves []string) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m] = true
	}
	return set
}
