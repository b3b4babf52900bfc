package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/square"
)

func runeKey(s string, alt bool) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"backspace undoes", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo, false},
		{"tab cycles speed", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSpeed, false},
		{"left orbits", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionOrbitLeft, false},
		{"down tilts", tea.KeyMsg{Type: tea.KeyDown}, core.ActionTiltDown, false},
		{"colon edits", runeKey(":", false), core.ActionEdit, false},
		{"letters are not actions", runeKey("R", false), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMove(t *testing.T) {
	km := NewKeyMapper()
	cubeMoves := moveSet([]string{"R", "R'", "d", "d'"})
	squareMoves := moveSet([]string{square.Swap, square.SwapInverse, square.TwistToken(1, 0), square.TwistToken(0, -1)})

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		moves map[string]bool
		want  string
		ok    bool
	}{
		{"letter", runeKey("R", false), cubeMoves, "R", true},
		{"alt letter is prime", runeKey("R", true), cubeMoves, "R'", true},
		{"unknown letter", runeKey("Q", false), cubeMoves, "", false},
		{"square key on cube", runeKey("d", false), cubeMoves, "d", true},
		{"swap", runeKey("/", false), squareMoves, square.Swap, true},
		{"swap inverse", runeKey("\\", false), squareMoves, square.SwapInverse, true},
		{"top twist", runeKey("a", false), squareMoves, square.TwistToken(1, 0), true},
		{"bottom twist", runeKey("l", false), squareMoves, square.TwistToken(0, -1), true},
		{"arrow is not a move", tea.KeyMsg{Type: tea.KeyUp}, cubeMoves, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapMove(tt.msg, tt.moves)
			if got != tt.want || ok != tt.ok {
				t.Errorf("MapMove() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	moves := moveSet([]string{"U", "U'"})
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("U", true), moves, &frame) {
		t.Fatal("move key reported quit")
	}
	if len(frame.Moves) != 1 || frame.Moves[0] != "U'" {
		t.Errorf("Moves = %v, want [U']", frame.Moves)
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlR}, moves, &frame)
	if !frame.Has(core.ActionReset) {
		t.Error("ctrl+r did not set ActionReset")
	}

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, moves, &frame) {
		t.Error("ctrl+c did not report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j", false), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionLibrary},
		{runeKey("Q", false), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("z", false), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestPaletteRender(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.DrawText(0, 0, "ab")
	scr.SetCell(2, 0, '#', core.ColorRed)
	scr.SetCell(3, 0, '#', core.ColorRed)

	out := RenderScreen(scr)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "##") {
		t.Errorf("rendered output lost cells: %q", out)
	}

	p := NewPalette("236")
	if _, ok := p[core.ColorOrange]; !ok {
		t.Error("palette has no style for ColorOrange")
	}
}
