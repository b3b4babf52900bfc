// Package tui provides the Bubble Tea integration for the twisty player.
// It handles the terminal UI loop, input mapping, and puzzle playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-twisty/internal/core"
)

// TickMsg is sent to advance animations by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
