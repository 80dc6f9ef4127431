// Package tui runs games in a terminal with Bubble Tea: the fixed-rate tick
// loop, key and mouse mapping, the menu and scoreboard screens, and the SSH
// front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sunskim/internal/core"
)

// TickMsg asks the model to advance one simulation step.
type TickMsg time.Time

func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
