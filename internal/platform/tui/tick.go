// Package tui is the terminal frontend. A Bubble Tea program hosts the
// frame driver: keys and mouse drags become raw input events, frame
// messages drive StepFrame, and the rendered screen is styled with
// lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame
// message at the given frame rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
