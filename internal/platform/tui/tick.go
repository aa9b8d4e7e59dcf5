// Package tui provides the Bubble Tea integration for Surimi Survivors.
// It handles the terminal UI loop, input mapping, menus, the scoreboard,
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fpsCounter measures delivered ticks per second over a sliding one-second window.
type fpsCounter struct {
	windowStart time.Time
	frames      int
	fps         int
}

// Tick records a frame delivered at t.
func (c *fpsCounter) Tick(t time.Time) {
	if c.windowStart.IsZero() {
		c.windowStart = t
	}
	c.frames++
	if elapsed := t.Sub(c.windowStart); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.windowStart = t
	}
}

// FPS returns the rate measured over the last full window.
func (c *fpsCounter) FPS() int {
	return c.fps
}
