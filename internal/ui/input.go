package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-planets/internal/scroll"
)

// handleMouse feeds wheel and drag gestures into the scroll pipeline.
// A left-button drag stands in for a single-finger swipe.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.now()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.pipeline.HandleWheel(now, scroll.Wheel(-1))
	case msg.Button == tea.MouseButtonWheelDown:
		m.pipeline.HandleWheel(now, scroll.Wheel(1))
	case msg.Button == tea.MouseButtonWheelLeft, msg.Button == tea.MouseButtonWheelRight:
		m.pipeline.HandleWheel(now, scroll.Wheel(0))

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.touching = true
		m.pipeline.TouchStart(float64(msg.Y))
	case msg.Action == tea.MouseActionRelease && m.touching:
		m.touching = false
		m.pipeline.TouchEnd(now, float64(msg.Y))
	}
}
