package views

import (
	"github.com/charmbracelet/lipgloss"

	"orrery/ui/tui/state"
)

// DialView centres the pre-rendered dial in the display area.
type DialView struct{}

func (v DialView) Render(s state.AppState, props ViewProps) string {
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, props.DialView)
}
