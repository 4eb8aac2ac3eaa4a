package views

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"orrery/internal/layout"
	"orrery/ui/tui/state"
)

// RenderScreen composes the dial and the controls according to the current
// layout. Rects are in square units, two per terminal row.
func RenderScreen(s state.AppState, props ViewProps) string {
	l := s.Layout

	dp := props
	dp.Width, dp.Height = l.Display.W, l.Display.H/2
	dialArea := DialView{}.Render(s, dp)

	cp := props
	cp.Width, cp.Height = l.Controls.W, props.Height
	if l.Orientation == layout.Vertical {
		cp.Height = props.Height - dp.Height
	}
	controls := lipgloss.Place(cp.Width, cp.Height, lipgloss.Left, lipgloss.Top,
		ControlsView{}.Render(s, cp))

	var screen string
	if l.Orientation == layout.Vertical {
		screen = lipgloss.JoinVertical(lipgloss.Left, dialArea, controls)
	} else {
		screen = lipgloss.JoinHorizontal(lipgloss.Top, dialArea, controls)
	}
	return zone.Scan(screen)
}
