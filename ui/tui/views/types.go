package views

import (
	"fmt"

	"orrery/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the main model.
type ViewProps struct {
	Width, Height int

	// Component states
	Buttons      []string
	ButtonCursor int
	AnimCursor   float64
	DialView     string
	InputView    string
	ChartView    string
	HelpView     string
	TraceDays    int
}

// View defines the contract for any renderable area of the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

// Zone ids for mouse hit testing.
const (
	ZoneSlider = "slider"
	ZoneInput  = "date_input"
)

// ButtonZone is the zone id of button i.
func ButtonZone(i int) string {
	return fmt.Sprintf("btn_%d", i)
}
