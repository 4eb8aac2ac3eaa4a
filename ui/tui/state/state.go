package state

import (
	"orrery/internal/ephemeris"
	"orrery/internal/layout"
	"orrery/internal/output"
)

// Focus is the control that receives key presses.
type Focus int

const (
	FocusButtons Focus = iota
	FocusText
)

// AppState is the snapshot the views render. It is rebuilt from the date
// controller after every event.
type AppState struct {
	Text       string
	OffsetDays float64
	Fraction   float64 // slider knob position in [0, 1]
	Angles     ephemeris.Angles
	Report     output.DialReport
	TraceBody  ephemeris.Body
	Layout     layout.Layout
	Focus      Focus
	Err        error
}
