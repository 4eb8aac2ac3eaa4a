package views

import (
	"os"
	"strings"
	"testing"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"orrery/internal/ephemeris"
	"orrery/internal/layout"
	"orrery/internal/output"
	"orrery/ui/tui/state"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestKnobCellAndFractionAt(t *testing.T) {
	tests := []struct {
		f     float64
		width int
		cell  int
	}{
		{0, 11, 0},
		{1, 11, 10},
		{0.5, 11, 5},
		{-3, 11, 0},
		{7, 11, 10},
	}
	for _, tt := range tests {
		if got := KnobCell(tt.f, tt.width); got != tt.cell {
			t.Errorf("KnobCell(%v, %d) = %d, want %d", tt.f, tt.width, got, tt.cell)
		}
	}

	for x := 0; x < 11; x++ {
		if got := KnobCell(FractionAt(x, 11), 11); got != x {
			t.Errorf("cell %d round trips to %d", x, got)
		}
	}
	if FractionAt(-4, 11) != 0 || FractionAt(40, 11) != 1 {
		t.Error("Expected FractionAt to clamp")
	}
}

func TestSliderBarWidth(t *testing.T) {
	for _, f := range []float64{0, 0.3, 1} {
		bar := SliderBar(f, 12)
		if n := strings.Count(bar, "━") + strings.Count(bar, "─") + strings.Count(bar, "●"); n != 12 {
			t.Errorf("f=%v: %d cells, want 12", f, n)
		}
	}
}

func TestButtonZone(t *testing.T) {
	if ButtonZone(3) != "btn_3" {
		t.Errorf("ButtonZone(3) = %q", ButtonZone(3))
	}
}

func TestRenderScreen(t *testing.T) {
	sel := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := state.AppState{
		Text:      "2024-01-01 12:00",
		Fraction:  0.5,
		Report:    output.BuildReport(sel, 0, ephemeris.Angles{10, 20, 30, 280, 40, 50, 60}),
		TraceBody: ephemeris.Sun,
		Layout:    layout.Relayout(layout.Size{W: 100, H: 60}),
	}
	props := ViewProps{
		Width:     100,
		Height:    30,
		Buttons:   []string{"Now", "-Day", "+Day"},
		DialView:  "DIAL",
		InputView: s.Text,
		TraceDays: 30,
	}

	out := RenderScreen(s, props)
	for _, want := range []string{"DIAL", "UTC Date/Time:", "2024-01-01 12:00", "+Day", "Capricorn", "ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen is missing %q", want)
		}
	}
}
