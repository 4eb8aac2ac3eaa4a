package components

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"orrery/internal/assets"
	"orrery/internal/dial"
	"orrery/internal/ephemeris"
)

func testRenderer(t *testing.T) *dial.Renderer {
	t.Helper()
	var radii [ephemeris.BodyCount]float64
	for i, r := range dial.ReferenceRadii {
		radii[i] = r / 10
	}
	r, err := dial.NewRenderer(assets.Generate(radii, assets.GenerateOptions{Band: 3}), radii)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestHalfBlocksDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 6))
	for x := 0; x < 7; x++ {
		img.SetRGBA(x, 0, color.RGBA{255, 0, 0, 255})
	}

	out := HalfBlocks(img)
	if got := lipgloss.Height(out); got != 3 {
		t.Errorf("Expected 3 rows, got %d", got)
	}
	if got := lipgloss.Width(out); got != 7 {
		t.Errorf("Expected 7 columns, got %d", got)
	}
	if got := strings.Count(out, "▀"); got != 21 {
		t.Errorf("Expected 21 half blocks, got %d", got)
	}
}

func TestHalfBlocksOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	if got := lipgloss.Height(HalfBlocks(img)); got != 2 {
		t.Errorf("Expected 2 rows for 3 pixel rows, got %d", got)
	}
}

func TestDialWidgetRedrawAndResize(t *testing.T) {
	d := NewDialWidget(testRenderer(t), color.White)

	d.Redraw(ephemeris.Angles{1, 2, 3, 4, 5, 6, 7})
	if d.redraws != 1 {
		t.Errorf("Expected 1 redraw, got %d", d.redraws)
	}
	if d.View() != "" {
		t.Error("Expected empty view before the first resize")
	}

	d.Resize(20, 10)
	if d.err != nil {
		t.Fatalf("paint error = %v", d.err)
	}
	if got := lipgloss.Height(d.View()); got != 10 {
		t.Errorf("Expected 10 rows, got %d", got)
	}
	if got := lipgloss.Width(d.View()); got != 20 {
		t.Errorf("Expected 20 columns, got %d", got)
	}
	if d.Redraws() != 1 || d.Err() != nil {
		t.Errorf("Expected resize to keep redraw count, got %d (%v)", d.Redraws(), d.Err())
	}
	if d.Angles() != (ephemeris.Angles{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("Unexpected angles %v", d.Angles())
	}
}

func TestWraps(t *testing.T) {
	if !Wraps(359, 1) || !Wraps(2, 358) {
		t.Error("Expected crossings of 0° to wrap")
	}
	if Wraps(10, 40) {
		t.Error("Expected a 30° step not to wrap")
	}
}

func TestTraceWidgetSamples(t *testing.T) {
	w := NewTraceWidget(30, 8, 2)
	samples := []float64{10, 20, math.NaN(), 350, 5}
	w.SetSamples(samples)
	if len(w.Samples()) != 5 {
		t.Errorf("Expected 5 samples, got %d", len(w.Samples()))
	}
	if w.View() == "" {
		t.Error("Expected chart output")
	}

	w.Resize(40, 10)
	if w.View() == "" {
		t.Error("Expected chart output after resize")
	}
}
