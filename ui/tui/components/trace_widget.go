package components

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
)

// TraceWidget plots one body's longitude over a window of days centred on
// the selected date.
type TraceWidget struct {
	chart   linechart.Model
	samples []float64 // NaN where the ephemeris failed
	width   int
	height  int
}

func NewTraceWidget(width, height, days int) *TraceWidget {
	return &TraceWidget{
		// width, height, minX, maxX, minY, maxY
		chart:  linechart.New(width, height, 0, float64(2*days), 0, 360),
		width:  width,
		height: height,
	}
}

func (w *TraceWidget) Init() tea.Cmd {
	return nil
}

func (w *TraceWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return w, nil
}

// SetSamples replaces the plotted series; samples[i] is the longitude i days
// after the start of the window.
func (w *TraceWidget) SetSamples(samples []float64) {
	w.samples = samples
	w.draw()
}

func (w *TraceWidget) Samples() []float64 {
	return w.samples
}

func (w *TraceWidget) Resize(width, height int) {
	if width < 10 || height < 3 || (width == w.width && height == w.height) {
		return
	}
	w.width, w.height = width, height
	w.chart.Resize(width, height)
	w.draw()
}

func (w *TraceWidget) draw() {
	w.chart.Clear()
	for i := 0; i+1 < len(w.samples); i++ {
		y1, y2 := w.samples[i], w.samples[i+1]
		if math.IsNaN(y1) || math.IsNaN(y2) || Wraps(y1, y2) {
			continue
		}
		w.chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: y1},
			canvas.Float64Point{X: float64(i + 1), Y: y2},
		)
	}
	w.chart.DrawXYAxisAndLabel()
}

// Wraps reports whether the step from a to b crosses 0°/360° rather than
// moving through the middle of the chart.
func Wraps(a, b float64) bool {
	return math.Abs(b-a) > 180
}

func (w *TraceWidget) View() string {
	return w.chart.View()
}
