package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"orrery/ui/tui/state"
	"orrery/ui/tui/styles"
)

// ControlsView is the control half of the window: date entry, slider, shift
// buttons, the longitude readout and the trace chart.
type ControlsView struct{}

func (v ControlsView) Render(s state.AppState, props ViewProps) string {
	w := max(props.Width, 1)

	header := styles.HeaderStyle.Render("ORRERY") + " " +
		lipgloss.NewStyle().Bold(true).Render(s.Report.Date+" UTC")

	input := zone.Mark(ZoneInput, props.InputView)
	dateRow := lipgloss.JoinHorizontal(lipgloss.Center, styles.LabelStyle.Render("UTC Date/Time: "), input)

	sliderWidth := max(w-2, 4)
	slider := zone.Mark(ZoneSlider, SliderBar(s.Fraction, sliderWidth))
	offset := styles.HintStyle.Render(fmt.Sprintf("%+.1f days from start", s.OffsetDays))

	buttons := renderButtons(props, w)

	sections := []string{
		header,
		"",
		dateRow,
		slider,
		offset,
		"",
		buttons,
		"",
		renderReadout(s),
	}

	if props.ChartView != "" {
		title := fmt.Sprintf("%s longitude ±%d d", s.TraceBody.Title(), props.TraceDays)
		sections = append(sections, "", styles.CardStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Render(title),
				props.ChartView,
			)))
	}

	status := styles.HintStyle.Render("ready")
	if s.Err != nil {
		status = styles.StatusStyle.Render(s.Err.Error())
	}
	sections = append(sections, "", status, props.HelpView)

	return lipgloss.NewStyle().
		PaddingLeft(1).
		MaxWidth(props.Width).
		MaxHeight(props.Height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SliderBar draws a track of width cells with the knob at fraction f.
func SliderBar(f float64, width int) string {
	if width < 1 {
		return ""
	}
	knob := KnobCell(f, width)
	return lipgloss.NewStyle().Foreground(styles.BrandColor).Render(strings.Repeat("━", knob)) +
		lipgloss.NewStyle().Bold(true).Render("●") +
		lipgloss.NewStyle().Foreground(styles.BaseColor).Render(strings.Repeat("─", width-knob-1))
}

// KnobCell is the cell index of the knob for fraction f on a track of width
// cells.
func KnobCell(f float64, width int) int {
	f = math.Max(0, math.Min(1, f))
	return int(math.Round(f * float64(width-1)))
}

// FractionAt is the inverse of KnobCell for a click at cell x.
func FractionAt(x, width int) float64 {
	if width <= 1 {
		return 0.5
	}
	return math.Max(0, math.Min(1, float64(x)/float64(width-1)))
}

func renderButtons(props ViewProps, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for i, label := range props.Buttons {
		dist := math.Abs(float64(i) - props.AnimCursor)
		strength := 0.0
		if dist < 1.0 {
			strength = 1.0 - dist
		}

		st := styles.ButtonStyle
		if strength > 0.1 || i == props.ButtonCursor {
			st = st.Background(styles.BrandColor)
		}
		if i == props.ButtonCursor {
			st = st.Bold(true).Foreground(lipgloss.Color("#FFF"))
		}

		b := zone.Mark(ButtonZone(i), st.Render(label))
		bw := lipgloss.Width(b)
		if rowWidth > 0 && rowWidth+bw > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, b)
		rowWidth += bw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderReadout(s state.AppState) string {
	var lines []string
	for _, sec := range s.Report.Sections {
		for _, it := range sec.Items {
			label := it.Label
			if it.Key == s.TraceBody.String() {
				label = styles.LabelStyle.Render(label)
			}
			lines = append(lines, fmt.Sprintf("%s %6.2f%s  %s",
				lipgloss.NewStyle().Width(8).Render(label), it.Value, it.Unit, it.Note))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
