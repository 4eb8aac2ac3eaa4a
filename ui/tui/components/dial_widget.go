package components

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orrery/internal/dial"
	"orrery/internal/ephemeris"
)

// DialWidget rasterises the rings and shows them as half-block cells, two
// pixel rows per terminal row. It is the controller's Display: every Redraw
// clears the surface and re-issues all rings.
type DialWidget struct {
	renderer *dial.Renderer
	surface  *dial.RasterSurface
	angles   ephemeris.Angles
	Width    int // cells
	Height   int // cells
	redraws  int
	err      error
	view     string
}

func NewDialWidget(r *dial.Renderer, bg color.Color) *DialWidget {
	return &DialWidget{
		renderer: r,
		surface:  dial.NewRasterSurface(0, 0, bg),
	}
}

func (d *DialWidget) Init() tea.Cmd {
	return nil
}

func (d *DialWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return d, nil
}

// Redraw implements datectl.Display.
func (d *DialWidget) Redraw(angles ephemeris.Angles) {
	d.angles = angles
	d.redraws++
	d.paint()
}

// Redraws counts controller redraws. Resizes repaint without counting.
func (d *DialWidget) Redraws() int {
	return d.redraws
}

// Err is the error of the last paint, if any.
func (d *DialWidget) Err() error {
	return d.err
}

// Resize changes the cell area and repaints with the last angles.
func (d *DialWidget) Resize(w, h int) {
	if w == d.Width && h == d.Height {
		return
	}
	d.Width, d.Height = max(w, 0), max(h, 0)
	d.surface.Resize(d.Width, d.Height*2)
	d.paint()
}

// Angles returns what is currently drawn.
func (d *DialWidget) Angles() ephemeris.Angles {
	return d.angles
}

func (d *DialWidget) paint() {
	if d.Width == 0 || d.Height == 0 {
		d.view = ""
		return
	}
	d.err = d.renderer.Redraw(d.surface, float64(d.Width), float64(d.Height*2), d.angles)
	if d.err != nil {
		d.view = fmt.Sprintf("dial error: %v", d.err)
		return
	}
	d.view = HalfBlocks(d.surface.Image())
}

func (d *DialWidget) View() string {
	return d.view
}

// HalfBlocks renders img with one "▀" per two vertical pixels: the upper
// pixel is the foreground colour and the lower one the background. Runs of
// equal colour pairs share one styled span.
func HalfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		runStart := b.Min.X
		var runTop, runBottom color.RGBA
		for x := b.Min.X; x <= b.Max.X; x++ {
			var top, bottom color.RGBA
			if x < b.Max.X {
				top = img.RGBAAt(x, y)
				bottom = top
				if y+1 < b.Max.Y {
					bottom = img.RGBAAt(x, y+1)
				}
			}
			if x == b.Min.X {
				runTop, runBottom = top, bottom
				continue
			}
			if x < b.Max.X && top == runTop && bottom == runBottom {
				continue
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(runTop)).
				Background(hex(runBottom)).
				Render(strings.Repeat("▀", x-runStart)))
			runStart, runTop, runBottom = x, top, bottom
		}
	}
	return sb.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
