package layout

// Orientation is how the display and controls areas share the window.
type Orientation int

const (
	// Horizontal places display and controls side by side.
	Horizontal Orientation = iota
	// Vertical stacks the display above the controls.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Size is a width and height in square units.
type Size struct {
	W, H int
}

// Rect is an area of the window, origin top-left.
type Rect struct {
	X, Y, W, H int
}

// Layout assigns the display and the controls one half of the window each.
type Layout struct {
	Orientation Orientation
	Display     Rect
	Controls    Rect
}

// Relayout splits the window by aspect ratio: taller than wide stacks the
// display over the controls, anything else puts them side by side. Odd
// lengths give the extra unit to the controls.
func Relayout(s Size) Layout {
	w, h := max(s.W, 0), max(s.H, 0)
	if h > w {
		top := h / 2
		return Layout{
			Orientation: Vertical,
			Display:     Rect{0, 0, w, top},
			Controls:    Rect{0, top, w, h - top},
		}
	}
	left := w / 2
	return Layout{
		Orientation: Horizontal,
		Display:     Rect{0, 0, left, h},
		Controls:    Rect{left, 0, w - left, h},
	}
}
