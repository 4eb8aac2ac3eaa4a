package dial

import (
	"fmt"

	"orrery/internal/ephemeris"
)

// ReferenceRadii is the default distance of each ring's outer edge from the
// dial centre, in texture pixels, index-aligned with ephemeris.Bodies.
var ReferenceRadii = [ephemeris.BodyCount]float64{270, 307, 345, 395, 432, 470, 510}

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Geometry is derived from the viewport on every redraw and never stored.
type Geometry struct {
	DiskSize float64
	Center   Point
	Scales   [ephemeris.BodyCount]float64
}

// DrawnDiameter is the on-screen diameter of ring i for a texture of the
// given width.
func (g Geometry) DrawnDiameter(i int, texWidth int) float64 {
	return g.Scales[i] * float64(texWidth)
}

// Compute lays out the dial in a w x h viewport. Every ring is scaled so the
// ring with the largest reference radius spans min(w, h) exactly and the rest
// keep their relative spacing.
func Compute(w, h float64, radii [ephemeris.BodyCount]float64, texWidths [ephemeris.BodyCount]int) (Geometry, error) {
	maxRef := 0.0
	for i, r := range radii {
		if r <= 0 {
			return Geometry{}, fmt.Errorf("reference radius %d must be positive, got %v", i, r)
		}
		if r > maxRef {
			maxRef = r
		}
	}

	disk := w
	if h < disk {
		disk = h
	}
	if disk < 0 {
		disk = 0
	}

	g := Geometry{
		DiskSize: disk,
		Center:   Point{X: w / 2, Y: h / 2},
	}
	for i, r := range radii {
		if texWidths[i] <= 0 {
			return Geometry{}, fmt.Errorf("texture %s has no width", ephemeris.Bodies[i])
		}
		g.Scales[i] = (r * 2 / float64(texWidths[i])) * (disk / (2 * maxRef))
	}
	return g, nil
}
