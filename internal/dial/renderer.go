package dial

import (
	"fmt"
	"image"

	"orrery/internal/assets"
	"orrery/internal/ephemeris"
)

// Surface is a retained drawing target the renderer clears and re-issues
// every ring on.
type Surface interface {
	Clear()
	// DrawRing draws tex centred on center, scaled uniformly and rotated
	// counter-clockwise by rotationDeg as seen on screen.
	DrawRing(tex image.Image, center Point, scale, rotationDeg float64)
}

// Renderer holds the constant inputs of a redraw: textures and radius table.
type Renderer struct {
	textures assets.Textures
	radii    [ephemeris.BodyCount]float64
}

// NewRenderer validates that every body has a texture.
func NewRenderer(tex assets.Textures, radii [ephemeris.BodyCount]float64) (*Renderer, error) {
	for _, b := range ephemeris.Bodies {
		if tex[b] == nil {
			return nil, fmt.Errorf("no ring texture for %s", b)
		}
	}
	return &Renderer{textures: tex, radii: radii}, nil
}

// Geometry returns the layout Redraw would use for a w x h viewport.
func (r *Renderer) Geometry(w, h float64) (Geometry, error) {
	return Compute(w, h, r.radii, r.textures.Widths())
}

// Redraw clears s and draws all seven rings in enumeration order, each turned
// clockwise by its longitude.
func (r *Renderer) Redraw(s Surface, w, h float64, angles ephemeris.Angles) error {
	g, err := r.Geometry(w, h)
	if err != nil {
		return err
	}
	s.Clear()
	for _, b := range ephemeris.Bodies {
		s.DrawRing(r.textures[b], g.Center, g.Scales[b], -angles[b])
	}
	return nil
}
