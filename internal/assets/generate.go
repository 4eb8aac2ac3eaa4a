package assets

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orrery/internal/ephemeris"
)

// Palette is the ring colour used by Generate for each body.
var Palette = [ephemeris.BodyCount]color.RGBA{
	ephemeris.Moon:    {0x9e, 0xa7, 0xb3, 0xff},
	ephemeris.Mercury: {0x8c, 0x7b, 0x6b, 0xff},
	ephemeris.Venus:   {0xe3, 0xbb, 0x76, 0xff},
	ephemeris.Sun:     {0xf5, 0xb0, 0x1c, 0xff},
	ephemeris.Mars:    {0xc1, 0x44, 0x0e, 0xff},
	ephemeris.Jupiter: {0xc8, 0x8b, 0x3a, 0xff},
	ephemeris.Saturn:  {0x6f, 0x5f, 0x9e, 0xff},
}

// GenerateOptions controls the procedural ring textures.
type GenerateOptions struct {
	Band      int // ring thickness in px
	TickEvery int // degrees between tick marks, 0 disables ticks
}

// DefaultGenerateOptions matches the spacing of the default radius table.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Band: 30, TickEvery: 30}
}

// Generate draws a ring texture for every body. Texture i is a square of side
// 2*radii[i] with an annulus along its outer edge, a marker disc at twelve
// o'clock and the body name next to it. The rest is transparent.
func Generate(radii [ephemeris.BodyCount]float64, opts GenerateOptions) Textures {
	var tex Textures
	for _, b := range ephemeris.Bodies {
		tex[b] = generateRing(b, radii[b], opts)
	}
	return tex
}

func generateRing(b ephemeris.Body, radius float64, opts GenerateOptions) *image.RGBA {
	side := int(math.Ceil(radius * 2))
	if side < 2 {
		side = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	c := float64(side) / 2
	outer := c
	band := float64(opts.Band)
	if band <= 0 || band > outer {
		band = outer / 4
	}
	inner := outer - band

	base := Palette[b]
	tick := darken(base, 0.55)

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx := float64(x) + .5 - c
			dy := float64(y) + .5 - c
			d := math.Hypot(dx, dy)
			cov := coverage(d, inner, outer)
			if cov <= 0 {
				continue
			}
			col := base
			if opts.TickEvery > 0 && onTick(dx, dy, d, float64(opts.TickEvery)) {
				col = tick
			}
			img.SetRGBA(x, y, withAlpha(col, cov))
		}
	}

	// marker at twelve o'clock, centred in the band
	mr := band/2 - 3
	if mr < 2 {
		mr = 2
	}
	mx, my := c, c-inner-band/2
	marker := darken(base, 0.3)
	for y := int(my - mr - 1); y <= int(my+mr+1); y++ {
		for x := int(mx - mr - 1); x <= int(mx+mr+1); x++ {
			d := math.Hypot(float64(x)+.5-mx, float64(y)+.5-my)
			if cov := coverage(d, -1, mr); cov > 0 {
				img.SetRGBA(x, y, withAlpha(marker, cov))
			}
		}
	}

	label := strings.ToUpper(b.String())
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0x20, 0x20, 0x20, 0xff}),
		Face: face,
		Dot:  fixed.P(int(mx+mr+4), int(my)+face.Ascent/2),
	}
	d.DrawString(label)
	return img
}

// coverage approximates how much of a pixel at distance d lies within
// [inner, outer], with one pixel of falloff on each edge.
func coverage(d, inner, outer float64) float64 {
	cov := 1.0
	if d > outer-.5 {
		cov = math.Max(0, outer+.5-d)
	}
	if d < inner+.5 {
		cov = math.Min(cov, math.Max(0, d-inner+.5))
	}
	return math.Min(cov, 1)
}

func onTick(dx, dy, d, every float64) bool {
	deg := math.Atan2(-dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	off := math.Mod(deg, every)
	if off > every/2 {
		off = every - off
	}
	// one pixel wide at this radius
	return off*math.Pi/180*d < .75
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	// premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
