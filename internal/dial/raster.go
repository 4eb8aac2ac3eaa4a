package dial

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RasterSurface draws rings into an in-memory RGBA image.
type RasterSurface struct {
	img        *image.RGBA
	background color.Color
	scaler     draw.Transformer
}

// NewRasterSurface allocates a w x h surface cleared to bg.
func NewRasterSurface(w, h int, bg color.Color) *RasterSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &RasterSurface{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: bg,
		scaler:     draw.BiLinear,
	}
	s.Clear()
	return s
}

// Image exposes the backing image. It is overwritten by the next redraw.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Resize reallocates the surface when the size changed.
func (s *RasterSurface) Resize(w, h int) {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	s.Clear()
}

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *RasterSurface) DrawRing(tex image.Image, center Point, scale, rotationDeg float64) {
	if scale <= 0 {
		return
	}
	sr := tex.Bounds()
	s.scaler.Transform(s.img, RingTransform(sr, center, scale, rotationDeg), tex, sr, draw.Over, nil)
}

// RingTransform maps texture coordinates to surface coordinates: the texture
// centre lands on center, scaled by scale and rotated counter-clockwise on
// screen by rotationDeg (y grows downward).
func RingTransform(sr image.Rectangle, center Point, scale, rotationDeg float64) f64.Aff3 {
	sin, cos := math.Sincos(rotationDeg * math.Pi / 180)
	m00, m01 := scale*cos, scale*sin
	m10, m11 := -scale*sin, scale*cos

	hw := float64(sr.Min.X) + float64(sr.Dx())/2
	hh := float64(sr.Min.Y) + float64(sr.Dy())/2
	return f64.Aff3{
		m00, m01, center.X - (m00*hw + m01*hh),
		m10, m11, center.Y - (m10*hw + m11*hh),
	}
}
