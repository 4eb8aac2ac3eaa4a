package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"orrery/internal/ephemeris"
)

// Textures holds one ring image per body, index-aligned with ephemeris.Bodies.
type Textures [ephemeris.BodyCount]image.Image

// Widths returns the pixel width of every texture.
func (t Textures) Widths() [ephemeris.BodyCount]int {
	var w [ephemeris.BodyCount]int
	for i, img := range t {
		if img != nil {
			w[i] = img.Bounds().Dx()
		}
	}
	return w
}

// AssetLoadError reports a ring texture that could not be read or decoded.
// It is fatal at startup.
type AssetLoadError struct {
	Body ephemeris.Body
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load ring texture %s (%s): %v", e.Body, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// FileName is the fixed per-body naming convention for ring textures.
func FileName(b ephemeris.Body) string {
	return "ring_" + b.String() + ".png"
}

// Load reads all seven ring textures from dir. The first missing or
// undecodable file aborts the load.
func Load(dir string) (Textures, error) {
	var tex Textures
	for _, b := range ephemeris.Bodies {
		path := filepath.Join(dir, FileName(b))
		img, err := loadPNG(path)
		if err != nil {
			return Textures{}, &AssetLoadError{Body: b, Path: path, Err: err}
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			return Textures{}, &AssetLoadError{Body: b, Path: path, Err: fmt.Errorf("empty image")}
		}
		tex[b] = img
	}
	return tex, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// Save writes every texture into dir using FileName.
func Save(dir string, tex Textures) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}
	for _, b := range ephemeris.Bodies {
		if tex[b] == nil {
			return fmt.Errorf("no texture for %s", b)
		}
		path := filepath.Join(dir, FileName(b))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := png.Encode(f, tex[b]); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}
	return nil
}
