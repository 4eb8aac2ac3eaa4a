package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"orrery/internal/dial"
	"orrery/internal/ephemeris"
	"orrery/internal/logging"
)

// EnvConfigPath names the environment variable consulted when no -config
// flag is given.
const EnvConfigPath = "ORRERY_CONFIG"

// Config contains the tunable parameters of the dial and its shell.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	AssetDir   string    `yaml:"asset_dir"`   // directory holding ring_<body>.png (default: "assets")
	VSOP87Dir  string    `yaml:"vsop87_dir"`  // VSOP87 series directory; empty uses $VSOP87
	Radii      []float64 `yaml:"radii"`       // reference radius per body, Moon..Saturn
	RangeYears int       `yaml:"range_years"` // slider half-width in years (default: 100)
	TraceDays  int       `yaml:"trace_days"`  // longitude trace half-window in days (default: 30)
	Background string    `yaml:"background"`  // dial background as #rrggbb or #rgb (default: "#ffffff")

	Log logging.Config `yaml:"log"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	radii := make([]float64, ephemeris.BodyCount)
	copy(radii, dial.ReferenceRadii[:])
	return Config{
		AssetDir:   "assets",
		Radii:      radii,
		RangeYears: 100,
		TraceDays:  30,
		Background: "#ffffff",
		Log:        logging.Config{Level: "info", Format: "text"},
	}
}

// WithAssetDir returns a copy of the config with a different asset directory.
func (c Config) WithAssetDir(dir string) Config {
	c.AssetDir = dir
	return c
}

// WithVSOP87Dir returns a copy of the config with a different VSOP87 directory.
func (c Config) WithVSOP87Dir(dir string) Config {
	c.VSOP87Dir = dir
	return c
}

// WithRangeYears returns a copy of the config with a different slider range.
func (c Config) WithRangeYears(years int) Config {
	c.RangeYears = years
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.Log.File = path
	return c
}

// RadiusTable returns Radii as the fixed-size table the renderer wants.
// Call Validate first.
func (c Config) RadiusTable() [ephemeris.BodyCount]float64 {
	var t [ephemeris.BodyCount]float64
	copy(t[:], c.Radii)
	return t
}

// BackgroundColor parses Background.
func (c Config) BackgroundColor() (color.RGBA, error) {
	return parseHexColor(c.Background)
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.AssetDir == "" {
		return &ConfigError{Field: "AssetDir", Message: "must not be empty"}
	}
	if len(c.Radii) != ephemeris.BodyCount {
		return &ConfigError{Field: "Radii", Message: fmt.Sprintf("must have %d entries", ephemeris.BodyCount)}
	}
	for _, r := range c.Radii {
		if r <= 0 {
			return &ConfigError{Field: "Radii", Message: "must be positive"}
		}
	}
	if c.RangeYears <= 0 {
		return &ConfigError{Field: "RangeYears", Message: "must be positive"}
	}
	if c.TraceDays <= 0 {
		return &ConfigError{Field: "TraceDays", Message: "must be positive"}
	}
	if _, err := c.BackgroundColor(); err != nil {
		return &ConfigError{Field: "Background", Message: err.Error()}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load reads a YAML file over Default() and validates the result. An empty
// path falls back to $ORRERY_CONFIG, and to plain defaults when that is unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseHexColor accepts #rrggbb or the short #rgb form.
func parseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("must be #rrggbb: %w", err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
