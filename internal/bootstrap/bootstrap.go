// Package bootstrap wires configuration, logging, ring textures and the
// ephemeris into the pieces every orrery binary needs.
package bootstrap

import (
	"errors"
	"fmt"
	"io"

	"orrery/internal/assets"
	"orrery/internal/config"
	"orrery/internal/dial"
	"orrery/internal/ephemeris"
	"orrery/internal/logging"
)

// Runtime holds the ready-to-use dependencies.
type Runtime struct {
	Config    config.Config
	Log       logging.Logger
	Ephemeris ephemeris.Ephemeris
	Renderer  *dial.Renderer

	logCloser io.Closer
}

// Setup loads the config at path (see config.Load), opens the log and loads
// the textures and ephemeris data. Missing textures are an error; they are
// not generated on the fly.
func Setup(path string) (*Runtime, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return SetupWith(cfg)
}

// SetupWith is Setup for an already loaded Config.
func SetupWith(cfg config.Config) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, closer, err := logging.Open(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	rt := &Runtime{Config: cfg, Log: log, logCloser: closer}

	tex, err := assets.Load(cfg.AssetDir)
	if err != nil {
		var ae *assets.AssetLoadError
		if errors.As(err, &ae) {
			log.Error("ring texture missing", logging.String("body", ae.Body.String()), logging.String("path", ae.Path), logging.Err(ae.Err))
		}
		rt.Close()
		return nil, fmt.Errorf("%w (generate textures with: ringgen -out %s)", err, cfg.AssetDir)
	}

	rt.Renderer, err = dial.NewRenderer(tex, cfg.RadiusTable())
	if err != nil {
		rt.Close()
		return nil, err
	}

	eph, err := ephemeris.NewMeeus(cfg.VSOP87Dir)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load ephemeris: %w", err)
	}
	rt.Ephemeris = eph

	log.Info("runtime ready",
		logging.String("assets", cfg.AssetDir),
		logging.String("vsop87", cfg.VSOP87Dir),
		logging.Int("range_years", cfg.RangeYears))
	return rt, nil
}

// Close flushes and closes the log file.
func (r *Runtime) Close() error {
	if r.logCloser == nil {
		return nil
	}
	return r.logCloser.Close()
}
