package bootstrap

import (
	"errors"
	"strings"
	"testing"

	"orrery/internal/assets"
	"orrery/internal/config"
)

func TestSetupWithInvalidConfig(t *testing.T) {
	_, err := SetupWith(config.Default().WithRangeYears(0))
	var ce *config.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *config.ConfigError, got %v", err)
	}
}

func TestSetupWithMissingAssets(t *testing.T) {
	cfg := config.Default().WithAssetDir(t.TempDir())
	_, err := SetupWith(cfg)
	var ae *assets.AssetLoadError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *assets.AssetLoadError, got %v", err)
	}
	if !strings.Contains(err.Error(), "ringgen") {
		t.Errorf("expected a ringgen hint, got %v", err)
	}
}

func TestSetupWithMissingEphemerisData(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().WithAssetDir(dir).WithVSOP87Dir(t.TempDir())
	if err := assets.Save(dir, assets.Generate(cfg.RadiusTable(), assets.GenerateOptions{Band: 4})); err != nil {
		t.Fatal(err)
	}

	_, err := SetupWith(cfg)
	if err == nil || !strings.Contains(err.Error(), "load ephemeris") {
		t.Fatalf("expected ephemeris load error, got %v", err)
	}
}
