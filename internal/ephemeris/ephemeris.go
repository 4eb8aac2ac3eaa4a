package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Ephemeris converts a UTC instant into apparent geocentric ecliptic
// longitudes. Implementations must be pure: the same (body, time) pair always
// yields the same value.
type Ephemeris interface {
	Longitude(b Body, t time.Time) (float64, error)
	Longitudes(t time.Time) (Angles, error)
}

var (
	// ErrOutOfRange is returned for instants outside the supported years.
	ErrOutOfRange = errors.New("time outside supported ephemeris range")
	// ErrNoData is returned when series data for a body was never loaded.
	ErrNoData = errors.New("no ephemeris data loaded")
)

// EphemerisError reports a failed position computation.
type EphemerisError struct {
	Body Body
	Time time.Time
	Err  error
}

func (e *EphemerisError) Error() string {
	return fmt.Sprintf("ephemeris %s at %s: %v", e.Body, e.Time.UTC().Format(time.RFC3339), e.Err)
}

func (e *EphemerisError) Unwrap() error {
	return e.Err
}

// All computes every body through e.Longitude, stopping at the first error so
// callers never see a partially filled Angles.
func All(e Ephemeris, t time.Time) (Angles, error) {
	var out Angles
	for _, b := range Bodies {
		v, err := e.Longitude(b, t)
		if err != nil {
			return Angles{}, err
		}
		out[b] = v
	}
	return out, nil
}

// Normalize wraps deg into [0, 360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -1e-15 + 360 rounds to 360
	if r >= 360 {
		return 0
	}
	return r
}
