package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

const (
	// MinYear and MaxYear bound the instants the series are trusted for.
	MinYear = 0
	MaxYear = 4000

	// deltaTSeconds approximates TT-UT. The dial resolution does not justify
	// a tabulated value.
	deltaTSeconds = 69.0

	lightDaysPerAU = 0.0057755183
)

// aberration constant, arc seconds
var kappa = unit.AngleFromSec(20.49552)

// Heliocentric gives ecliptic coordinates referenced to the equinox of date,
// as *planetposition.V87Planet does: longitude, latitude and radius in AU.
type Heliocentric interface {
	Position(jde float64) (L, B unit.Angle, R float64)
}

var _ Heliocentric = (*pp.V87Planet)(nil)

// Meeus computes apparent geocentric ecliptic longitudes with the series from
// Meeus' Astronomical Algorithms. The Sun and Moon need no data files; the
// planets need VSOP87 files and report ErrNoData when they were not loaded.
type Meeus struct {
	earth   Heliocentric
	planets map[Body]Heliocentric
}

var vsopIndex = map[Body]int{
	Mercury: pp.Mercury,
	Venus:   pp.Venus,
	Mars:    pp.Mars,
	Jupiter: pp.Jupiter,
	Saturn:  pp.Saturn,
}

// NewMeeus loads the VSOP87 series for Earth and the five planets. An empty
// dataDir defers to the VSOP87 environment variable honoured by meeus.
func NewMeeus(dataDir string) (*Meeus, error) {
	load := func(ibody int) (*pp.V87Planet, error) {
		if dataDir == "" {
			return pp.LoadPlanet(ibody)
		}
		return pp.LoadPlanetPath(ibody, dataDir)
	}

	earth, err := load(pp.Earth)
	if err != nil {
		return nil, fmt.Errorf("load VSOP87 earth: %w", err)
	}
	m := &Meeus{earth: earth, planets: make(map[Body]Heliocentric, len(vsopIndex))}
	for b, ib := range vsopIndex {
		p, err := load(ib)
		if err != nil {
			return nil, fmt.Errorf("load VSOP87 %s: %w", b, err)
		}
		m.planets[b] = p
	}
	return m, nil
}

// Longitude returns the apparent ecliptic longitude of b in degrees, [0, 360).
func (m *Meeus) Longitude(b Body, t time.Time) (float64, error) {
	t = t.UTC()
	if y := t.Year(); y < MinYear || y > MaxYear {
		return 0, &EphemerisError{Body: b, Time: t, Err: ErrOutOfRange}
	}
	jde := julian.TimeToJD(t) + deltaTSeconds/86400

	var λ unit.Angle
	switch b {
	case Sun:
		λ = solar.ApparentLongitude(base.J2000Century(jde))
	case Moon:
		geo, _, _ := moonposition.Position(jde)
		Δψ, _ := nutation.Nutation(jde)
		λ = geo + Δψ
	default:
		p := m.planets[b]
		if p == nil || m.earth == nil {
			return 0, &EphemerisError{Body: b, Time: t, Err: ErrNoData}
		}
		λ = m.planetLongitude(p, jde)
	}
	return Normalize(λ.Deg()), nil
}

// Longitudes evaluates every body at t.
func (m *Meeus) Longitudes(t time.Time) (Angles, error) {
	return All(m, t)
}

// planetLongitude builds the geocentric vector from heliocentric VSOP87
// positions, corrects for light time, then applies annual aberration and
// nutation in longitude.
func (m *Meeus) planetLongitude(p Heliocentric, jde float64) unit.Angle {
	L0, B0, R0 := m.earth.Position(jde)
	ex := R0 * B0.Cos() * L0.Cos()
	ey := R0 * B0.Cos() * L0.Sin()
	ez := R0 * B0.Sin()

	var x, y, z float64
	τ := 0.0
	for i := 0; i < 3; i++ {
		L, B, R := p.Position(jde - τ)
		x = R*B.Cos()*L.Cos() - ex
		y = R*B.Cos()*L.Sin() - ey
		z = R*B.Sin() - ez
		τ = lightDaysPerAU * math.Sqrt(x*x+y*y+z*z)
	}

	λ := unit.Angle(math.Atan2(y, x))
	β := unit.Angle(math.Atan2(z, math.Hypot(x, y)))

	T := base.J2000Century(jde)
	sun := L0 + math.Pi
	e := .016708634 - .000042037*T
	π := unit.AngleFromDeg(102.93735 + 1.71946*T + .00046*T*T)
	Δλ := (-kappa.Rad()*(sun-λ).Cos() + e*kappa.Rad()*(π-λ).Cos()) / β.Cos()

	Δψ, _ := nutation.Nutation(jde)
	return λ + unit.Angle(Δλ) + Δψ
}
