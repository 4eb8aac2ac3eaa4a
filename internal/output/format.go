package output

import (
	"fmt"
	"math"
	"time"

	"orrery/internal/datectl"
	"orrery/internal/ephemeris"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Section constants to avoid hardcoded strings
const (
	SectionInner = "inner"
	SectionOuter = "outer"
)

// Signs are the twelve 30° zodiac divisions of the ecliptic, from 0°.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// UI/view-model types (no printing here)
type Item struct {
	Key   string
	Label string
	Value float64
	Unit  string
	Note  string
}

type Section struct {
	ID    string // inner/outer
	Title string
	Items []Item
}

type DialReport struct {
	Date       string
	OffsetDays float64
	Sections   []Section
}

// Zodiac returns the sign containing longitude deg and the position within
// it in degrees.
func Zodiac(deg float64) (string, float64) {
	deg = ephemeris.Normalize(deg)
	i := int(deg / 30)
	if i > 11 {
		i = 11
	}
	return Signs[i], deg - float64(i)*30
}

// DMS formats degrees as 12°34′, truncated to the whole arc minute.
func DMS(deg float64) string {
	a := unit.AngleFromDeg(math.Floor(deg*60) / 60)
	return fmt.Sprintf("%#0.0m", sexa.FmtAngle(a))
}

// BuildReport converts the selected instant and its angles into UI-ready
// sections. Bodies up to the Sun form the inner section, the rest the outer.
func BuildReport(selected time.Time, offsetDays float64, angles ephemeris.Angles) DialReport {
	inner := Section{ID: SectionInner, Title: "Inner rings"}
	outer := Section{ID: SectionOuter, Title: "Outer rings"}

	for _, b := range ephemeris.Bodies {
		sign, within := Zodiac(angles[b])
		it := Item{
			Key:   b.String(),
			Label: b.Title(),
			Value: ephemeris.Normalize(angles[b]),
			Unit:  "°",
			Note:  DMS(within) + " " + sign,
		}
		if b <= ephemeris.Sun {
			inner.Items = append(inner.Items, it)
		} else {
			outer.Items = append(outer.Items, it)
		}
	}

	return DialReport{
		Date:       datectl.Format(selected),
		OffsetDays: offsetDays,
		Sections:   []Section{inner, outer},
	}
}

func (r DialReport) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
