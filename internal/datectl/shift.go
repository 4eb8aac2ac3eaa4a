package datectl

import (
	"fmt"
	"strings"
	"time"
)

// ShiftKind is the calendar unit of a relative date change.
type ShiftKind int

const (
	ShiftDay ShiftKind = iota
	ShiftMonth
	ShiftYear
	ShiftDecade
)

func (k ShiftKind) String() string {
	switch k {
	case ShiftDay:
		return "Day"
	case ShiftMonth:
		return "Month"
	case ShiftYear:
		return "Year"
	case ShiftDecade:
		return "Decade"
	default:
		return "Unknown"
	}
}

// ParseShiftKind accepts the lowercase or capitalised unit name.
func ParseShiftKind(name string) (ShiftKind, error) {
	for k := ShiftDay; k <= ShiftDecade; k++ {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shift kind %q", name)
}

// ShiftRequest moves the displayed date by one unit of Kind, forwards when
// Sign is positive and backwards otherwise.
type ShiftRequest struct {
	Kind ShiftKind
	Sign int
}

// StandardShifts is the button order of the shift controls.
var StandardShifts = []ShiftRequest{
	{ShiftDay, -1}, {ShiftDay, 1},
	{ShiftMonth, -1}, {ShiftMonth, 1},
	{ShiftYear, -1}, {ShiftYear, 1},
	{ShiftDecade, -1}, {ShiftDecade, 1},
}

func (r ShiftRequest) sign() int {
	if r.Sign > 0 {
		return 1
	}
	return -1
}

// Label is the button caption, e.g. "-Month".
func (r ShiftRequest) Label() string {
	if r.sign() > 0 {
		return "+" + r.Kind.String()
	}
	return "-" + r.Kind.String()
}

// Apply adds the offset with calendar arithmetic. Month, year and decade
// steps clamp the day to the end of the target month, so Jan 31 + 1 month is
// Feb 28 or 29 and Feb 29 + 1 year is Feb 28.
func (r ShiftRequest) Apply(t time.Time) time.Time {
	s := r.sign()
	switch r.Kind {
	case ShiftMonth:
		return addMonths(t, s)
	case ShiftYear:
		return addMonths(t, 12*s)
	case ShiftDecade:
		return addMonths(t, 120*s)
	default:
		return t.AddDate(0, 0, s)
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}
