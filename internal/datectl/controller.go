package datectl

import (
	"errors"
	"fmt"
	"math"
	"time"

	"orrery/internal/ephemeris"
	"orrery/internal/logging"
)

const day = 24 * time.Hour

// DefaultRangeYears is the slider half-width around the startup time.
const DefaultRangeYears = 100

// Display receives the angles of every successful update. It is called
// exactly once per applied change.
type Display interface {
	Redraw(angles ephemeris.Angles)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(ephemeris.Angles)

func (f DisplayFunc) Redraw(a ephemeris.Angles) { f(a) }

// Options tune a Controller. Zero values select defaults.
type Options struct {
	RangeYears int
	Logger     logging.Logger
}

// Controller owns the selected date/time. Widgets request changes through its
// methods and read back the slider offset, text and angles, which always
// describe the same instant once a method returns.
//
// Controller is not safe for concurrent use; the UI event loop calls it one
// event at a time.
type Controller struct {
	eph     ephemeris.Ephemeris
	clock   Clock
	display Display
	log     logging.Logger

	referenceNow time.Time
	rangeDays    float64

	selected time.Time
	offset   float64
	text     string
	angles   ephemeris.Angles
}

// New captures the reference time from clock, computes the initial angles and
// issues the first redraw.
func New(eph ephemeris.Ephemeris, clock Clock, display Display, opts Options) (*Controller, error) {
	if eph == nil {
		return nil, errors.New("datectl: ephemeris is required")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if display == nil {
		display = DisplayFunc(func(ephemeris.Angles) {})
	}
	if opts.RangeYears <= 0 {
		opts.RangeYears = DefaultRangeYears
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}

	now := clock.Now().UTC()
	c := &Controller{
		eph:          eph,
		clock:        clock,
		display:      display,
		log:          opts.Logger.With(logging.String("component", "datectl")),
		referenceNow: now,
		rangeDays:    math.Floor(365.25 * float64(opts.RangeYears)),
	}
	if err := c.apply(now, 0); err != nil {
		return nil, fmt.Errorf("initial ephemeris: %w", err)
	}
	return c, nil
}

// ReferenceNow is the startup instant the slider offset is measured from.
func (c *Controller) ReferenceNow() time.Time { return c.referenceNow }

// Selected is the authoritative selected instant.
func (c *Controller) Selected() time.Time { return c.selected }

// Text is the committed display string of Selected.
func (c *Controller) Text() string { return c.text }

// SliderOffset is the selected instant in days from ReferenceNow. It may lie
// outside RangeDays when the date came from text or a shift.
func (c *Controller) SliderOffset() float64 { return c.offset }

// RangeDays is the slider half-width in days.
func (c *Controller) RangeDays() float64 { return c.rangeDays }

// Angles are the longitudes of Selected.
func (c *Controller) Angles() ephemeris.Angles { return c.angles }

// SliderFraction maps the offset onto [0, 1] for drawing the knob, pinned at
// the ends.
func (c *Controller) SliderFraction() float64 {
	f := (c.offset + c.rangeDays) / (2 * c.rangeDays)
	return math.Max(0, math.Min(1, f))
}

// OffsetAtFraction is the inverse of SliderFraction for a click or drag.
func (c *Controller) OffsetAtFraction(f float64) float64 {
	f = math.Max(0, math.Min(1, f))
	return -c.rangeDays + f*2*c.rangeDays
}

// SetFromSliderOffset selects ReferenceNow plus days.
func (c *Controller) SetFromSliderOffset(days float64) error {
	days = math.Max(-c.rangeDays, math.Min(c.rangeDays, days))
	return c.apply(c.referenceNow.Add(daysToDuration(days)), days)
}

// SetFromText parses text and selects it. Invalid text is never applied: the
// committed text is kept and a *DateParseError is returned.
func (c *Controller) SetFromText(text string) error {
	t, err := Parse(text)
	if err != nil {
		c.text = Format(c.selected)
		c.log.Debug("rejected date text", logging.String("text", text), logging.Err(err))
		return err
	}
	return c.apply(t, c.offsetOf(t))
}

// Shift moves the displayed date by req. The base is the committed display
// value, i.e. Selected truncated to the minute.
func (c *Controller) Shift(req ShiftRequest) error {
	base := c.selected.Truncate(time.Minute)
	t := req.Apply(base)
	return c.apply(t, c.offsetOf(t))
}

// JumpToNow selects the current wall-clock time. ReferenceNow is unchanged.
func (c *Controller) JumpToNow() error {
	t := c.clock.Now().UTC()
	return c.apply(t, c.offsetOf(t))
}

// apply commits t only after the ephemeris succeeded, so a failure leaves the
// previous instant, offset, text and angles in place and skips the redraw.
func (c *Controller) apply(t time.Time, offset float64) error {
	angles, err := c.eph.Longitudes(t)
	if err != nil {
		c.log.Warn("ephemeris failed, keeping previous date",
			logging.String("requested", Format(t)),
			logging.String("kept", c.text),
			logging.Err(err))
		return fmt.Errorf("select %s: %w", Format(t), err)
	}

	c.selected = t
	c.offset = offset
	c.text = Format(t)
	c.angles = angles
	c.log.Debug("date selected", logging.String("date", c.text), logging.Float64("offset_days", offset))
	c.display.Redraw(angles)
	return nil
}

// offsetOf avoids time.Duration, which saturates beyond ~292 years.
func (c *Controller) offsetOf(t time.Time) float64 {
	secs := float64(t.Unix()-c.referenceNow.Unix()) +
		float64(t.Nanosecond()-c.referenceNow.Nanosecond())/1e9
	return secs / 86400
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(math.Round(days * float64(day)))
}
