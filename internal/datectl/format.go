package datectl

import (
	"fmt"
	"time"
)

// Layout is both the display format and the only accepted input format:
// 24-hour UTC with minute precision.
const Layout = "2006-01-02 15:04"

// DateParseError reports text that is not a Layout timestamp.
type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (want YYYY-MM-DD HH:MM): %v", e.Text, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse reads a Layout timestamp as UTC.
func Parse(text string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, text, time.UTC)
	if err != nil {
		return time.Time{}, &DateParseError{Text: text, Err: err}
	}
	return t, nil
}
