package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"orrery/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// Print renders the dial report to the writer in a highly compact format.
func Print(w io.Writer, r output.DialReport) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "ORRERY "+r.Date+" UTC", colorReset)

	for _, sec := range r.Sections {
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := it.Label
			if utf8.RuneCountInString(label) > 12 {
				label = string([]rune(label)[:11]) + "…"
			}
			dots := strings.Repeat("·", 14-utf8.RuneCountInString(label))
			fmt.Fprintf(w, "  %s%s%s%s %7.2f%s  %s%s%s\n",
				label, colorCyan, dots, colorReset,
				it.Value, it.Unit,
				colorFor(it.Key), it.Note, colorReset)
		}
	}

	fmt.Fprintf(w, "%s─ Offset%s: %+.2f days from start\n\n", colorCyan, colorReset, r.OffsetDays)
}

func colorFor(key string) string {
	switch key {
	case "sun", "moon":
		return colorYellow
	default:
		return colorGray
	}
}
