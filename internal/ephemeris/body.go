package ephemeris

import "fmt"

// Body identifies one ring of the dial. The order is fixed and doubles as the
// draw order of the rings.
type Body int

const (
	Moon Body = iota
	Mercury
	Venus
	Sun
	Mars
	Jupiter
	Saturn
)

// BodyCount is the number of rings on the dial.
const BodyCount = 7

// Bodies lists every body in enumeration order.
var Bodies = [BodyCount]Body{Moon, Mercury, Venus, Sun, Mars, Jupiter, Saturn}

var bodyNames = [BodyCount]string{"moon", "mercury", "venus", "sun", "mars", "jupiter", "saturn"}

// String returns the lowercase name used for ring assets and reports.
func (b Body) String() string {
	if b < 0 || int(b) >= BodyCount {
		return fmt.Sprintf("body(%d)", int(b))
	}
	return bodyNames[b]
}

// Title returns the capitalised display name.
func (b Body) Title() string {
	s := b.String()
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// ParseBody maps an asset-style name back to a Body.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// Angles holds one ecliptic longitude in degrees per body, index-aligned
// with Bodies.
type Angles [BodyCount]float64
