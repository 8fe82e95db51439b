package grid

// HeadingCount is the number of distinct headings. Trackers that
// store one slot per (position, heading) state size themselves with it.
const HeadingCount = 4

// Heading is a compass direction the guard can face. The zero value
// is North; TurnRight cycles clockwise through the four directions.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// TurnRight returns the heading after a 90 degree clockwise turn.
func (h Heading) TurnRight() Heading {
	return (h + 1) % HeadingCount
}

// Delta returns the per-step cell offset for the heading. North
// decreases Y because row 0 is the top of the map.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Glyph returns the map character for a guard facing this heading.
func (h Heading) Glyph() rune {
	switch h {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	default:
		return '<'
	}
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// headingForGlyph maps a guard marker to its heading.
func headingForGlyph(r rune) (Heading, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	default:
		return 0, false
	}
}
