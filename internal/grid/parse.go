package grid

import (
	"fmt"
	"strings"
)

// Map glyphs accepted by Parse. Guard markers are the four heading
// glyphs '^', '>', 'v' and '<'.
const (
	glyphObstacle = '#'
	glyphOpen     = '.'
)

// ParseError describes a rejected map input. Line and Column are
// 1-based; Column is zero when the error concerns a whole row.
type ParseError struct {
	Line   int
	Column int
	Glyph  rune
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: glyph %q: %v", e.Line, e.Column, e.Glyph, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

// Parse builds a Grid from map text. Every line is one row; '#' marks
// an obstacle, '.' an open cell, and exactly one of '^', '>', 'v',
// '<' marks the guard start together with its heading. Both \n and
// \r\n line endings are accepted, and a single trailing newline does
// not count as a row.
//
// The returned GuardState duplicates Grid.Start for convenience.
func Parse(text string) (*Grid, GuardState, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, GuardState{}, ErrEmptyGrid
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}

	width := len(rows[0])
	if width == 0 {
		return nil, GuardState{}, ErrEmptyGrid
	}

	g := &Grid{
		width:     width,
		height:    len(rows),
		obstacles: make([]uint64, (width*len(rows)+63)/64),
	}

	haveGuard := false
	for y, row := range rows {
		if len(row) != width {
			return nil, GuardState{}, &ParseError{
				Line: y + 1,
				Err:  fmt.Errorf("row has %d cells, want %d: %w", len(row), width, ErrRaggedRow),
			}
		}
		for x, r := range row {
			switch r {
			case glyphObstacle:
				g.setObstacle(Position{X: x, Y: y})
			case glyphOpen:
				// open cell
			default:
				h, ok := headingForGlyph(r)
				if !ok {
					return nil, GuardState{}, &ParseError{Line: y + 1, Column: x + 1, Glyph: r, Err: ErrUnknownGlyph}
				}
				if haveGuard {
					return nil, GuardState{}, &ParseError{Line: y + 1, Column: x + 1, Glyph: r, Err: ErrMultipleGuards}
				}
				g.start = GuardState{Pos: Position{X: x, Y: y}, Heading: h}
				haveGuard = true
			}
		}
	}

	if !haveGuard {
		return nil, GuardState{}, ErrNoGuard
	}
	return g, g.start, nil
}
