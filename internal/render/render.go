// Package render draws patrol maps as terminal text.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/patrol"
)

// Glyphs for rendered cells, matching the input alphabet where one
// exists.
const (
	glyphObstacle = '#'
	glyphOpen     = '.'
	glyphVisited  = 'X'
	glyphParadox  = 'O'
)

// Options controls map rendering.
type Options struct {
	// Title is printed above the map when non-empty.
	Title string
	// Rulers adds column and row indices plus a legend.
	Rulers bool
}

// Map renders g with the walked route overlaid. Visited cells show
// 'X', paradox placements 'O', obstacles '#', and the start cell
// keeps its heading glyph. route and loops may be nil; a plain map
// without them parses back to the same grid.
func Map(g *grid.Grid, route *patrol.Route, loops []grid.Position, opts Options) string {
	loopSet := make(map[grid.Position]bool, len(loops))
	for _, p := range loops {
		loopSet[p] = true
	}

	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(opts.Title)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", runewidth.StringWidth(opts.Title)))
		b.WriteByte('\n')
	}

	labelWidth := runewidth.StringWidth(strconv.Itoa(g.Height() - 1))
	if opts.Rulers {
		b.WriteString(strings.Repeat(" ", labelWidth+1))
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(byte('0' + x%10))
		}
		b.WriteByte('\n')
	}

	start := g.Start()
	for y := 0; y < g.Height(); y++ {
		if opts.Rulers {
			b.WriteString(runewidth.FillLeft(strconv.Itoa(y), labelWidth))
			b.WriteByte(' ')
		}
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(cellGlyph(g, start, route, loopSet, grid.Position{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}

	if opts.Rulers {
		b.WriteByte('\n')
		b.WriteString(legend(len(loopSet) > 0))
		b.WriteByte('\n')
	}

	return b.String()
}

func cellGlyph(g *grid.Grid, start grid.GuardState, route *patrol.Route, loopSet map[grid.Position]bool, p grid.Position) rune {
	switch {
	case p == start.Pos:
		return start.Heading.Glyph()
	case g.Blocked(p):
		return glyphObstacle
	case loopSet[p]:
		return glyphParadox
	case route != nil && route.Contains(p):
		return glyphVisited
	default:
		return glyphOpen
	}
}

func legend(withParadoxes bool) string {
	parts := []string{
		"^>v< guard start",
		string(glyphObstacle) + " obstacle",
		string(glyphVisited) + " patrolled",
		string(glyphOpen) + " open",
	}
	if withParadoxes {
		parts = append(parts, string(glyphParadox)+" paradox obstacle")
	}
	return "legend: " + strings.Join(parts, "  ")
}
