// Package grid models the rectangular patrol map: obstacle cells, the
// guard's start state, and bounds checks for positions.
//
// A Grid is immutable once parsed. Obstacle trials use WithObstacle,
// which returns a lightweight Overlay view instead of copying the map,
// so a search can test thousands of placements against one Grid.
package grid

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrEmptyGrid is returned when the input contains no rows.
	ErrEmptyGrid = errors.New("grid: map is empty")

	// ErrRaggedRow is returned when a row's width differs from the first row's.
	ErrRaggedRow = errors.New("grid: rows have unequal widths")

	// ErrNoGuard is returned when the map contains no guard marker.
	ErrNoGuard = errors.New("grid: no guard marker found")

	// ErrMultipleGuards is returned when the map contains more than one guard marker.
	ErrMultipleGuards = errors.New("grid: multiple guard markers found")

	// ErrUnknownGlyph is returned for characters outside the map alphabet.
	ErrUnknownGlyph = errors.New("grid: unknown map character")

	// ErrOutOfBounds is returned for positions outside the map.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrStartBlocked is returned when an obstacle would cover the guard start.
	ErrStartBlocked = errors.New("grid: obstacle covers guard start")
)

// Position is a cell coordinate. X grows to the right and Y grows
// downward; the top-left cell is {0, 0}.
type Position struct {
	X int
	Y int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// GuardState is a position plus the heading the guard faces there.
type GuardState struct {
	Pos     Position
	Heading Heading
}

// String implements fmt.Stringer.
func (s GuardState) String() string {
	return fmt.Sprintf("%s %s", s.Pos, s.Heading)
}

// Grid is the immutable patrol map. Obstacles are stored one bit per
// cell in row-major order.
type Grid struct {
	width     int
	height    int
	obstacles []uint64
	start     GuardState
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the guard state encoded in the map.
func (g *Grid) Start() GuardState { return g.start }

// InBounds reports whether p lies on the map.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Blocked reports whether p holds an obstacle. Positions outside the
// map are never blocked.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	i := p.Y*g.width + p.X
	return g.obstacles[i/64]&(1<<(i%64)) != 0
}

// Obstacles returns the number of obstacle cells.
func (g *Grid) Obstacles() int {
	n := 0
	for _, word := range g.obstacles {
		n += bits.OnesCount64(word)
	}
	return n
}

// Open returns the number of cells without an obstacle, including the
// guard's start cell.
func (g *Grid) Open() int {
	return g.width*g.height - g.Obstacles()
}

func (g *Grid) setObstacle(p Position) {
	i := p.Y*g.width + p.X
	g.obstacles[i/64] |= 1 << (i % 64)
}

// WithObstacle returns a view of the grid with one extra obstacle at
// p. The grid itself is not modified. Placements outside the map or
// on the guard start are rejected.
func (g *Grid) WithObstacle(p Position) (Overlay, error) {
	if !g.InBounds(p) {
		return Overlay{}, fmt.Errorf("obstacle at %s: %w", p, ErrOutOfBounds)
	}
	if p == g.start.Pos {
		return Overlay{}, fmt.Errorf("obstacle at %s: %w", p, ErrStartBlocked)
	}
	return Overlay{base: g, extra: p}, nil
}

// Overlay is a Grid plus one hypothetical obstacle. It exposes the
// same read surface as Grid and is cheap to pass by value. Build one
// with Grid.WithObstacle.
type Overlay struct {
	base  *Grid
	extra Position
}

// InBounds reports whether p lies on the underlying map.
func (o Overlay) InBounds(p Position) bool { return o.base.InBounds(p) }

// Blocked reports whether p holds an obstacle. The extra position is
// checked before the underlying map.
func (o Overlay) Blocked(p Position) bool {
	return p == o.extra || o.base.Blocked(p)
}

// Extra returns the overlay's added obstacle position.
func (o Overlay) Extra() Position { return o.extra }
