// Package patrol simulates the guard's walk over a parsed map.
//
// The guard repeats one rule: if the cell directly ahead is blocked,
// turn right in place, otherwise step forward. Leaving the map ends
// the walk with Exited. Revisiting a (position, heading) state means
// the rule can only repeat itself, so the walk ends with LoopDetected.
// The walk is fully deterministic; the same map and start always
// produce the same Result.
package patrol

import "github.com/dbsmedya/gopatrol/internal/grid"

// Field is the read surface Walk needs from a map. Both *grid.Grid
// and grid.Overlay satisfy it.
type Field interface {
	InBounds(grid.Position) bool
	Blocked(grid.Position) bool
}

// Outcome classifies how a walk ended.
type Outcome uint8

const (
	// Exited means the guard stepped off the map.
	Exited Outcome = iota
	// LoopDetected means the guard reached a position and heading it
	// had held before, so the walk would repeat forever.
	LoopDetected
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case LoopDetected:
		return "loop"
	default:
		return "unknown"
	}
}

// Result is the outcome of one walk. Steps counts transitions; a move
// to the next cell and a turn in place each count as one.
type Result struct {
	Outcome Outcome
	Steps   int
}

// Walk runs the guard from start until it leaves f or revisits a
// state. states is cleared before use and must be sized for f's
// dimensions. route, when non-nil, receives every distinct visited
// position in first-visit order; pass a fresh Route for a fresh
// tally, or nil when only the outcome matters.
//
// Each step marks one previously unseen state, so Walk returns after
// at most 4*width*height steps.
func Walk(f Field, start grid.GuardState, states *StateSet, route *Route) Result {
	states.Reset()
	if route != nil {
		route.Record(start.Pos)
	}

	cur := start
	steps := 0
	for {
		if states.Seen(cur) {
			return Result{Outcome: LoopDetected, Steps: steps}
		}
		states.Mark(cur)

		dx, dy := cur.Heading.Delta()
		next := grid.Position{X: cur.Pos.X + dx, Y: cur.Pos.Y + dy}
		switch {
		case !f.InBounds(next):
			return Result{Outcome: Exited, Steps: steps}
		case f.Blocked(next):
			cur.Heading = cur.Heading.TurnRight()
		default:
			cur.Pos = next
			if route != nil {
				route.Record(next)
			}
		}
		steps++
	}
}
