package patrol

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/gopatrol/internal/grid"
)

// Route records the distinct positions a walk visited, in first-visit
// order. Recording a position again keeps its original slot, so Len
// is the number of unique cells covered.
type Route struct {
	cells *orderedmap.OrderedMap[grid.Position, struct{}]
}

// NewRoute returns an empty route.
func NewRoute() *Route {
	return &Route{cells: orderedmap.NewOrderedMap[grid.Position, struct{}]()}
}

// Record adds p to the route.
func (r *Route) Record(p grid.Position) {
	r.cells.Set(p, struct{}{})
}

// Contains reports whether p was visited.
func (r *Route) Contains(p grid.Position) bool {
	_, ok := r.cells.Get(p)
	return ok
}

// Len returns the number of distinct visited positions.
func (r *Route) Len() int {
	return r.cells.Len()
}

// Positions returns the visited positions in first-visit order.
func (r *Route) Positions() []grid.Position {
	return r.cells.Keys()
}

// Candidates returns the visited positions except start, in
// first-visit order. A new obstacle can only change the walk when it
// sits on a cell the unmodified walk actually reaches, and it may
// never sit on the start itself.
func (r *Route) Candidates(start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, r.cells.Len())
	for el := r.cells.Front(); el != nil; el = el.Next() {
		if el.Key == start {
			continue
		}
		out = append(out, el.Key)
	}
	return out
}
