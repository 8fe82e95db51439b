package patrol

import (
	"testing"

	"github.com/dbsmedya/gopatrol/internal/grid"
)

func TestRouteRecordKeepsFirstVisitOrder(t *testing.T) {
	r := NewRoute()
	r.Record(grid.Position{X: 2, Y: 0})
	r.Record(grid.Position{X: 1, Y: 0})
	r.Record(grid.Position{X: 2, Y: 0}) // revisit
	r.Record(grid.Position{X: 0, Y: 5})

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	want := []grid.Position{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 5}}
	got := r.Positions()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRouteContains(t *testing.T) {
	r := NewRoute()
	r.Record(grid.Position{X: 3, Y: 4})

	if !r.Contains(grid.Position{X: 3, Y: 4}) {
		t.Error("Contains() = false for a recorded position")
	}
	if r.Contains(grid.Position{X: 4, Y: 3}) {
		t.Error("Contains() = true for an unrecorded position")
	}
}

func TestRouteCandidatesExcludesStart(t *testing.T) {
	start := grid.Position{X: 1, Y: 1}

	r := NewRoute()
	r.Record(start)
	r.Record(grid.Position{X: 1, Y: 0})
	r.Record(grid.Position{X: 2, Y: 0})

	got := r.Candidates(start)
	want := []grid.Position{{X: 1, Y: 0}, {X: 2, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRouteCandidatesStartOnly(t *testing.T) {
	start := grid.Position{X: 0, Y: 0}

	r := NewRoute()
	r.Record(start)

	if got := r.Candidates(start); len(got) != 0 {
		t.Errorf("Candidates() = %v, want empty", got)
	}
}

func TestRouteEmpty(t *testing.T) {
	r := NewRoute()
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if got := r.Positions(); len(got) != 0 {
		t.Errorf("Positions() = %v, want empty", got)
	}
}
