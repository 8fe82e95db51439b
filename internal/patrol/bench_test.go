package patrol

import (
	"testing"

	"github.com/dbsmedya/gopatrol/internal/grid"
)

func BenchmarkWalk(b *testing.B) {
	g, start, err := grid.Parse(sampleMap)
	if err != nil {
		b.Fatalf("Parse() failed: %v", err)
	}
	states := NewStateSet(g.Width(), g.Height())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(g, start, states, nil)
	}
}

func BenchmarkWalkWithRoute(b *testing.B) {
	g, start, err := grid.Parse(sampleMap)
	if err != nil {
		b.Fatalf("Parse() failed: %v", err)
	}
	states := NewStateSet(g.Width(), g.Height())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(g, start, states, NewRoute())
	}
}
