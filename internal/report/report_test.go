package report

import (
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/patrol"
)

func sampleAnalysis() *Analysis {
	return &Analysis{
		MapName:   "maps/lab.txt",
		Width:     10,
		Height:    10,
		Obstacles: 8,
		Start: grid.GuardState{
			Pos:     grid.Position{X: 4, Y: 6},
			Heading: grid.North,
		},
		Outcome:    patrol.Exited,
		Coverage:   41,
		WalkSteps:  54,
		Searched:   40,
		Paradoxes:  6,
		Workers:    4,
		WalkTime:   120 * time.Microsecond,
		SearchTime: 3 * time.Millisecond,
	}
}

func TestSummary(t *testing.T) {
	color.Disable()

	s := sampleAnalysis().Summary(false)

	for _, want := range []string{
		"=== Patrol Analysis ===",
		"maps/lab.txt",
		"10x10",
		"8 obstacles",
		"(4,6) north",
		"exited",
		"Coverage: 41 positions",
		"Paradoxes: 6 of 40 route cells",
		"4 workers",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() missing %q:\n%s", want, s)
		}
	}
}

func TestSummaryRedacted(t *testing.T) {
	color.Disable()

	s := sampleAnalysis().Summary(true)

	if !strings.Contains(s, Masked) {
		t.Fatalf("redacted Summary() missing mask:\n%s", s)
	}
	if strings.Contains(s, "Coverage: 41") {
		t.Errorf("redacted Summary() leaks the coverage count:\n%s", s)
	}
	if strings.Contains(s, "Paradoxes: 6 ") {
		t.Errorf("redacted Summary() leaks the paradox count:\n%s", s)
	}

	// Non-answer details stay visible.
	for _, want := range []string{"maps/lab.txt", "10x10", "(4,6) north"} {
		if !strings.Contains(s, want) {
			t.Errorf("redacted Summary() missing %q:\n%s", want, s)
		}
	}
}

func TestSummarySearchSkipped(t *testing.T) {
	color.Disable()

	a := sampleAnalysis()
	a.SearchSkipped = true
	a.SkipReason = "disabled by flag"
	a.Paradoxes = 0
	a.Searched = 0

	s := a.Summary(false)
	if !strings.Contains(s, "skipped (disabled by flag)") {
		t.Errorf("Summary() missing skip notice:\n%s", s)
	}
	if strings.Contains(s, "workers") {
		t.Errorf("Summary() shows search timing for a skipped search:\n%s", s)
	}
}

func TestSummaryExhaustive(t *testing.T) {
	color.Disable()

	a := sampleAnalysis()
	a.Exhaustive = true
	a.Searched = 91

	s := a.Summary(false)
	if !strings.Contains(s, "6 of 91 open cells (exhaustive)") {
		t.Errorf("Summary() missing exhaustive wording:\n%s", s)
	}
}

func TestLogFields(t *testing.T) {
	a := sampleAnalysis()
	fields := a.LogFields()

	if fields["coverage"] != 41 {
		t.Errorf("coverage field = %v, want 41", fields["coverage"])
	}
	if fields["paradoxes"] != 6 {
		t.Errorf("paradoxes field = %v, want 6", fields["paradoxes"])
	}
	if fields["outcome"] != "exited" {
		t.Errorf("outcome field = %v, want 'exited'", fields["outcome"])
	}
}

func TestLogFieldsSkippedSearch(t *testing.T) {
	a := sampleAnalysis()
	a.SearchSkipped = true

	fields := a.LogFields()
	if _, ok := fields["paradoxes"]; ok {
		t.Error("paradoxes field present for a skipped search")
	}
	if _, ok := fields["coverage"]; !ok {
		t.Error("coverage field missing")
	}
}
