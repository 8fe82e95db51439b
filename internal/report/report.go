// Package report assembles and formats the results of a patrol
// analysis for terminal output.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/patrol"
)

// Masked replaces result numbers in redacted summaries, so a shared
// terminal never shows the answers.
const Masked = "*****"

// Analysis contains statistics and status of one full map analysis.
type Analysis struct {
	MapName   string
	Width     int
	Height    int
	Obstacles int
	Start     grid.GuardState

	Outcome   patrol.Outcome
	Coverage  int
	WalkSteps int

	SearchSkipped bool
	SkipReason    string
	Exhaustive    bool
	Searched      int
	Paradoxes     int
	Workers       int

	StartedAt   time.Time
	CompletedAt time.Time
	WalkTime    time.Duration
	SearchTime  time.Duration
}

// Summary renders the analysis as a short human-readable block. With
// redact set, the coverage and paradox counts are masked.
func (a *Analysis) Summary(redact bool) string {
	var b strings.Builder

	b.WriteString(color.Bold.Sprint("=== Patrol Analysis ==="))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Map: %s (%dx%d, %d obstacles)\n", a.MapName, a.Width, a.Height, a.Obstacles)
	fmt.Fprintf(&b, "Guard start: %s\n", a.Start)
	fmt.Fprintf(&b, "Patrol: %s after %d steps\n", a.Outcome, a.WalkSteps)
	fmt.Fprintf(&b, "Coverage: %s positions\n", color.Green.Sprint(formatCount(a.Coverage, redact)))

	switch {
	case a.SearchSkipped:
		fmt.Fprintf(&b, "Paradox search: skipped (%s)\n", a.SkipReason)
	case a.Exhaustive:
		fmt.Fprintf(&b, "Paradoxes: %s of %d open cells (exhaustive)\n",
			color.Yellow.Sprint(formatCount(a.Paradoxes, redact)), a.Searched)
	default:
		fmt.Fprintf(&b, "Paradoxes: %s of %d route cells\n",
			color.Yellow.Sprint(formatCount(a.Paradoxes, redact)), a.Searched)
	}

	fmt.Fprintf(&b, "Timing: walk %s", a.WalkTime)
	if !a.SearchSkipped {
		fmt.Fprintf(&b, ", search %s (%d workers)", a.SearchTime, a.Workers)
	}
	b.WriteByte('\n')

	return b.String()
}

// LogFields returns the analysis as structured logging fields.
func (a *Analysis) LogFields() map[string]interface{} {
	fields := map[string]interface{}{
		"map":      a.MapName,
		"width":    a.Width,
		"height":   a.Height,
		"outcome":  a.Outcome.String(),
		"coverage": a.Coverage,
		"steps":    a.WalkSteps,
	}
	if !a.SearchSkipped {
		fields["paradoxes"] = a.Paradoxes
		fields["searched"] = a.Searched
		fields["workers"] = a.Workers
	}
	return fields
}

func formatCount(n int, redact bool) string {
	if redact {
		return Masked
	}
	return strconv.Itoa(n)
}
