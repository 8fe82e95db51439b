package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dbsmedya/gopatrol/internal/config"
	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/logger"
	"github.com/dbsmedya/gopatrol/internal/paradox"
	"github.com/dbsmedya/gopatrol/internal/patrol"
	"github.com/dbsmedya/gopatrol/internal/report"
	"github.com/dbsmedya/gopatrol/internal/shutdown"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	runInput      string
	runSkipSearch bool
	runExhaustive bool
	runRedact     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the patrol simulation and paradox search",
	Long: `Run walks the guard across the map until it leaves the area or
repeats a (position, heading) state, then trials an extra obstacle on
every walked cell to count the placements that would trap the patrol.

The analysis follows these steps:
  1. Parse and check the map
  2. Walk the baseline patrol, recording coverage in visit order
  3. Trial obstacle placements in parallel across the walked route
  4. Report coverage and paradox counts

Example:
  gopatrol run --input maps/lab.txt --workers 8`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "",
		"Path to map file, \"-\" for stdin (overrides config)")
	runCmd.Flags().BoolVar(&runSkipSearch, "skip-search", false,
		"Stop after the baseline walk (coverage only)")
	runCmd.Flags().BoolVar(&runExhaustive, "exhaustive", false,
		"Trial every open cell instead of only the walked route (slow)")
	runCmd.Flags().BoolVar(&runRedact, "redact", false,
		"Mask result numbers in the summary")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Output.Color {
		color.Disable()
	}

	mapPath := cfg.Input.Path
	if runInput != "" {
		mapPath = runInput
	}

	log.Infow("Starting patrol analysis",
		"map", displayName(mapPath),
		"config", GetConfigFile(),
	)

	// Read and parse the map
	text, err := readMap(cmd, mapPath)
	if err != nil {
		return fmt.Errorf("failed to read map: %w", err)
	}

	g, start, err := grid.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse map: %w", err)
	}

	analysis := &report.Analysis{
		MapName:   displayName(mapPath),
		Width:     g.Width(),
		Height:    g.Height(),
		Obstacles: g.Obstacles(),
		Start:     start,
		StartedAt: time.Now(),
	}

	// Baseline walk with coverage tracking
	route := patrol.NewRoute()
	states := patrol.NewStateSet(g.Width(), g.Height())
	walkStart := time.Now()
	res := patrol.Walk(g, start, states, route)
	analysis.WalkTime = time.Since(walkStart)
	analysis.Outcome = res.Outcome
	analysis.WalkSteps = res.Steps
	analysis.Coverage = route.Len()

	log.Infow("Baseline walk complete",
		"outcome", res.Outcome.String(),
		"steps", res.Steps,
		"coverage", route.Len(),
	)

	// Paradox search. A patrol that already loops has no exit to
	// prevent, so there is nothing to search for.
	switch {
	case runSkipSearch:
		analysis.SearchSkipped = true
		analysis.SkipReason = "disabled via --skip-search"
	case res.Outcome == patrol.LoopDetected:
		analysis.SearchSkipped = true
		analysis.SkipReason = "baseline patrol already loops"
	default:
		if err := runSearch(cfg, log, g, start, route, analysis); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("Paradox search cancelled by user")
				return nil
			}
			return fmt.Errorf("paradox search failed: %w", err)
		}
	}

	analysis.CompletedAt = time.Now()

	log.WithFields(analysis.LogFields()).Info("Patrol analysis complete")

	// Display results
	cmd.Printf("\n%s", analysis.Summary(runRedact || cfg.Output.Redact))

	return nil
}

// runSearch runs the paradox search phase and fills the search fields
// of analysis. SIGINT and SIGTERM cancel the search.
func runSearch(cfg *config.Config, log *logger.Logger,
	g *grid.Grid, start grid.GuardState, route *patrol.Route, analysis *report.Analysis) error {

	searcher := paradox.NewSearcher(cfg.Search.Workers, cfg.Search.ChunkSize, log)
	analysis.Workers = searcher.Workers()
	analysis.Exhaustive = runExhaustive || cfg.Search.Exhaustive

	// Setup context with signal handling
	ctx, cancel := shutdown.Context(context.Background(), func(os.Signal) {
		log.Warn("Received shutdown signal - stopping search...")
	})
	defer cancel()

	searchStart := time.Now()
	var count int
	var err error
	if analysis.Exhaustive {
		analysis.Searched = g.Open() - 1
		count, err = searcher.CountExhaustive(ctx, g, start)
	} else {
		candidates := route.Candidates(start.Pos)
		analysis.Searched = len(candidates)
		count, err = searcher.Count(ctx, g, start, candidates)
	}
	analysis.SearchTime = time.Since(searchStart)
	if err != nil {
		return err
	}

	analysis.Paradoxes = count
	return nil
}

// readMap returns the map text from path, reading stdin when path is
// "-".
func readMap(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// displayName labels the map in summaries; stdin has no path to show.
func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
