package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/paradox"
	"github.com/dbsmedya/gopatrol/internal/patrol"
	"github.com/dbsmedya/gopatrol/internal/render"
	"github.com/spf13/cobra"
)

// outputWriter is used for printing rendered maps, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

var (
	renderInput    string
	renderNoRulers bool
	renderLoops    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the walked patrol route over the map",
	Long: `Render walks the guard across the map and draws the result: visited
cells are marked X, obstacles #, and the start cell keeps its heading
glyph.

The rendered map shows:
  - Coordinate rulers (column and row indices)
  - The baseline route
  - Optionally every loop-forcing obstacle placement (marked O)

Example:
  gopatrol render --input maps/lab.txt --loops`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "",
		"Path to map file, \"-\" for stdin (overrides config)")
	renderCmd.Flags().BoolVar(&renderNoRulers, "no-rulers", false,
		"Skip coordinate rulers and the legend")
	renderCmd.Flags().BoolVar(&renderLoops, "loops", false,
		"Mark loop-forcing obstacle placements")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mapPath := cfg.Input.Path
	if renderInput != "" {
		mapPath = renderInput
	}

	text, err := readMap(cmd, mapPath)
	if err != nil {
		return fmt.Errorf("failed to read map: %w", err)
	}

	g, start, err := grid.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse map: %w", err)
	}

	// Baseline walk for the route overlay
	route := patrol.NewRoute()
	states := patrol.NewStateSet(g.Width(), g.Height())
	res := patrol.Walk(g, start, states, route)

	// Optionally mark the placements that would trap the patrol
	var loops []grid.Position
	if renderLoops {
		if res.Outcome == patrol.LoopDetected {
			return fmt.Errorf("baseline patrol already loops, nothing to mark")
		}
		searcher := paradox.NewSearcher(cfg.Search.Workers, cfg.Search.ChunkSize, nil)
		loops, err = searcher.Find(context.Background(), g, start, route.Candidates(start.Pos))
		if err != nil {
			return fmt.Errorf("paradox search failed: %w", err)
		}
	}

	out := render.Map(g, route, loops, render.Options{
		Title:  displayName(mapPath),
		Rulers: cfg.Output.Rulers && !renderNoRulers,
	})
	fmt.Fprint(outputWriter, out)

	if res.Outcome == patrol.Exited {
		fmt.Fprintf(outputWriter, "\nCoverage: %d positions in %d steps\n", route.Len(), res.Steps)
	} else {
		fmt.Fprintf(outputWriter, "\nPatrol loops after %d steps, %d positions covered\n", res.Steps, route.Len())
	}
	if renderLoops {
		fmt.Fprintf(outputWriter, "Paradox placements: %d\n", len(loops))
	}

	return nil
}
