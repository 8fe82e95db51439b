package cmd

import (
	"fmt"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/spf13/cobra"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a patrol map without simulating",
	Long: `Validate parses the map and reports its dimensions, obstacle count,
and guard start state, or explains why the map is rejected. No
simulation is run.

Checks performed:
  - Map is non-empty and rectangular
  - Every character is a known glyph
  - Exactly one guard start marker
  - Guard start position and heading

Example:
  gopatrol validate --input maps/lab.txt`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "",
		"Path to map file, \"-\" for stdin (overrides config)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mapPath := cfg.Input.Path
	if validateInput != "" {
		mapPath = validateInput
	}

	text, err := readMap(cmd, mapPath)
	if err != nil {
		return fmt.Errorf("failed to read map: %w", err)
	}

	cmd.Printf("\n=== Map Validation ===\n")
	cmd.Printf("Map: %s\n\n", displayName(mapPath))

	g, start, err := grid.Parse(text)
	if err != nil {
		cmd.Printf("❌ Invalid map: %v\n", err)
		return fmt.Errorf("map validation failed")
	}

	cmd.Printf("Dimensions: %dx%d\n", g.Width(), g.Height())
	cmd.Printf("Obstacles: %d\n", g.Obstacles())
	cmd.Printf("Open cells: %d\n", g.Open())
	cmd.Printf("Guard start: %s\n\n", start)
	cmd.Printf("✅ Map is valid\n")

	return nil
}
