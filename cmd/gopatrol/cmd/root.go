package cmd

import (
	"fmt"
	"os"

	"github.com/dbsmedya/gopatrol/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	workers   int
	chunkSize int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "gopatrol",
	Short: "Guard Patrol Simulator & Paradox Finder",
	Long: `A CLI tool for simulating a guard patrolling a mapped area and for
finding every single-obstacle placement that would trap the patrol in
an endless loop.

Features:
  - Deterministic patrol simulation with loop detection
  - Distinct-position coverage reported in first-visit order
  - Parallel paradox search over the walked route
  - Exhaustive every-open-cell search mode as a cross-check
  - ASCII route rendering with coordinate rulers`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional, built-in defaults apply without one)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Search overrides
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0,
		"Override search worker count (0 = one per CPU)")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 0,
		"Override candidate cells per search work chunk")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Workers   int
	ChunkSize int
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Workers:   workers,
		ChunkSize: chunkSize,
		NoColor:   noColor,
	}
}

// loadConfig loads the configured YAML file, or built-in defaults when
// no config file was given, then applies CLI overrides and validates
// the result. Every verb starts here.
func loadConfig() (*config.Config, error) {
	configFile := GetConfigFile()

	var cfg *config.Config
	if configFile == "" {
		cfg = config.DefaultConfig()
	} else {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Workers, overrides.ChunkSize, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
