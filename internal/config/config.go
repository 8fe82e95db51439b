// Package config provides configuration structures and loading for GoPatrol.
package config

// Config represents the complete application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig selects the patrol map to analyze.
type InputConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // file path, or "-" for stdin
}

// SearchConfig represents paradox search settings.
type SearchConfig struct {
	Workers    int  `yaml:"workers" mapstructure:"workers"`       // 0 = one per CPU
	ChunkSize  int  `yaml:"chunk_size" mapstructure:"chunk_size"` // 0 = built-in default
	Exhaustive bool `yaml:"exhaustive" mapstructure:"exhaustive"` // try every open cell instead of the walked route
}

// OutputConfig represents result presentation settings.
type OutputConfig struct {
	Color  bool `yaml:"color" mapstructure:"color"`
	Rulers bool `yaml:"rulers" mapstructure:"rulers"`
	Redact bool `yaml:"redact" mapstructure:"redact"` // mask result numbers in the summary
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "-",
		},
		Search: SearchConfig{
			Workers:    0,
			ChunkSize:  0,
			Exhaustive: false,
		},
		Output: OutputConfig{
			Color:  true,
			Rulers: true,
			Redact: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
