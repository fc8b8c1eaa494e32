package config

import (
	"io"

	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxNodes bounds the states recorded per search.
func (b *ConfigBuilder) WithMaxNodes(n int) *ConfigBuilder {
	b.cfg.Solver.MaxNodes = n
	return b
}

// WithMaxDepth bounds the searched solution length.
func (b *ConfigBuilder) WithMaxDepth(d int) *ConfigBuilder {
	b.cfg.Solver.MaxDepth = d
	return b
}

// WithKeyMode sets the visited-state key mode.
func (b *ConfigBuilder) WithKeyMode(mode hashing.KeyMode) *ConfigBuilder {
	b.cfg.Solver.KeyMode = mode
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the report writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithCache enables the solution cache at path.
func (b *ConfigBuilder) WithCache(path string) *ConfigBuilder {
	b.cfg.Cache.Enabled = path != ""
	b.cfg.Cache.Path = path
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
