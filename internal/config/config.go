// Package config provides configuration for the puzzle solver and its
// batch tooling.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Solver SolverConfig
	Output OutputConfig
	Cache  CacheConfig

	// Workers is the number of goroutines used for batch verification.
	Workers int

	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// LogFile receives diagnostics.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Solver:    *NewSolverConfig(),
		Output:    *NewOutputConfig(),
		Cache:     *NewCacheConfig(),
		Workers:   1,
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}

// Validate checks every section and returns the first problem found,
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must not be negative, got %d", c.Verbosity)
	}
	if err := c.Solver.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}
