package config

import (
	"github.com/lgbarn/chess-puzzles-go/internal/errors"
	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
)

// SolverConfig holds search bounds and state keying.
type SolverConfig struct {
	// MaxNodes bounds the distinct states one search may record (0 = no limit)
	MaxNodes int

	// MaxDepth bounds the solution length searched for (0 = no limit)
	MaxDepth int

	// KeyMode selects notation or Zobrist keys for the visited set
	KeyMode hashing.KeyMode
}

// NewSolverConfig creates an unbounded SolverConfig keyed by notation.
func NewSolverConfig() *SolverConfig {
	return &SolverConfig{KeyMode: hashing.KeyNotation}
}

// Validate checks that the bounds are not negative.
func (c *SolverConfig) Validate() error {
	if c.MaxNodes < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max nodes must not be negative, got %d", c.MaxNodes)
	}
	if c.MaxDepth < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.KeyMode != hashing.KeyNotation && c.KeyMode != hashing.KeyZobrist {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown key mode %d", int(c.KeyMode))
	}
	return nil
}
