package config

import "github.com/lgbarn/chess-puzzles-go/internal/errors"

// CacheConfig holds settings for the solution cache.
type CacheConfig struct {
	// Enabled turns the cache on
	Enabled bool

	// Path is the sqlite database file
	Path string
}

// NewCacheConfig creates a disabled CacheConfig.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{}
}

// Validate requires a path when the cache is enabled.
func (c *CacheConfig) Validate() error {
	if c.Enabled && c.Path == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "cache enabled without a path")
	}
	return nil
}
