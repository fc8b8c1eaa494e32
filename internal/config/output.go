package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// OutputFormat selects how reports are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable lines
	JSON                     // One JSON document per report
)

// String returns the format name used in configuration files.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat accepts "text" or "json".
func ParseOutputFormat(text string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "output format %q", text)
}

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format specifies the report format (Text or JSON)
	Format OutputFormat

	// Writer receives reports
	Writer io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
		Writer: os.Stdout,
	}
}

// Validate checks the format is known.
func (c *OutputConfig) Validate() error {
	if c.Format != Text && c.Format != JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", int(c.Format))
	}
	return nil
}
