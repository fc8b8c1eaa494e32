package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/lgbarn/chess-puzzles-go/internal/errors"
	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Solver.MaxNodes != 0 || cfg.Solver.MaxDepth != 0 {
		t.Errorf("solver limits = %d/%d, want unbounded", cfg.Solver.MaxNodes, cfg.Solver.MaxDepth)
	}
	if cfg.Solver.KeyMode != hashing.KeyNotation {
		t.Errorf("KeyMode = %v, want notation", cfg.Solver.KeyMode)
	}
	if cfg.Output.Format != Text {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache should be disabled by default")
	}
	if cfg.Output.Writer != os.Stdout {
		t.Error("Output.Writer should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bounded search", func(c *Config) { c.Solver.MaxNodes = 1000; c.Solver.MaxDepth = 6 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"negative max nodes", func(c *Config) { c.Solver.MaxNodes = -1 }, true},
		{"negative max depth", func(c *Config) { c.Solver.MaxDepth = -3 }, true},
		{"unknown key mode", func(c *Config) { c.Solver.KeyMode = hashing.KeyMode(9) }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(5) }, true},
		{"cache without path", func(c *Config) { c.Cache.Enabled = true }, true},
		{"cache with path", func(c *Config) { c.Cache.Enabled = true; c.Cache.Path = "cache.db" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, perrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder sets every field
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithMaxNodes(500).
		WithMaxDepth(8).
		WithKeyMode(hashing.KeyZobrist).
		WithOutputFormat(JSON).
		WithOutput(&out).
		WithCache("solutions.db").
		WithWorkers(4).
		WithVerbosity(2).
		WithLogFile(&log).
		Build()

	if cfg.Solver.MaxNodes != 500 || cfg.Solver.MaxDepth != 8 {
		t.Errorf("solver limits = %d/%d, want 500/8", cfg.Solver.MaxNodes, cfg.Solver.MaxDepth)
	}
	if cfg.Solver.KeyMode != hashing.KeyZobrist {
		t.Errorf("KeyMode = %v, want zobrist", cfg.Solver.KeyMode)
	}
	if cfg.Output.Format != JSON || cfg.Output.Writer != &out {
		t.Error("output settings not applied")
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != "solutions.db" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Workers != 4 || cfg.Verbosity != 2 || cfg.LogFile != &log {
		t.Error("general settings not applied")
	}
}

func TestConfigBuilder_EmptyCachePathDisables(t *testing.T) {
	cfg := NewConfigBuilder().WithCache("").Build()
	if cfg.Cache.Enabled {
		t.Error("empty cache path should leave the cache disabled")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"JSON", JSON, false},
		{"yaml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Workers != 1 || cfg.Solver.KeyMode != hashing.KeyNotation {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
solver:
  max_nodes: 20000
  max_depth: 12
  key_mode: zobrist
output:
  format: json
cache:
  enabled: true
  path: /tmp/solutions.db
workers: 6
verbosity: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Solver.MaxNodes != 20000 || cfg.Solver.MaxDepth != 12 {
		t.Errorf("solver limits = %d/%d", cfg.Solver.MaxNodes, cfg.Solver.MaxDepth)
	}
	if cfg.Solver.KeyMode != hashing.KeyZobrist {
		t.Errorf("KeyMode = %v, want zobrist", cfg.Solver.KeyMode)
	}
	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != "/tmp/solutions.db" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Workers != 6 || cfg.Verbosity != 2 {
		t.Errorf("workers/verbosity = %d/%d", cfg.Workers, cfg.Verbosity)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "workers: 2\nsolver:\n  max_depth: 5\n")
	t.Setenv("CHESS_PUZZLES_WORKERS", "8")
	t.Setenv("CHESS_PUZZLES_SOLVER_MAX_DEPTH", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Solver.MaxDepth != 9 {
		t.Errorf("MaxDepth = %d, want 9", cfg.Solver.MaxDepth)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad key mode", "solver:\n  key_mode: sha1\n", true},
		{"bad format", "output:\n  format: xml\n", true},
		{"zero workers", "workers: 0\n", true},
		{"cache without path", "cache:\n  enabled: true\n", true},
		{"bad yaml", "workers: [\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if tt.invalid && !errors.Is(err, perrors.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
