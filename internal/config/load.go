package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
)

// EnvPrefix prefixes environment overrides, e.g. CHESS_PUZZLES_WORKERS.
const EnvPrefix = "CHESS_PUZZLES"

// Configuration keys. Nested keys map to environment variables with "."
// replaced by "_", e.g. solver.max_nodes -> CHESS_PUZZLES_SOLVER_MAX_NODES.
const (
	keyMaxNodes     = "solver.max_nodes"
	keyMaxDepth     = "solver.max_depth"
	keyKeyMode      = "solver.key_mode"
	keyOutputFormat = "output.format"
	keyCacheEnabled = "cache.enabled"
	keyCachePath    = "cache.path"
	keyWorkers      = "workers"
	keyVerbosity    = "verbosity"
)

// Load builds a Config from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty path skips the
// file. The result is validated.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	defaults := NewConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(keyMaxNodes, defaults.Solver.MaxNodes)
	v.SetDefault(keyMaxDepth, defaults.Solver.MaxDepth)
	v.SetDefault(keyKeyMode, defaults.Solver.KeyMode.String())
	v.SetDefault(keyOutputFormat, defaults.Output.Format.String())
	v.SetDefault(keyCacheEnabled, defaults.Cache.Enabled)
	v.SetDefault(keyCachePath, defaults.Cache.Path)
	v.SetDefault(keyWorkers, defaults.Workers)
	v.SetDefault(keyVerbosity, defaults.Verbosity)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	keyMode, err := hashing.ParseKeyMode(v.GetString(keyKeyMode))
	if err != nil {
		return nil, err
	}
	format, err := ParseOutputFormat(v.GetString(keyOutputFormat))
	if err != nil {
		return nil, err
	}

	cfg := NewConfigBuilder().
		WithMaxNodes(v.GetInt(keyMaxNodes)).
		WithMaxDepth(v.GetInt(keyMaxDepth)).
		WithKeyMode(keyMode).
		WithOutputFormat(format).
		WithWorkers(v.GetInt(keyWorkers)).
		WithVerbosity(v.GetInt(keyVerbosity)).
		Build()
	cfg.Cache.Enabled = v.GetBool(keyCacheEnabled)
	cfg.Cache.Path = v.GetString(keyCachePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
