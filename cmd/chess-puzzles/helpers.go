package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-puzzles-go/internal/config"
	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
)

// solverFlags are the search bounds shared by solve and verify.
type solverFlags struct {
	maxNodes int
	maxDepth int
	key      string
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxNodes, "max-nodes", 0, "maximum positions recorded per search (0 = unbounded)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum solution length in moves (0 = unbounded)")
	cmd.Flags().StringVar(&f.key, "key", "", "position key: notation or zobrist")
}

// apply overrides cfg with the flags the user set explicitly.
func (f *solverFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("max-nodes") {
		cfg.Solver.MaxNodes = f.maxNodes
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Solver.MaxDepth = f.maxDepth
	}
	if cmd.Flags().Changed("key") {
		mode, err := hashing.ParseKeyMode(f.key)
		if err != nil {
			return err
		}
		cfg.Solver.KeyMode = mode
	}
	return cfg.Validate()
}

func registerModuleFlag(cmd *cobra.Command, module *string) {
	cmd.Flags().StringVarP(module, "module", "m", rules.ModuleCapture.String(),
		"puzzle module: capture, safe-capture or king-hunt")
}

// strategyFor resolves a module name to its rule strategy.
func strategyFor(name string) (rules.Strategy, error) {
	m, err := rules.ParseModule(name)
	if err != nil {
		return nil, err
	}
	return rules.ForModule(m)
}
