package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-puzzles-go/internal/config"
	"github.com/lgbarn/chess-puzzles-go/internal/output"
	"github.com/lgbarn/chess-puzzles-go/internal/processing"
	"github.com/lgbarn/chess-puzzles-go/internal/puzzle"
	"github.com/lgbarn/chess-puzzles-go/internal/store"
	"github.com/lgbarn/chess-puzzles-go/internal/worker"
)

// errPuzzlesFailed is returned when verification ran but some puzzles
// were unsolvable, exceeded the limits, missed their target or were invalid.
var errPuzzlesFailed = errors.New("puzzles failed verification")

func newVerifyCmd(a *app) *cobra.Command {
	var (
		workers int
		cache   string
		bounds  solverFlags
	)

	cmd := &cobra.Command{
		Use:   "verify <file.jsonl>...",
		Short: "Check that every puzzle in a set is solvable",
		Long: `Verify solves every puzzle in one or more JSON-lines files and checks the
shortest solution against the puzzle's declared target_moves. Use "-" to
read standard input. Each line holds one puzzle:

  {"id": "p1", "fen": "8/8/8/3p4/4P3/8/8/8 w", "module": "capture", "target_moves": 1}

A puzzle whose start position repeats an earlier one in the same module
is reported as a duplicate and not solved again. With --cache, solutions
are kept in a SQLite database and reused by later runs.

The exit status is 1 when any puzzle fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("cache") {
				cfg.Cache = config.CacheConfig{Enabled: cache != "", Path: cache}
			}
			if err := bounds.apply(cmd, cfg); err != nil {
				return err
			}

			puzzles, err := loadPuzzles(cmd, args)
			if err != nil {
				return err
			}

			var c processing.Cache
			if cfg.Cache.Enabled {
				s, err := store.Open(cfg.Cache.Path)
				if err != nil {
					return err
				}
				defer s.Close()
				c = s
			}

			verifier := processing.NewVerifier(cfg, c)
			results := worker.VerifyAll(cmd.Context(), verifier, puzzles, worker.WithWorkers(cfg.Workers))
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			w := output.NewReportWriter(cfg, nil)
			failed := 0
			for _, r := range results {
				if r.Failed() {
					failed++
				}
				if err := w.WriteVerification(r); err != nil {
					return err
				}
			}
			if err := w.Close(); err != nil {
				return err
			}

			if cfg.Verbosity > 0 && verifier.DuplicateCount() > 0 {
				fmt.Fprintf(cfg.LogFile, "%d duplicate puzzles skipped\n", verifier.DuplicateCount())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d %w", failed, len(results), errPuzzlesFailed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of puzzles verified in parallel")
	cmd.Flags().StringVar(&cache, "cache", "", "SQLite database caching solutions (empty disables)")
	bounds.register(cmd)
	return cmd
}

// loadPuzzles reads every named file in order; "-" is standard input.
func loadPuzzles(cmd *cobra.Command, paths []string) ([]puzzle.Puzzle, error) {
	var all []puzzle.Puzzle
	for _, path := range paths {
		var src puzzle.Source = puzzle.FileSource{Path: path}
		if path == "-" {
			src = puzzle.ReaderSource{Reader: cmd.InOrStdin()}
		}
		puzzles, err := src.Puzzles()
		if err != nil {
			return nil, err
		}
		all = append(all, puzzles...)
	}
	return all, nil
}

