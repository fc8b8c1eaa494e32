package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/output"
	"github.com/lgbarn/chess-puzzles-go/internal/processing"
)

var errNoHint = errors.New("no hint: the position is already solved or has no solution")

func newSolveCmd(a *app) *cobra.Command {
	var (
		module string
		hint   bool
		bounds solverFlags
	)

	cmd := &cobra.Command{
		Use:   "solve <fen>",
		Short: "Find a shortest solution for a position",
		Long: `Solve searches breadth-first for the shortest sequence of moves that
solves the position under the chosen module.

The position is the board field of a FEN record followed by the side to
move, e.g. "8/8/8/3p4/4P3/8/8/8 w". Any further FEN fields are ignored.

Example:
  chess-puzzles solve "p6p/8/8/8/8/8/8/R7 w"
  chess-puzzles solve -m safe-capture --max-depth 6 "8/8/1p6/p7/8/8/8/R7 w"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bounds.apply(cmd, a.cfg); err != nil {
				return err
			}
			strategy, err := strategyFor(module)
			if err != nil {
				return err
			}
			pos, mover, err := engine.DecodeFEN(args[0])
			if err != nil {
				return err
			}

			s := processing.NewSolver(a.cfg.Solver, strategy)
			if hint {
				move, ok := s.Hint(pos, mover)
				if !ok {
					return errNoHint
				}
				_, err := fmt.Fprintln(a.cfg.Output.Writer, engine.EncodeMove(move))
				return err
			}

			outcome := s.Solve(pos, mover)
			if a.cfg.Verbosity > 1 {
				fmt.Fprintf(a.cfg.LogFile, "%s: %d positions explored\n", strategy.Module(), outcome.Explored)
			}

			w := output.NewReportWriter(a.cfg, nil)
			if err := w.WriteSolve(output.SolveReport{
				Start:   pos,
				Mover:   mover,
				Module:  strategy.Module(),
				Outcome: outcome,
			}); err != nil {
				return err
			}
			return w.Close()
		},
	}

	registerModuleFlag(cmd, &module)
	cmd.Flags().BoolVar(&hint, "hint", false, "print only the first move of the solution")
	bounds.register(cmd)
	return cmd
}
