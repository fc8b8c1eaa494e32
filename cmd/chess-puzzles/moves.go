package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/output"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
)

func newMovesCmd(a *app) *cobra.Command {
	var module, square string

	cmd := &cobra.Command{
		Use:   "moves <fen>",
		Short: "Show the moves and attacked squares of a position",
		Long: `Moves lists the chess-legal moves of the side to move, the subset the
module allows, and the squares the opponent attacks. With --square only
the moves of the piece on that square are listed.

Example:
  chess-puzzles moves -m safe-capture --square a1 "8/2b5/8/n7/8/8/8/R7 w"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := strategyFor(module)
			if err != nil {
				return err
			}
			pos, mover, err := engine.DecodeFEN(args[0])
			if err != nil {
				return err
			}

			report := boardReport(pos, mover, strategy)
			if square != "" {
				sq, err := chess.ParseSquare(square)
				if err != nil {
					return err
				}
				report.Square = &sq
				report.Chess = movesFrom(sq, report.Chess)
				report.Allowed = movesFrom(sq, report.Allowed)
			}

			w := output.NewReportWriter(a.cfg, nil)
			if err := w.WriteBoard(report); err != nil {
				return err
			}
			return w.Close()
		},
	}

	registerModuleFlag(cmd, &module)
	cmd.Flags().StringVar(&square, "square", "", "only list moves of the piece on this square, e.g. e4")
	return cmd
}

func boardReport(pos chess.Position, mover chess.Colour, strategy rules.Strategy) output.BoardReport {
	return output.BoardReport{
		Position:  pos,
		Mover:     mover,
		Module:    strategy.Module(),
		Chess:     engine.LegalMoves(pos, mover),
		Allowed:   strategy.LegalMoves(pos, mover),
		Attacked:  engine.AttackedSquares(pos, mover.Opposite()),
		InCheck:   engine.IsKingInCheck(pos, mover),
		Goal:      strategy.IsGoal(pos, mover),
		HasPieces: engine.HasRemainingPieces(pos, mover),
	}
}

func movesFrom(from chess.Square, moves []chess.Move) []chess.Move {
	var kept []chess.Move
	for _, m := range moves {
		if m.From == from {
			kept = append(kept, m)
		}
	}
	return kept
}
