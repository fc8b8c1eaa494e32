// Package output renders solver results, puzzle verifications and board
// queries as text or JSON.
package output

import (
	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/processing"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
	"github.com/lgbarn/chess-puzzles-go/internal/solver"
)

// SolveReport is the result of solving one position.
type SolveReport struct {
	Start   chess.Position
	Mover   chess.Colour
	Module  rules.Module
	Outcome solver.Outcome
}

// BoardReport describes what a position offers the side to move: the data a
// board display needs to highlight squares.
type BoardReport struct {
	Position chess.Position
	Mover    chess.Colour
	Module   rules.Module

	// Square is set when the query was for a single piece.
	Square    *chess.Square
	Chess     []chess.Move // chess-legal moves
	Allowed   []chess.Move // moves the module allows
	Attacked  chess.SquareSet
	InCheck   bool
	Goal      bool
	HasPieces bool
}

// Summary counts verifications by verdict.
type Summary struct {
	Total     int
	Failed    int
	Cached    int
	ByVerdict map[processing.Verdict]int
}

// Add records one verification.
func (s *Summary) Add(v processing.Verification) {
	if s.ByVerdict == nil {
		s.ByVerdict = make(map[processing.Verdict]int)
	}
	s.Total++
	s.ByVerdict[v.Verdict]++
	if v.Failed() {
		s.Failed++
	}
	if v.Cached {
		s.Cached++
	}
}

// ReportWriter is the interface for writing reports to output.
// Implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteSolve writes the result of a single solve.
	WriteSolve(r SolveReport) error

	// WriteVerification writes one batch verification result.
	WriteVerification(v processing.Verification) error

	// WriteBoard writes a board query.
	WriteBoard(r BoardReport) error

	// Flush writes any buffered output, including the batch summary.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}
