package rules

import (
	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
)

// Strategy narrows chess legality to a module's rules and decides when the
// puzzle is solved. Implementations hold no mutable state and are safe for
// concurrent use.
type Strategy interface {
	// Module identifies the variant.
	Module() Module

	// IsMoveValid reports whether move is chess-legal and allowed by the module.
	IsMoveValid(pos chess.Position, move chess.Move) bool

	// IsGoal reports whether mover has reached the module's goal.
	IsGoal(pos chess.Position, mover chess.Colour) bool

	// LegalMoves returns mover's module-legal moves, a subset of
	// engine.LegalMoves in the same order.
	LegalMoves(pos chess.Position, mover chess.Colour) []chess.Move
}

// CaptureOnly allows only moves that capture an opposing piece. The goal is
// an empty opposing side.
type CaptureOnly struct{}

// Module implements Strategy.
func (CaptureOnly) Module() Module { return ModuleCapture }

// IsMoveValid implements Strategy.
func (CaptureOnly) IsMoveValid(pos chess.Position, move chess.Move) bool {
	mover, ok := pos.PieceAt(move.From)
	if !ok || !isCapture(pos, move, mover.Colour) {
		return false
	}
	return engine.IsLegalMove(pos, move.From, move.To)
}

// IsGoal implements Strategy.
func (CaptureOnly) IsGoal(pos chess.Position, mover chess.Colour) bool {
	return !engine.HasRemainingPieces(pos, mover.Opposite())
}

// LegalMoves implements Strategy.
func (CaptureOnly) LegalMoves(pos chess.Position, mover chess.Colour) []chess.Move {
	return filterMoves(pos, mover, func(move chess.Move) bool {
		return isCapture(pos, move, mover)
	})
}

// GoalKind selects what SafeSquares must eliminate.
type GoalKind int

const (
	// EliminateAll: the opposing side has no pieces left.
	EliminateAll GoalKind = iota
	// EliminateKing: the opposing king is gone.
	EliminateKing
)

// SafeSquares allows only moves whose destination is not attacked by the
// opponent's remaining pieces once the move is made.
type SafeSquares struct {
	Goal GoalKind
}

// Module implements Strategy.
func (s SafeSquares) Module() Module {
	if s.Goal == EliminateKing {
		return ModuleKingHunt
	}
	return ModuleSafeCapture
}

// IsMoveValid implements Strategy.
func (SafeSquares) IsMoveValid(pos chess.Position, move chess.Move) bool {
	mover, ok := pos.PieceAt(move.From)
	if !ok || !engine.IsLegalMove(pos, move.From, move.To) {
		return false
	}
	return landsSafely(pos, move, mover.Colour)
}

// IsGoal implements Strategy.
func (s SafeSquares) IsGoal(pos chess.Position, mover chess.Colour) bool {
	opponent := mover.Opposite()
	if s.Goal == EliminateKing {
		_, hasKing := pos.KingSquare(opponent)
		return !hasKing
	}
	return !engine.HasRemainingPieces(pos, opponent)
}

// LegalMoves implements Strategy.
func (SafeSquares) LegalMoves(pos chess.Position, mover chess.Colour) []chess.Move {
	return filterMoves(pos, mover, func(move chess.Move) bool {
		return landsSafely(pos, move, mover)
	})
}

// IsSquareSafe reports whether sq is outside the squares attacked by the
// opponent of mover in pos. Callers checking a prospective move should pass
// the position after the move.
func IsSquareSafe(pos chess.Position, sq chess.Square, mover chess.Colour) bool {
	return !engine.AttackedSquares(pos, mover.Opposite()).Has(sq)
}

// landsSafely simulates move and checks its destination against the
// opponent's remaining attackers.
func landsSafely(pos chess.Position, move chess.Move, mover chess.Colour) bool {
	next, ok := pos.ApplyMove(move.From, move.To)
	if !ok {
		return false
	}
	return IsSquareSafe(next, move.To, mover)
}

// isCapture reports whether move lands on a piece of mover's opponent.
func isCapture(pos chess.Position, move chess.Move, mover chess.Colour) bool {
	target, occupied := pos.PieceAt(move.To)
	return occupied && target.Colour != mover
}

// filterMoves keeps the chess-legal moves of mover accepted by keep.
func filterMoves(pos chess.Position, mover chess.Colour, keep func(chess.Move) bool) []chess.Move {
	var moves []chess.Move
	for _, move := range engine.LegalMoves(pos, mover) {
		if keep(move) {
			moves = append(moves, move)
		}
	}
	return moves
}
