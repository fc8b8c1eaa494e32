package engine

import "github.com/lgbarn/chess-puzzles-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingLines = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// AttackedSquares returns every square a piece of byColour could capture on
// if an enemy piece stood there. Squares held by byColour's own pieces are
// included: the result is "squares defended", not "legal captures".
func AttackedSquares(pos chess.Position, byColour chess.Colour) chess.SquareSet {
	var attacked chess.SquareSet
	for _, from := range pos.Occupied(byColour) {
		piece, _ := pos.PieceAt(from)
		attacked = attacked.Union(pieceAttacks(pos, from, piece))
	}
	return attacked
}

// IsKingInCheck returns true if the given colour's king is attacked.
// A position without a king of that colour is never in check.
func IsKingInCheck(pos chess.Position, colour chess.Colour) bool {
	king, ok := pos.KingSquare(colour)
	if !ok {
		return false
	}
	return AttackedSquares(pos, colour.Opposite()).Has(king)
}

// pieceAttacks returns the potential capture targets of piece standing on from.
func pieceAttacks(pos chess.Position, from chess.Square, piece chess.Piece) chess.SquareSet {
	var attacked chess.SquareSet

	switch piece.Kind {
	case chess.Pawn:
		// Pawns attack diagonally forward only, never straight ahead.
		dir := piece.Colour.PawnDirection()
		for _, df := range []int{-1, 1} {
			if to, ok := from.Offset(df, dir); ok {
				attacked = attacked.Add(to)
			}
		}

	case chess.Knight:
		attacked = offsetTargets(from, knightOffsets)

	case chess.King:
		attacked = offsetTargets(from, kingOffsets)

	case chess.Bishop:
		attacked = slidingTargets(pos, from, diagonalDirs)

	case chess.Rook:
		attacked = slidingTargets(pos, from, straightDirs)

	case chess.Queen:
		attacked = slidingTargets(pos, from, allSlidingLines)
	}

	return attacked
}

// offsetTargets collects the on-board squares at fixed offsets from from.
func offsetTargets(from chess.Square, offsets [][2]int) chess.SquareSet {
	var targets chess.SquareSet
	for _, offset := range offsets {
		if to, ok := from.Offset(offset[0], offset[1]); ok {
			targets = targets.Add(to)
		}
	}
	return targets
}

// slidingTargets walks each direction until the board edge or the first
// occupied square, which is included.
func slidingTargets(pos chess.Position, from chess.Square, dirs [][2]int) chess.SquareSet {
	var targets chess.SquareSet
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			targets = targets.Add(to)
			if _, occupied := pos.PieceAt(to); occupied {
				break // Blocked
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}
