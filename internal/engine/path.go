package engine

import "github.com/lgbarn/chess-puzzles-go/internal/chess"

// canPieceMove checks the piece-kind geometry of a move, including blocking.
// It does not look at the destination's occupant except where the geometry
// depends on it (pawn pushes and pawn captures).
func canPieceMove(pos chess.Position, piece chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(pos, piece.Colour, from, to)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(pos, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(pos, from, to)

	case chess.Queen:
		if colDiff == rankDiff || colDiff == 0 || rankDiff == 0 {
			return isPathClear(pos, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// canPawnMove handles single and double pushes onto empty squares and
// diagonal captures onto enemy pieces.
func canPawnMove(pos chess.Position, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.PawnDirection()
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	target, occupied := pos.PieceAt(to)

	switch {
	case df == 0 && dr == dir:
		return !occupied

	case df == 0 && dr == 2*dir:
		if from.Rank() != colour.HomeRank() || occupied {
			return false
		}
		middle, ok := from.Offset(0, dir)
		if !ok {
			return false
		}
		_, blocked := pos.PieceAt(middle)
		return !blocked

	case abs(df) == 1 && dr == dir:
		return occupied && target.Colour != colour
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(pos chess.Position, from, to chess.Square) bool {
	colDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	sq, ok := from.Offset(colDir, rankDir)
	for ok && sq != to {
		if _, occupied := pos.PieceAt(sq); occupied {
			return false
		}
		sq, ok = sq.Offset(colDir, rankDir)
	}

	return ok
}
