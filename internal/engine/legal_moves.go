package engine

import "github.com/lgbarn/chess-puzzles-go/internal/chess"

// IsLegalMove reports whether moving the piece on from to to is chess-legal:
// from is occupied, to does not hold a piece of the same colour, the piece
// geometry allows it, and the mover's own king is not attacked afterwards.
func IsLegalMove(pos chess.Position, from, to chess.Square) bool {
	piece, ok := pos.PieceAt(from)
	if !ok {
		return false
	}
	if target, occupied := pos.PieceAt(to); occupied && target.Colour == piece.Colour {
		return false
	}
	if !canPieceMove(pos, piece, from, to) {
		return false
	}

	next, _ := pos.ApplyMove(from, to)
	return !IsKingInCheck(next, piece.Colour)
}

// LegalDestinations returns every square the piece on from may legally move to.
// An empty square yields an empty set.
func LegalDestinations(pos chess.Position, from chess.Square) chess.SquareSet {
	var destinations chess.SquareSet
	if _, ok := pos.PieceAt(from); !ok {
		return destinations
	}
	for i := 0; i < chess.NumSquares; i++ {
		to := chess.SquareAt(i)
		if IsLegalMove(pos, from, to) {
			destinations = destinations.Add(to)
		}
	}
	return destinations
}

// LegalMoves returns all chess-legal moves of colour, ordered by start
// square index and then destination index.
func LegalMoves(pos chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range pos.Occupied(colour) {
		for _, to := range LegalDestinations(pos, from).Squares() {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// HasAnyLegalMove returns true if the given colour has at least one legal move.
func HasAnyLegalMove(pos chess.Position, colour chess.Colour) bool {
	for _, from := range pos.Occupied(colour) {
		for i := 0; i < chess.NumSquares; i++ {
			if IsLegalMove(pos, from, chess.SquareAt(i)) {
				return true
			}
		}
	}
	return false
}

// HasAnyLegalCaptureMove returns true if the given colour can legally
// capture an opposing piece.
func HasAnyLegalCaptureMove(pos chess.Position, colour chess.Colour) bool {
	for _, from := range pos.Occupied(colour) {
		for _, to := range pos.Occupied(colour.Opposite()) {
			if IsLegalMove(pos, from, to) {
				return true
			}
		}
	}
	return false
}

// HasRemainingPieces returns true if any piece of the given colour is on the board.
func HasRemainingPieces(pos chess.Position, colour chess.Colour) bool {
	return pos.Count(colour) > 0
}
