package chess

// Position is an immutable board: a mapping from squares to pieces where
// unoccupied squares hold the zero Piece. Every mutator returns a new
// Position; the receiver is never modified. Positions compare with ==.
type Position struct {
	squares [NumSquares]Piece
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (p Position) PieceAt(sq Square) (Piece, bool) {
	piece := p.squares[sq.Index()]
	return piece, !piece.IsEmpty()
}

// WithPiece returns a copy of p with sq holding piece. Any piece of kind
// NoPiece clears the square.
func (p Position) WithPiece(sq Square, piece Piece) Position {
	if piece.IsEmpty() {
		piece = Piece{}
	}
	p.squares[sq.Index()] = piece
	return p
}

// ApplyMove moves the occupant of from onto to, overwriting anything there.
// It performs no legality checking. The second result is false when from
// is empty.
func (p Position) ApplyMove(from, to Square) (Position, bool) {
	piece := p.squares[from.Index()]
	if piece.IsEmpty() {
		return p, false
	}
	p.squares[from.Index()] = Piece{}
	p.squares[to.Index()] = piece
	return p, true
}

// IsEmpty reports whether no square is occupied.
func (p Position) IsEmpty() bool {
	for _, piece := range p.squares {
		if !piece.IsEmpty() {
			return false
		}
	}
	return true
}

// Occupied returns the squares holding pieces of the given colour in
// ascending index order.
func (p Position) Occupied(colour Colour) []Square {
	var squares []Square
	for i, piece := range p.squares {
		if !piece.IsEmpty() && piece.Colour == colour {
			squares = append(squares, SquareAt(i))
		}
	}
	return squares
}

// Count returns the number of pieces of the given colour.
func (p Position) Count(colour Colour) int {
	n := 0
	for _, piece := range p.squares {
		if !piece.IsEmpty() && piece.Colour == colour {
			n++
		}
	}
	return n
}

// KingSquare finds the king of the given colour.
func (p Position) KingSquare(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for i, piece := range p.squares {
		if piece == king {
			return SquareAt(i), true
		}
	}
	return Square{}, false
}

// Pieces returns a copy of the occupied squares and their pieces.
func (p Position) Pieces() map[Square]Piece {
	pieces := make(map[Square]Piece)
	for i, piece := range p.squares {
		if !piece.IsEmpty() {
			pieces[SquareAt(i)] = piece
		}
	}
	return pieces
}
