package chess

import "testing"

func TestPosition_WithPiece(t *testing.T) {
	var p Position
	e4 := MustSquare(4, 3)

	q := p.WithPiece(e4, W(Queen))
	if _, ok := p.PieceAt(e4); ok {
		t.Error("WithPiece modified the receiver")
	}
	if got, ok := q.PieceAt(e4); !ok || got != W(Queen) {
		t.Errorf("PieceAt(e4) = %v, %v; want White Queen, true", got, ok)
	}

	cleared := q.WithPiece(e4, Piece{})
	if _, ok := cleared.PieceAt(e4); ok {
		t.Error("WithPiece(zero) did not clear the square")
	}
	if !cleared.IsEmpty() {
		t.Error("cleared position should be empty")
	}
}

func TestPosition_WithPieceNormalisesEmpty(t *testing.T) {
	e4 := MustSquare(4, 3)
	occupied := Position{}.WithPiece(e4, W(Knight))

	tests := []struct {
		name  string
		empty Piece
	}{
		{"zero piece", Piece{}},
		{"black with no kind", Piece{Colour: Black}},
		{"white with no kind", Piece{Kind: NoPiece, Colour: White}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleared := occupied.WithPiece(e4, tt.empty)
			if cleared != (Position{}) {
				t.Error("clearing e4 should give a position equal to the empty board")
			}
			if placed := (Position{}).WithPiece(e4, tt.empty); placed != (Position{}) {
				t.Error("placing an empty piece should leave the board unchanged")
			}
			if got, _ := cleared.PieceAt(e4); got != (Piece{}) {
				t.Errorf("PieceAt(e4) = %#v; want the zero Piece", got)
			}
		})
	}
}

func TestPosition_ApplyMove(t *testing.T) {
	d5, e4, a1 := MustSquare(3, 4), MustSquare(4, 3), MustSquare(0, 0)
	p := Position{}.WithPiece(e4, W(Pawn)).WithPiece(d5, B(Pawn))

	t.Run("capture overwrites destination", func(t *testing.T) {
		next, ok := p.ApplyMove(e4, d5)
		if !ok {
			t.Fatal("ApplyMove(e4, d5) = false; want true")
		}
		if got, _ := next.PieceAt(d5); got != W(Pawn) {
			t.Errorf("PieceAt(d5) = %v; want White Pawn", got)
		}
		if _, occupied := next.PieceAt(e4); occupied {
			t.Error("start square still occupied")
		}
		if next.Count(Black) != 0 {
			t.Errorf("Count(Black) = %d; want 0", next.Count(Black))
		}
		if got, _ := p.PieceAt(d5); got != B(Pawn) {
			t.Error("ApplyMove modified the receiver")
		}
	})

	t.Run("empty start", func(t *testing.T) {
		if _, ok := p.ApplyMove(a1, e4); ok {
			t.Error("ApplyMove from empty square = true; want false")
		}
	})
}

func TestPosition_ApplyMoveTransfersEveryPiece(t *testing.T) {
	p := Position{}.
		WithPiece(MustSquare(0, 0), W(Rook)).
		WithPiece(MustSquare(6, 0), W(Knight)).
		WithPiece(MustSquare(4, 7), B(King)).
		WithPiece(MustSquare(2, 5), B(Bishop))

	for from, piece := range p.Pieces() {
		for i := 0; i < NumSquares; i++ {
			to := SquareAt(i)
			if to == from {
				continue
			}
			next, ok := p.ApplyMove(from, to)
			if !ok {
				t.Fatalf("ApplyMove(%v, %v) = false", from, to)
			}
			if got, _ := next.PieceAt(to); got != piece {
				t.Errorf("ApplyMove(%v, %v): PieceAt(end) = %v; want %v", from, to, got, piece)
			}
			if _, occupied := next.PieceAt(from); occupied {
				t.Errorf("ApplyMove(%v, %v): start still occupied", from, to)
			}
		}
	}
}

func TestPosition_Queries(t *testing.T) {
	p := Position{}.
		WithPiece(MustSquare(4, 0), W(King)).
		WithPiece(MustSquare(3, 0), W(Queen)).
		WithPiece(MustSquare(4, 7), B(King))

	if got := p.Count(White); got != 2 {
		t.Errorf("Count(White) = %d; want 2", got)
	}
	if got := p.Occupied(White); len(got) != 2 || got[0] != MustSquare(3, 0) {
		t.Errorf("Occupied(White) = %v; want [d1 e1]", got)
	}
	if sq, ok := p.KingSquare(Black); !ok || sq != MustSquare(4, 7) {
		t.Errorf("KingSquare(Black) = %v, %v; want e8, true", sq, ok)
	}
	noKing := p.WithPiece(MustSquare(4, 7), Piece{})
	if _, ok := noKing.KingSquare(Black); ok {
		t.Error("KingSquare(Black) found a king in a position without one")
	}
	if p == noKing {
		t.Error("positions with different pieces compare equal")
	}
}
