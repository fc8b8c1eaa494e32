package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	puzzleerrors "github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// mustDecode decodes a FEN string or aborts the test.
func mustDecode(t *testing.T, fen string) (chess.Position, chess.Colour) {
	t.Helper()
	pos, colour, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) error: %v", fen, err)
	}
	return pos, colour
}

// sq parses an algebraic square name or panics.
func sq(name string) chess.Square {
	s, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

func TestDecodeFEN(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantColour chess.Colour
		checkFn    func(chess.Position) bool
	}{
		{
			name:       "capture puzzle",
			fen:        "8/8/8/3p4/4P3/8/8/8 w",
			wantColour: chess.White,
			checkFn: func(p chess.Position) bool {
				wp, _ := p.PieceAt(sq("e4"))
				bp, _ := p.PieceAt(sq("d5"))
				return wp == chess.W(chess.Pawn) && bp == chess.B(chess.Pawn) &&
					p.Count(chess.White) == 1 && p.Count(chess.Black) == 1
			},
		},
		{
			name:       "standard start with trailing fields",
			fen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			wantColour: chess.White,
			checkFn: func(p chess.Position) bool {
				wk, _ := p.PieceAt(sq("e1"))
				bq, _ := p.PieceAt(sq("d8"))
				return wk == chess.W(chess.King) && bq == chess.B(chess.Queen) &&
					p.Count(chess.White) == 16 && p.Count(chess.Black) == 16
			},
		},
		{
			name:       "black to move",
			fen:        "4k3/8/8/8/8/8/8/4K2R b",
			wantColour: chess.Black,
			checkFn: func(p chess.Position) bool {
				r, _ := p.PieceAt(sq("h1"))
				return r == chess.W(chess.Rook)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, colour := mustDecode(t, tt.fen)
			if colour != tt.wantColour {
				t.Errorf("colour = %v; want %v", colour, tt.wantColour)
			}
			if !tt.checkFn(pos) {
				t.Errorf("DecodeFEN(%q) produced unexpected position %q", tt.fen, EncodeFEN(pos, colour))
			}
		})
	}
}

func TestDecodeFEN_Malformed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"unknown piece letter", "8/8/8/3x4/4P3/8/8/8 w"},
		{"too few ranks", "8/8/8/4P3/8/8/8 w"},
		{"too many files", "8/8/8/3p5/4P3/8/8/8 w"},
		{"short rank", "8/8/8/3p3/4P3/8/8/8 w"},
		{"missing side", "8/8/8/3p4/4P3/8/8/8"},
		{"bad side", "8/8/8/3p4/4P3/8/8/8 x"},
		{"empty board", "8/8/8/8/8/8/8/8 w"},
		{"zero digit", "8/8/8/08/4P3/8/8/8 w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeFEN(tt.fen)
			if !errors.Is(err, puzzleerrors.ErrMalformedNotation) {
				t.Fatalf("DecodeFEN(%q) error = %v; want ErrMalformedNotation", tt.fen, err)
			}
			var notationErr *puzzleerrors.NotationError
			if !errors.As(err, &notationErr) {
				t.Errorf("DecodeFEN(%q) error is %T; want *NotationError", tt.fen, err)
			}
		})
	}
}

func TestDecodeFEN_UnknownLetterOffset(t *testing.T) {
	_, _, err := DecodeFEN("8/8/8/3x4/4P3/8/8/8 w")
	var notationErr *puzzleerrors.NotationError
	if !errors.As(err, &notationErr) {
		t.Fatalf("error = %v; want *NotationError", err)
	}
	if notationErr.Offset != 7 {
		t.Errorf("Offset = %d; want 7", notationErr.Offset)
	}
}

func TestEncodeFEN(t *testing.T) {
	pos, colour := mustDecode(t, "8/8/8/3p4/4P3/8/8/8 w")
	if got, want := EncodeFEN(pos, colour), "8/8/8/3p4/4P3/8/8/8 w - - 0 1"; got != want {
		t.Errorf("EncodeFEN() = %q; want %q", got, want)
	}
	if got, want := EncodeBoard(pos), "8/8/8/3p4/4P3/8/8/8"; got != want {
		t.Errorf("EncodeBoard() = %q; want %q", got, want)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"8/8/8/3p4/4P3/8/8/8 w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"7k/8/8/8/8/8/8/K7 b",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, colour := mustDecode(t, fen)
			encoded := EncodeFEN(pos, colour)
			gotPos, gotColour := mustDecode(t, encoded)
			if gotPos != pos || gotColour != colour {
				t.Errorf("round trip mismatch (-want +got):\n%s", cmp.Diff(pos.Pieces(), gotPos.Pieces()))
			}
			if again := EncodeFEN(gotPos, gotColour); again != encoded {
				t.Errorf("EncodeFEN not canonical: %q then %q", encoded, again)
			}
		})
	}
}

func TestFENRoundTrip_ReachablePositions(t *testing.T) {
	start, colour := mustDecode(t, "r3k3/8/8/3n4/8/2B5/8/R3K2R w")
	for _, move := range LegalMoves(start, colour) {
		next, ok := start.ApplyMove(move.From, move.To)
		if !ok {
			t.Fatalf("ApplyMove(%v) failed", move)
		}
		got, gotColour := mustDecode(t, EncodeFEN(next, colour))
		if got != next || gotColour != colour {
			t.Errorf("round trip after %v changed the position", move)
		}
	}
}
