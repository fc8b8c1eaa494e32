package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
)

// MustDecode decodes a position or calls t.Fatal.
func MustDecode(t testing.TB, fen string) (chess.Position, chess.Colour) {
	t.Helper()
	pos, colour, err := engine.DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) error: %v", fen, err)
	}
	return pos, colour
}

// MustMove decodes a 4-character move token or calls t.Fatal.
func MustMove(t testing.TB, token string) chess.Move {
	t.Helper()
	move, err := engine.DecodeMove(token)
	if err != nil {
		t.Fatalf("DecodeMove(%q) error: %v", token, err)
	}
	return move
}

// Sq parses an algebraic square name and panics if it is invalid.
func Sq(name string) chess.Square {
	s, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

// AssertPositionEqual compares two positions piece by piece.
func AssertPositionEqual(t *testing.T, got, want chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	diff := cmp.Diff(squareMap(want), squareMap(got))
	fail(t, "position mismatch (-want +got):\n"+diff, msgAndArgs...)
}

// AssertMoves compares moves as their token strings, which keeps diffs readable.
func AssertMoves(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotTokens := engine.EncodeMoves(got)
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, gotTokens); diff != "" {
		fail(t, "moves mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// squareMap renders a position as square name to piece letter.
func squareMap(pos chess.Position) map[string]string {
	m := make(map[string]string)
	for sq, piece := range pos.Pieces() {
		m[sq.String()] = string(piece.Letter())
	}
	return m
}
