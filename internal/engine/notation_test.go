package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	puzzleerrors "github.com/lgbarn/chess-puzzles-go/internal/errors"
)

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		text    string
		want    chess.Move
		wantErr bool
	}{
		{"e2e4", chess.Move{From: sq("e2"), To: sq("e4")}, false},
		{"a1h8", chess.Move{From: sq("a1"), To: sq("h8")}, false},
		{"e2e", chess.Move{}, true},
		{"e2e4q", chess.Move{}, true},
		{"", chess.Move{}, true},
		{"i2e4", chess.Move{}, true},
		{"e2e9", chess.Move{}, true},
		{"e0e4", chess.Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeMove(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeMove(%q) error = %v; wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, puzzleerrors.ErrMalformedNotation) {
					t.Errorf("DecodeMove(%q) error = %v; want ErrMalformedNotation", tt.text, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("DecodeMove(%q) = %v; want %v", tt.text, got, tt.want)
			}
			if EncodeMove(got) != tt.text {
				t.Errorf("EncodeMove(%v) = %q; want %q", got, EncodeMove(got), tt.text)
			}
		})
	}
}

func TestDecodeMove_WrongLength(t *testing.T) {
	_, err := DecodeMove("e2e")
	var notationErr *puzzleerrors.NotationError
	if !errors.As(err, &notationErr) {
		t.Fatalf("DecodeMove(\"e2e\") error = %v; want *NotationError", err)
	}
	if notationErr.Got != "3" {
		t.Errorf("Got = %q; want %q", notationErr.Got, "3")
	}
}

func TestEncodeMoves(t *testing.T) {
	moves := []chess.Move{{From: sq("e4"), To: sq("d5")}, {From: sq("d5"), To: sq("c6")}}
	got := EncodeMoves(moves)
	if len(got) != 2 || got[0] != "e4d5" || got[1] != "d5c6" {
		t.Errorf("EncodeMoves() = %v; want [e4d5 d5c6]", got)
	}
}
