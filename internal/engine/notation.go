package engine

import (
	"fmt"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
)

// MoveTokenLen is the exact length of a move token such as "e2e4".
const MoveTokenLen = 4

// DecodeMove parses a 4-character move token: file letter, rank digit,
// file letter, rank digit.
func DecodeMove(text string) (chess.Move, error) {
	if len(text) != MoveTokenLen {
		return chess.Move{}, notationError(text, -1, "4 characters", fmt.Sprintf("%d", len(text)))
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, notationError(text, 0, "start square", fmt.Sprintf("%q", text[0:2]))
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, notationError(text, 2, "end square", fmt.Sprintf("%q", text[2:4]))
	}

	return chess.Move{From: from, To: to}, nil
}

// EncodeMove returns the 4-character token for a move.
func EncodeMove(move chess.Move) string {
	return move.String()
}

// EncodeMoves returns the tokens for a sequence of moves.
func EncodeMoves(moves []chess.Move) []string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = EncodeMove(m)
	}
	return tokens
}
