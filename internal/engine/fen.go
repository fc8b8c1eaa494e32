// Package engine provides chess move validation, attacked-square computation
// and the position and move notation codec.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// placeholderFields stands in for castling, en passant and the clocks,
// which positions do not track.
const placeholderFields = "- - 0 1"

// DecodeFEN parses a board field (rank 8 first, '/'-separated, digits for
// runs of empty squares, uppercase letters for White) followed by a 'w' or
// 'b' side-to-move token. Any further fields are ignored.
func DecodeFEN(text string) (chess.Position, chess.Colour, error) {
	parts := strings.Fields(text)
	if len(parts) < 1 {
		return chess.Position{}, chess.White, notationError(text, -1, "board field", "empty text")
	}

	boardOffset := strings.Index(text, parts[0])
	pos, err := parsePiecePositions(text, parts[0], boardOffset)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	colour, err := parseSideToMove(text, parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	return pos, colour, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(text, field string, offset int) (chess.Position, error) {
	var pos chess.Position

	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return pos, notationError(text, offset, "8 ranks", fmt.Sprintf("%d", len(ranks)))
	}

	i := offset
	for r, rankText := range ranks {
		rank := chess.BoardSize - 1 - r
		file := 0
		for _, c := range []byte(rankText) {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(c)
				if kind == chess.NoPiece {
					return pos, notationError(text, i, "piece letter", fmt.Sprintf("%q", c))
				}
				if file >= chess.BoardSize {
					return pos, notationError(text, i, "at most 8 files", "extra piece")
				}
				colour := chess.White
				if unicode.IsLower(rune(c)) {
					colour = chess.Black
				}
				pos = pos.WithPiece(chess.MustSquare(file, rank), chess.Piece{Kind: kind, Colour: colour})
				file++
			}
			if file > chess.BoardSize {
				return pos, notationError(text, i, "at most 8 files", fmt.Sprintf("%d", file))
			}
			i++
		}
		if file != chess.BoardSize {
			return pos, notationError(text, i, fmt.Sprintf("8 files in rank %d", rank+1), fmt.Sprintf("%d", file))
		}
		i++ // separator
	}

	if pos.IsEmpty() {
		return pos, notationError(text, offset, "at least one piece", "empty board")
	}
	return pos, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(text string, parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, notationError(text, -1, "side to move", "end of text")
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, notationError(text, strings.Index(text, " "+parts[1])+1, "'w' or 'b'", fmt.Sprintf("%q", parts[1]))
	}
}

func notationError(text string, offset int, expected, got string) error {
	return &errors.NotationError{
		Err:      errors.ErrMalformedNotation,
		Input:    text,
		Offset:   offset,
		Expected: expected,
		Got:      got,
	}
}

// EncodeFEN converts a position and side to move to canonical text. The
// output is deterministic for a given position, so it can serve as a key.
func EncodeFEN(pos chess.Position, colour chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, colour)
	sb.WriteByte(' ')
	sb.WriteString(placeholderFields)

	return sb.String()
}

// EncodeBoard writes only the piece placement field.
func EncodeBoard(pos chess.Position) string {
	var sb strings.Builder
	writePiecePositions(&sb, pos)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := pos.PieceAt(chess.MustSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
