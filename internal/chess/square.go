package chess

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// Square is a coordinate on the 8x8 board. Squares are comparable values
// and may be used as map keys.
type Square struct {
	file int8
	rank int8
}

// NewSquare creates a square from 0-based file and rank. It fails with an
// error wrapping ErrOutOfRange when either coordinate falls outside 0..7.
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return Square{}, errors.Wrapf(errors.ErrOutOfRange, "file %d rank %d", file, rank)
	}
	return Square{file: int8(file), rank: int8(rank)}, nil
}

// MustSquare is like NewSquare but panics on invalid coordinates.
// Intended for constants and tests.
func MustSquare(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareAt returns the square with the given 0..63 index (rank*8+file).
// The caller guarantees the index is in range.
func SquareAt(index int) Square {
	return Square{file: int8(index % BoardSize), rank: int8(index / BoardSize)}
}

// ParseSquare decodes algebraic text such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrMalformedNotation)
	}
	file := int(text[0]) - FileBase
	rank := int(text[1]) - RankBase
	if !onBoard(file, rank) {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrMalformedNotation)
	}
	return Square{file: int8(file), rank: int8(rank)}, nil
}

// File returns the 0-based file (0 = a).
func (s Square) File() int { return int(s.file) }

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int { return int(s.rank) }

// Index returns rank*8+file.
func (s Square) Index() int { return int(s.rank)*BoardSize + int(s.file) }

// String returns the algebraic name of the square.
func (s Square) String() string {
	return string([]byte{byte(FileBase + s.file), byte(RankBase + s.rank)})
}

// Offset returns the square shifted by (df, dr) and whether it is still on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	file, rank := int(s.file)+df, int(s.rank)+dr
	if !onBoard(file, rank) {
		return Square{}, false
	}
	return Square{file: int8(file), rank: int8(rank)}, true
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareSet is a set of squares, one bit per square index.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq.Index())
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Union returns the squares in either set.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		squares = append(squares, SquareAt(bits.TrailingZeros64(rest)))
	}
	return squares
}

// Move is an immutable start/end square pair. A capture is implicit: whatever
// occupied To is overwritten when the move is applied.
type Move struct {
	From Square
	To   Square
}

// String returns the 4-character token, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
