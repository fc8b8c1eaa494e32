package hashing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// KeyMode selects how a search state is reduced to a Key.
type KeyMode int

const (
	// KeyNotation uses the canonical encoded position text.
	KeyNotation KeyMode = iota
	// KeyZobrist uses the 64-bit Zobrist hash; smaller, with a negligible
	// collision risk.
	KeyZobrist
)

// String returns the mode name used in configuration.
func (m KeyMode) String() string {
	if m == KeyZobrist {
		return "zobrist"
	}
	return "notation"
}

// ParseKeyMode accepts "notation" or "zobrist".
func ParseKeyMode(text string) (KeyMode, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "notation":
		return KeyNotation, nil
	case "zobrist":
		return KeyZobrist, nil
	}
	return KeyNotation, errors.Wrapf(errors.ErrInvalidConfig, "key mode %q", text)
}

// Key identifies a search state for deduplication. Keys are comparable.
type Key struct {
	Notation   string
	Hash       uint64
	Tracked    chess.Square
	HasTracked bool
}

// String renders the key for diagnostics.
func (k Key) String() string {
	tracked := "-"
	if k.HasTracked {
		tracked = k.Tracked.String()
	}
	if k.Notation != "" {
		return k.Notation + " @" + tracked
	}
	return fmt.Sprintf("%016x @%s", k.Hash, tracked)
}

// CanonicalKey builds the deduplication key for pos with mover to play.
// The tracked piece is always mover's lowest-index piece, so the same
// position always yields the same key.
func CanonicalKey(pos chess.Position, mover chess.Colour, mode KeyMode) Key {
	var key Key
	if mode == KeyZobrist {
		key.Hash = Zobrist(pos, mover)
	} else {
		key.Notation = engine.EncodeFEN(pos, mover)
	}
	if squares := pos.Occupied(mover); len(squares) > 0 {
		key.Tracked = squares[0]
		key.HasTracked = true
	}
	return key
}
