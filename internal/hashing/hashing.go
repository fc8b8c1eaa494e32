// Package hashing provides position hashing, solver state keys and
// visited-state tracking.
package hashing

import (
	"github.com/lgbarn/chess-puzzles-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// zobristPieces is indexed by colour, piece kind and square index.
	zobristPieces [2][chess.King + 1][chess.NumSquares]uint64
	zobristBlack  uint64
)

func init() {
	state := uint64(zobristSeed)
	for colour := range zobristPieces {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPieces[colour][kind][sq] = splitMix64(&state)
			}
		}
	}
	zobristBlack = splitMix64(&state)
}

// splitMix64 advances state and returns the next pseudo-random value.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Zobrist returns the 64-bit Zobrist hash of a position and side to move.
func Zobrist(pos chess.Position, colour chess.Colour) uint64 {
	var hash uint64
	for sq, piece := range pos.Pieces() {
		hash ^= zobristPieces[piece.Colour][piece.Kind][sq.Index()]
	}
	if colour == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}
