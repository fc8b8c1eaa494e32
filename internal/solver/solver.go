// Package solver finds the shortest module-legal move sequence that takes a
// puzzle from its start position to its goal.
package solver

import (
	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
)

// Status classifies how a search ended.
type Status int

const (
	// StatusSolved: a goal position was reached.
	StatusSolved Status = iota
	// StatusUnsolvable: every reachable state was explored without reaching the goal.
	StatusUnsolvable
	// StatusLimitExceeded: a node or depth bound stopped the search first.
	StatusLimitExceeded
)

// Outcome messages.
const (
	MessageSolved        = "solved"
	MessageNoSolution    = "no solution"
	MessageLimitExceeded = "search limit exceeded"
)

// String returns the status name used in reports.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusLimitExceeded:
		return "limit-exceeded"
	}
	return "unknown"
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(text string) (Status, bool) {
	for _, s := range []Status{StatusSolved, StatusUnsolvable, StatusLimitExceeded} {
		if s.String() == text {
			return s, true
		}
	}
	return StatusUnsolvable, false
}

// Message returns the outcome message for the status.
func (s Status) Message() string {
	switch s {
	case StatusSolved:
		return MessageSolved
	case StatusLimitExceeded:
		return MessageLimitExceeded
	}
	return MessageNoSolution
}

// Outcome is the result of one search.
type Outcome struct {
	Status Status
	Solved bool
	// Path is a minimal sequence of moves to the goal; empty unless solved.
	Path []chess.Move
	// Final is the goal position when solved, otherwise the start position.
	Final    chess.Position
	Message  string
	Explored int // nodes dequeued
}

// Solver runs breadth-first searches under one rule strategy. A Solver
// holds only configuration and may be shared across goroutines; each Solve
// call owns its queue and visited set.
type Solver struct {
	strategy rules.Strategy
	maxNodes int
	maxDepth int
	keyMode  hashing.KeyMode
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxNodes bounds the number of distinct states the search may record.
// 0 means unbounded.
func WithMaxNodes(n int) Option {
	return func(s *Solver) {
		if n >= 0 {
			s.maxNodes = n
		}
	}
}

// WithMaxDepth bounds the length of paths the search will extend.
// 0 means unbounded.
func WithMaxDepth(d int) Option {
	return func(s *Solver) {
		if d >= 0 {
			s.maxDepth = d
		}
	}
}

// WithKeyMode selects how visited states are keyed.
func WithKeyMode(mode hashing.KeyMode) Option {
	return func(s *Solver) {
		s.keyMode = mode
	}
}

// New creates a solver for the given strategy.
func New(strategy rules.Strategy, opts ...Option) *Solver {
	s := &Solver{strategy: strategy, keyMode: hashing.KeyNotation}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strategy returns the rule strategy the solver searches under.
func (s *Solver) Strategy() rules.Strategy {
	return s.strategy
}

// node is a search state: a position and the moves that reached it.
type node struct {
	pos  chess.Position
	path []chess.Move
}

// Solve searches from start with mover to play on every ply. The goal is
// tested when a node is dequeued, so the first goal found has a minimal path.
// States dropped by a node or depth bound turn an exhausted search into
// StatusLimitExceeded instead of StatusUnsolvable.
func (s *Solver) Solve(start chess.Position, mover chess.Colour) Outcome {
	visited := hashing.NewVisitedSet(s.maxNodes)
	visited.CheckAndAdd(hashing.CanonicalKey(start, mover, s.keyMode))

	queue := []node{{pos: start}}
	explored := 0
	pruned := false

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		queue[head] = node{}
		explored++

		if s.strategy.IsGoal(current.pos, mover) {
			return Outcome{
				Status:   StatusSolved,
				Solved:   true,
				Path:     current.path,
				Final:    current.pos,
				Message:  StatusSolved.Message(),
				Explored: explored,
			}
		}

		moves := s.strategy.LegalMoves(current.pos, mover)
		if s.maxDepth > 0 && len(current.path) >= s.maxDepth {
			if len(moves) > 0 {
				pruned = true
			}
			continue
		}

		for _, move := range moves {
			next, ok := current.pos.ApplyMove(move.From, move.To)
			if !ok {
				continue
			}
			key := hashing.CanonicalKey(next, mover, s.keyMode)
			if visited.Contains(key) {
				continue
			}
			if visited.IsFull() {
				// Already-queued states may still hold a goal.
				pruned = true
				continue
			}
			visited.CheckAndAdd(key)

			path := make([]chess.Move, len(current.path), len(current.path)+1)
			copy(path, current.path)
			queue = append(queue, node{pos: next, path: append(path, move)})
		}
	}

	if pruned {
		return s.unsolved(start, StatusLimitExceeded, explored)
	}
	return s.unsolved(start, StatusUnsolvable, explored)
}

func (s *Solver) unsolved(start chess.Position, status Status, explored int) Outcome {
	return Outcome{
		Status:   status,
		Path:     []chess.Move{},
		Final:    start,
		Message:  status.Message(),
		Explored: explored,
	}
}

// SolveFEN decodes text and solves it with the encoded side to move.
// The only error is a decoding error.
func (s *Solver) SolveFEN(text string) (Outcome, error) {
	pos, mover, err := engine.DecodeFEN(text)
	if err != nil {
		return Outcome{}, err
	}
	return s.Solve(pos, mover), nil
}

// Hint returns the first move of an optimal solution from pos. It returns
// false when pos is already solved or no solution was found.
func (s *Solver) Hint(pos chess.Position, mover chess.Colour) (chess.Move, bool) {
	outcome := s.Solve(pos, mover)
	if !outcome.Solved || len(outcome.Path) == 0 {
		return chess.Move{}, false
	}
	return outcome.Path[0], true
}
