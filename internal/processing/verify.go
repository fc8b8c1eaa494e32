// Package processing verifies puzzles: it solves each one, checks the
// result against the puzzle's declared target and flags duplicates.
package processing

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/config"
	"github.com/lgbarn/chess-puzzles-go/internal/errors"
	"github.com/lgbarn/chess-puzzles-go/internal/hashing"
	"github.com/lgbarn/chess-puzzles-go/internal/puzzle"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
	"github.com/lgbarn/chess-puzzles-go/internal/solver"
	"github.com/lgbarn/chess-puzzles-go/internal/store"
)

// Verdict classifies a verified puzzle.
type Verdict int

const (
	VerdictOK             Verdict = iota // Solved, and in the declared number of moves
	VerdictTargetMismatch                // Solved, but the optimal length differs from the target
	VerdictUnsolvable                    // No solution exists
	VerdictLimitExceeded                 // The search bounds stopped the solver
	VerdictDuplicate                     // Same start position and module as an earlier puzzle
	VerdictInvalid                       // The puzzle could not be decoded
)

var verdictNames = []string{"ok", "target-mismatch", "unsolvable", "limit-exceeded", "duplicate", "invalid"}

// String returns the verdict name used in reports.
func (v Verdict) String() string {
	if v >= 0 && int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return "unknown"
}

// Verification is the result of checking one puzzle.
type Verification struct {
	Puzzle  puzzle.Puzzle
	Outcome solver.Outcome
	Verdict Verdict
	Cached  bool  // Outcome came from the solution cache
	Err     error // Set for VerdictInvalid and VerdictDuplicate
}

// Failed reports whether the puzzle needs an author's attention. Duplicates
// are skipped rather than failed.
func (v Verification) Failed() bool {
	return v.Verdict != VerdictOK && v.Verdict != VerdictDuplicate
}

// Cache is the subset of *store.Store the verifier uses.
type Cache interface {
	Get(ctx context.Context, fen string, module rules.Module) (store.Record, bool, error)
	Put(ctx context.Context, rec store.Record) (store.Record, error)
}

// Verifier checks puzzles. It is safe for concurrent use.
type Verifier struct {
	solverCfg  config.SolverConfig
	cache      Cache
	duplicates map[rules.Module]*hashing.ThreadSafeDuplicateDetector
	logFile    io.Writer
	verbosity  int
}

// NewVerifier creates a verifier using cfg's solver bounds and logging.
// cache may be nil.
func NewVerifier(cfg *config.Config, cache Cache) *Verifier {
	duplicates := make(map[rules.Module]*hashing.ThreadSafeDuplicateDetector)
	for _, m := range rules.Modules() {
		duplicates[m] = hashing.NewThreadSafeDuplicateDetector(0)
	}
	return &Verifier{
		solverCfg:  cfg.Solver,
		cache:      cache,
		duplicates: duplicates,
		logFile:    cfg.LogFile,
		verbosity:  cfg.Verbosity,
	}
}

// DuplicateCount returns how many duplicates have been seen across modules.
func (v *Verifier) DuplicateCount() int {
	n := 0
	for _, d := range v.duplicates {
		n += d.DuplicateCount()
	}
	return n
}

// NewSolver builds a solver for strategy with the configured bounds.
func NewSolver(cfg config.SolverConfig, strategy rules.Strategy) *solver.Solver {
	return solver.New(strategy,
		solver.WithMaxNodes(cfg.MaxNodes),
		solver.WithMaxDepth(cfg.MaxDepth),
		solver.WithKeyMode(cfg.KeyMode))
}

// Verify screens p and, unless it is invalid or a duplicate, solves it.
// Callers verifying in parallel should Screen in input order themselves
// so the first occurrence of a start position is the one kept.
func (v *Verifier) Verify(ctx context.Context, p puzzle.Puzzle) Verification {
	if result, done := v.Screen(p); done {
		return result
	}
	return v.Solve(ctx, p)
}

// Screen decodes p and claims its start position for its module. It
// returns a final verification and true when p is invalid or repeats a
// start position screened earlier; otherwise p still needs Solve.
func (v *Verifier) Screen(p puzzle.Puzzle) (Verification, bool) {
	result := Verification{Puzzle: p}

	pos, mover, err := p.Start()
	if err != nil {
		return v.invalid(result, err), true
	}
	if _, err := p.Strategy(); err != nil {
		return v.invalid(result, err), true
	}

	if d, ok := v.duplicates[p.Module]; ok && d.CheckAndAdd(pos, mover) {
		result.Verdict = VerdictDuplicate
		result.Err = &errors.PuzzleError{Err: errors.ErrDuplicatePuzzle, ID: p.ID}
		v.logf(2, "%s: duplicate start position, skipped\n", p)
		return result, true
	}
	return result, false
}

// Solve verifies p without the duplicate check, consulting and filling the
// cache when one is set.
func (v *Verifier) Solve(ctx context.Context, p puzzle.Puzzle) Verification {
	result := Verification{Puzzle: p}

	pos, mover, err := p.Start()
	if err != nil {
		return v.invalid(result, err)
	}
	strategy, err := p.Strategy()
	if err != nil {
		return v.invalid(result, err)
	}

	if outcome, ok := v.cached(ctx, p, pos, mover, strategy); ok {
		result.Outcome = outcome
		result.Cached = true
	} else {
		result.Outcome = NewSolver(v.solverCfg, strategy).Solve(pos, mover)
		v.store(ctx, p, pos, mover, result.Outcome)
	}

	result.Verdict = judge(p, result.Outcome)
	v.logf(2, "%s: %s in %d moves, %d nodes explored\n",
		p, result.Verdict, len(result.Outcome.Path), result.Outcome.Explored)
	return result
}

// judge compares an outcome with the puzzle's declared target.
func judge(p puzzle.Puzzle, outcome solver.Outcome) Verdict {
	switch outcome.Status {
	case solver.StatusUnsolvable:
		return VerdictUnsolvable
	case solver.StatusLimitExceeded:
		return VerdictLimitExceeded
	}
	if p.TargetMoves > 0 && len(outcome.Path) != p.TargetMoves {
		return VerdictTargetMismatch
	}
	return VerdictOK
}

// cached rebuilds an outcome from the cache. Solved records are replayed
// so a stale or corrupt entry is ignored rather than trusted.
func (v *Verifier) cached(ctx context.Context, p puzzle.Puzzle, pos chess.Position, mover chess.Colour,
	strategy rules.Strategy) (solver.Outcome, bool) {
	if v.cache == nil {
		return solver.Outcome{}, false
	}
	rec, ok, err := v.cache.Get(ctx, p.FEN, p.Module)
	if err != nil {
		v.logf(1, "%s: cache lookup failed: %v\n", p, err)
		return solver.Outcome{}, false
	}
	if !ok {
		return solver.Outcome{}, false
	}

	status, ok := solver.ParseStatus(rec.Status)
	if !ok || status == solver.StatusLimitExceeded {
		return solver.Outcome{}, false
	}
	outcome := solver.Outcome{
		Status:   status,
		Solved:   status == solver.StatusSolved,
		Path:     []chess.Move{},
		Final:    pos,
		Message:  status.Message(),
		Explored: rec.Explored,
	}
	if status != solver.StatusSolved {
		return outcome, true
	}

	moves, err := rec.Moves()
	if err != nil {
		v.logf(1, "%s: ignoring cached solution: %v\n", p, err)
		return solver.Outcome{}, false
	}
	final, err := ReplayPath(strategy, pos, mover, moves)
	if err != nil {
		v.logf(1, "%s: ignoring cached solution: %v\n", p, err)
		return solver.Outcome{}, false
	}
	outcome.Path = moves
	outcome.Final = final
	return outcome, true
}

// store caches definitive outcomes. Limit-exceeded results depend on the
// configured bounds and are not stored.
func (v *Verifier) store(ctx context.Context, p puzzle.Puzzle, pos chess.Position, mover chess.Colour, outcome solver.Outcome) {
	if v.cache == nil || outcome.Status == solver.StatusLimitExceeded {
		return
	}
	if _, err := v.cache.Put(ctx, store.NewRecord(pos, mover, p.Module, outcome)); err != nil {
		v.logf(1, "%s: cache write failed: %v\n", p, err)
	}
}

func (v *Verifier) invalid(result Verification, err error) Verification {
	result.Verdict = VerdictInvalid
	result.Err = &errors.PuzzleError{Err: err, ID: result.Puzzle.ID}
	v.logf(1, "%v\n", result.Err)
	return result
}

func (v *Verifier) logf(level int, format string, args ...interface{}) {
	if v.logFile != nil && v.verbosity >= level {
		fmt.Fprintf(v.logFile, format, args...)
	}
}

// ReplayPath applies path from pos, checking each move against strategy,
// and requires the final position to satisfy the goal.
func ReplayPath(strategy rules.Strategy, pos chess.Position, mover chess.Colour, path []chess.Move) (chess.Position, error) {
	for i, move := range path {
		if !strategy.IsMoveValid(pos, move) {
			return pos, fmt.Errorf("illegal move at ply %d: %s", i+1, move)
		}
		pos, _ = pos.ApplyMove(move.From, move.To)
	}
	if !strategy.IsGoal(pos, mover) {
		return pos, fmt.Errorf("path of %d moves does not reach the goal", len(path))
	}
	return pos, nil
}
