package worker

import (
	"context"

	"github.com/lgbarn/chess-puzzles-go/internal/processing"
	"github.com/lgbarn/chess-puzzles-go/internal/puzzle"
)

// VerifyAll verifies puzzles on a pool and returns the results in input
// order. Puzzles are screened in input order before dispatch, so when two
// share a start position the later one is the duplicate. When ctx is
// cancelled puzzles not yet verified are absent from the result.
func VerifyAll(ctx context.Context, v *processing.Verifier, puzzles []puzzle.Puzzle, opts ...PoolOption) []processing.Verification {
	slots := make([]*processing.Verification, len(puzzles))
	var pending []WorkItem
	for i, p := range puzzles {
		if ctx.Err() != nil {
			break
		}
		if r, done := v.Screen(p); done {
			slots[i] = &r
			continue
		}
		pending = append(pending, WorkItem{Puzzle: p, Index: i})
	}

	pool := NewPool(func(ctx context.Context, item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Verification: v.Solve(ctx, item.Puzzle)}
	}, opts...)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for _, item := range pending {
			if !pool.Submit(item) {
				return
			}
		}
	}()

	for result := range pool.Results() {
		r := result.Verification
		slots[result.Index] = &r
	}

	results := make([]processing.Verification, 0, len(puzzles))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
