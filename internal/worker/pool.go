// Package worker verifies batches of puzzles on a pool of goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chess-puzzles-go/internal/processing"
	"github.com/lgbarn/chess-puzzles-go/internal/puzzle"
)

// WorkItem is one puzzle queued for verification.
type WorkItem struct {
	Puzzle puzzle.Puzzle
	Index  int // Position in the submitted batch
}

// ProcessResult is the verification of one WorkItem.
type ProcessResult struct {
	Index        int
	Verification processing.Verification
}

// ProcessFunc verifies a single item. It must be safe for concurrent use.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines. Results arrive
// in completion order, not submission order.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with 1 worker and a buffer of 10 unless the
// options say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Once ctx is done or Stop is called, queued
// items are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.ctx.Err() != nil {
			continue
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false without queueing once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop cancels the pool's context. Items already queued are skipped.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped reports whether Stop was called or the parent context ended.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close stops accepting work, waits for the workers and then closes the
// result channel. Call it exactly once, after the last Submit.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	p.cancel()
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
