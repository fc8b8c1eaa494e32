package hashing

import (
	"sync"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
)

// ThreadSafeDuplicateDetector detects repeated puzzle start positions across
// concurrent workers.
type ThreadSafeDuplicateDetector struct {
	set *VisitedSet
	mu  sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		set: NewVisitedSet(maxCapacity),
	}
}

// CheckAndAdd atomically checks if a start position was seen and records it.
// Returns true if it is a duplicate.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(pos chess.Position, colour chess.Colour) bool {
	key := Key{Hash: Zobrist(pos, colour)}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.set.CheckAndAdd(key)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.set.DuplicateCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.set.Len()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.set.IsFull()
}
