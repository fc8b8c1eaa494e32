package hashing

// VisitedSet tracks search states that have already been reached.
type VisitedSet struct {
	seen map[Key]struct{}
	// maxCapacity bounds the number of stored keys (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of rejected revisits
	duplicateCount int
}

// NewVisitedSet creates a set. maxCapacity of 0 means unlimited capacity.
func NewVisitedSet(maxCapacity int) *VisitedSet {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &VisitedSet{
		seen:        make(map[Key]struct{}),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether key was already present and records it if not.
// When the set is full a new key is not stored; check IsFull first when
// that matters.
func (v *VisitedSet) CheckAndAdd(key Key) bool {
	if _, ok := v.seen[key]; ok {
		v.duplicateCount++
		return true
	}
	if v.IsFull() {
		return false
	}
	v.seen[key] = struct{}{}
	return false
}

// Contains reports whether key has been recorded.
func (v *VisitedSet) Contains(key Key) bool {
	_, ok := v.seen[key]
	return ok
}

// Len returns the number of recorded keys.
func (v *VisitedSet) Len() int {
	return len(v.seen)
}

// DuplicateCount returns how many revisits CheckAndAdd rejected.
func (v *VisitedSet) DuplicateCount() int {
	return v.duplicateCount
}

// IsFull returns true if the set has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (v *VisitedSet) IsFull() bool {
	return v.maxCapacity > 0 && len(v.seen) >= v.maxCapacity
}
