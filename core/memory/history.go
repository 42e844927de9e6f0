package memory

import "fmt"

// DefaultCapacity is the History capacity used when a model is constructed
// without an explicit History.
const DefaultCapacity = 32

// History is a bounded, ordered buffer of conversation turns, oldest first.
// After every Add the invariant len <= capacity holds; when an append would
// exceed capacity the oldest entries are evicted, strictly by insertion order.
//
// History is deliberately not safe for concurrent use: it is owned by a single
// model, and callers who share one History across models must serialize
// access themselves.
type History struct {
	capacity int
	entries  []Entry
}

// NewHistory creates an empty History with the given capacity. The capacity
// must be at least 1. Each call materializes a fresh backing slice; a History
// is never shared implicitly between instances.
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	return &History{
		capacity: capacity,
		entries:  []Entry{},
	}, nil
}

// Add appends entry and evicts from the front until the capacity invariant
// holds again.
func (h *History) Add(entry Entry) {
	h.entries = append(h.entries, entry)
	h.evict()
}

// Window replaces the capacity, immediately evicting the oldest entries if the
// buffer now exceeds it, and returns the surviving sequence. A capacity below
// 1 is rejected and leaves the History unchanged.
func (h *History) Window(capacity int) ([]Entry, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	h.capacity = capacity
	h.evict()
	return h.Entries(), nil
}

// Entries returns a copy of the current sequence, oldest first. The copy keeps
// callers from mutating the buffer out from under the owning model.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cap returns the current capacity.
func (h *History) Cap() int {
	return h.capacity
}

// Clear removes all entries, retaining the slice capacity for reuse.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

func (h *History) evict() {
	if excess := len(h.entries) - h.capacity; excess > 0 {
		h.entries = append(h.entries[:0], h.entries[excess:]...)
	}
}
