// Package dedupe tracks pending keys so repeated requests coalesce.
package dedupe

import (
	"context"
	"sort"
	"sync"
)

// Deduper records keys that have work outstanding.
type Deduper interface {
	// SeenAndRecord atomically checks if id is recorded and records it if not.
	// Returns true if id was already recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes id, e.g. once its work has started or could not be
	// queued.
	Unrecord(ctx context.Context, id string)

	// Keys returns the recorded keys, sorted.
	Keys() []string

	Size() int64
}

// inMemoryDeduper implements Deduper with a map and an insertion sequence
// used for oldest-first eviction in bounded mode.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]uint64
	seq     uint64
	maxSize int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 1024, // default max size
	}

	// Apply all options
	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]uint64)
	return d
}

// SeenAndRecord atomically checks if id is recorded and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		d.evictOldest()
	}
	d.seq++
	d.seen[id] = d.seq
	return false
}

// evictOldest removes the earliest recorded key. Caller holds mu.
func (d *inMemoryDeduper) evictOldest() {
	var (
		oldest string
		low    uint64
	)
	for id, seq := range d.seen {
		if low == 0 || seq < low {
			oldest, low = id, seq
		}
	}
	delete(d.seen, oldest)
}

// Unrecord removes id.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, id)
}

// Keys returns the recorded keys, sorted.
func (d *inMemoryDeduper) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make([]string, 0, len(d.seen))
	for id := range d.seen {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// Size returns the number of recorded keys.
func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
