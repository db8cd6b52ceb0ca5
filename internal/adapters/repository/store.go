// Package repository keeps the latest computed snapshot of each view.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/okian/podium/pkg/metrics"
)

// Snapshot is one encoded view payload.
type Snapshot struct {
	View       string
	Body       []byte // JSON encoding of the view
	ETag       string // quoted strong validator over Body
	Size       int    // edges, cells or countries in the view
	ComputedAt time.Time
	Took       time.Duration
}

// Encode renders payload as a Snapshot of view. ComputedAt is left for the
// store to stamp.
func Encode(view string, payload any, size int, took time.Duration) (Snapshot, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %w", ErrEncode, view, err)
	}
	return Snapshot{
		View: view,
		Body: body,
		ETag: ETag(body),
		Size: size,
		Took: took,
	}, nil
}

// ETag returns the quoted xxh3 hash of body.
func ETag(body []byte) string {
	return `"` + strconv.FormatUint(xxh3.Hash(body), 16) + `"`
}

// Store provides read/write access to view snapshots.
type Store interface {
	// Put replaces the snapshot of s.View.
	Put(ctx context.Context, s Snapshot) (Snapshot, error)

	// Get returns the latest snapshot of view, or ErrNotFound.
	Get(ctx context.Context, view string) (Snapshot, error)

	// List returns every snapshot ordered by view name.
	List(ctx context.Context) []Snapshot

	// Count returns the number of stored views.
	Count(ctx context.Context) int
}

// MemoryStore is an in-memory Store guarded by an RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
	now   func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		snaps: make(map[string]Snapshot),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stamps s with the current time and stores it.
func (s *MemoryStore) Put(_ context.Context, snap Snapshot) (Snapshot, error) {
	snap.ComputedAt = s.now()

	s.mu.Lock()
	s.snaps[snap.View] = snap
	s.mu.Unlock()

	metrics.RecordSnapshotPublished(snap.View, snap.ComputedAt.Unix())
	return snap, nil
}

// Get returns the latest snapshot of view.
func (s *MemoryStore) Get(_ context.Context, view string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[view]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, view)
	}
	return snap, nil
}

// List returns every snapshot ordered by view name.
func (s *MemoryStore) List(_ context.Context) []Snapshot {
	s.mu.RLock()
	out := make([]Snapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		out = append(out, snap)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].View < out[j].View })
	return out
}

// Count returns the number of stored views.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snaps)
}
