package repository

import (
	"context"
	"errors"
	"log"
	"sync"
)

// RecordStore holds one ordered collection in memory and mirrors it to a
// storage slot. Every mutation writes the full resulting collection before
// it becomes visible; a failed write leaves the collection unchanged.
type RecordStore[T any, K comparable] struct {
	mu    sync.Mutex
	slots SlotRepository
	key   string
	idOf  func(T) K
	items []T
}

// NewRecordStore loads the collection stored under key. When the slot is
// absent or cannot be decoded, seed() is installed and persisted
// immediately; if that write fails the seed stays in memory only. When the
// slot cannot be read at all, seed() is used in memory only so the stored
// value is not overwritten.
func NewRecordStore[T any, K comparable](ctx context.Context, slots SlotRepository, key string, idOf func(T) K, seed func() []T) (*RecordStore[T, K], error) {
	s := &RecordStore[T, K]{
		slots: slots,
		key:   key,
		idOf:  idOf,
	}

	var items []T
	found, err := LoadSnapshot(ctx, slots, key, &items)
	switch {
	case err == nil && found:
		s.items = items
		return s, nil
	case err != nil && !errors.Is(err, ErrSnapshotCorrupt):
		log.Printf("[store] %s: falling back to seed without persisting: %v", key, err)
		s.items = seed()
		return s, nil
	case err != nil:
		log.Printf("[store] %s: discarding unreadable snapshot: %v", key, err)
	}

	initial := seed()
	if err := s.commit(ctx, initial); err != nil {
		log.Printf("[store] %s: keeping seed in memory, write failed: %v", key, err)
		s.items = initial
		if s.items == nil {
			s.items = []T{}
		}
	}
	return s, nil
}

// List returns a copy of the collection in stored order
func (s *RecordStore[T, K]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of records
func (s *RecordStore[T, K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// GetByID finds a record by identifier
func (s *RecordStore[T, K]) GetByID(id K) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record
func (s *RecordStore[T, K]) Add(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(s.snapshot(), record)
	return s.commit(ctx, next)
}

// Update replaces the record with the same identifier. It reports false
// and writes nothing when no such record exists.
func (s *RecordStore[T, K]) Update(ctx context.Context, record T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idOf(record)
	next := s.snapshot()
	for i := range next {
		if s.idOf(next[i]) == id {
			next[i] = record
			return true, s.commit(ctx, next)
		}
	}
	return false, nil
}

// Delete removes the record with the given identifier. It reports false
// and writes nothing when no such record exists.
func (s *RecordStore[T, K]) Delete(ctx context.Context, id K) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.idOf(item) != id {
			next = append(next, item)
		}
	}
	if len(next) == len(s.items) {
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Replace swaps the whole collection
func (s *RecordStore[T, K]) Replace(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]T, len(items))
	copy(next, items)
	return s.commit(ctx, next)
}

// Mutate runs fn on a copy of the collection and commits the result.
// fn must not retain the slice. Returning a non-nil error aborts without
// writing.
func (s *RecordStore[T, K]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.snapshot())
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *RecordStore[T, K]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// commit persists next and installs it. Caller holds mu (or owns s exclusively).
func (s *RecordStore[T, K]) commit(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	if err := SaveSnapshot(ctx, s.slots, s.key, next); err != nil {
		return err
	}
	s.items = next
	return nil
}
