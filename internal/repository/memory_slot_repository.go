package repository

import (
	"context"
	"sync"
)

// MemorySlotRepository keeps slots in process memory. State is lost on restart.
type MemorySlotRepository struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemorySlotRepository returns an empty in-memory SlotRepository.
func NewMemorySlotRepository() *MemorySlotRepository {
	return &MemorySlotRepository{slots: make(map[string]string)}
}

func (r *MemorySlotRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	return v, ok, nil
}

func (r *MemorySlotRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = value
	return nil
}

func (r *MemorySlotRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}
