package repository

import (
	"context"
	"sync"
)

// MemoryPreferenceRepo keeps preferences for the life of the process only
type MemoryPreferenceRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferenceRepo() *MemoryPreferenceRepo {
	return &MemoryPreferenceRepo{values: make(map[string]string)}
}

func (r *MemoryPreferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *MemoryPreferenceRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *MemoryPreferenceRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.values)
	return nil
}
