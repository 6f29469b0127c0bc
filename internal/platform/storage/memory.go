// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/hirevine/hirevine/internal/platform/apperr"
)

// MemoryStore is an in-process [ObjectStore] used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put implements [ObjectStore].
func (store *MemoryStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return apperr.Upstream(fmt.Errorf("storage: read body: %w", err))
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.objects[key] = data
	return nil
}

// Get implements [ObjectStore].
func (store *MemoryStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	store.mu.RLock()
	data, found := store.objects[key]
	store.mu.RUnlock()

	if !found {
		return nil, apperr.Upstream(fmt.Errorf("storage: object %q missing", key))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete implements [ObjectStore].
func (store *MemoryStore) Delete(ctx context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.objects, key)
	return nil
}

// Len reports the number of stored objects. Test helper.
func (store *MemoryStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.objects)
}

// Has reports whether a key exists. Test helper.
func (store *MemoryStore) Has(key string) bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	_, found := store.objects[key]
	return found
}
