package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory ObjectStore for tests and local runs.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]map[string][]byte),
	}
}

// Put stores an object.
func (m *MemoryStore) Put(_ context.Context, bucket, key string, body io.Reader, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading object body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = make(map[string][]byte)
	}
	m.buckets[bucket][key] = data
	return nil
}

// Get retrieves an object's contents.
func (m *MemoryStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("memory://%s/%s: %w", bucket, key, ErrObjectNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ListKeys returns keys under prefix in lexical order.
func (m *MemoryStore) ListKeys(_ context.Context, bucket, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for key := range m.buckets[bucket] {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// PresignGet returns a synthetic URL for the object. The object must exist.
func (m *MemoryStore) PresignGet(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.buckets[bucket][key]; !ok {
		return "", fmt.Errorf("memory://%s/%s: %w", bucket, key, ErrObjectNotFound)
	}
	return fmt.Sprintf("memory://%s/%s?expires=%ds", bucket, key, int(expiry.Seconds())), nil
}
