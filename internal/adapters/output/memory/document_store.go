package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"
)

// Compile-time check to ensure MemoryDocumentStore implements DocumentStore interface
var _ output.DocumentStore = (*MemoryDocumentStore)(nil)

// MemoryDocumentStore struct - Output adapter keeping documents and lists in process.
// A single mutex makes AppendUnique's check-and-append atomic.
type MemoryDocumentStore struct {
	mu        sync.RWMutex
	documents map[string]string
	lists     map[string][]string
}

// NewMemoryDocumentStore creates an empty in-memory document store
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		documents: make(map[string]string),
		lists:     make(map[string][]string),
	}
}

// Exists reports whether a document or list is stored at key
func (m *MemoryDocumentStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.documents[key]; ok {
		return true, nil
	}
	_, ok := m.lists[key]
	return ok, nil
}

// Get returns the document stored at key
func (m *MemoryDocumentStore) Get(ctx context.Context, key string) (string, error) {
	if err := alive(ctx); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.documents[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	return value, nil
}

// Set stores a document at key
func (m *MemoryDocumentStore) Set(ctx context.Context, key, value string) error {
	if err := alive(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[strings.Clone(key)] = strings.Clone(value)
	return nil
}

// Delete removes a document or list. The port does not need it; tests use it
// to make books disappear from the catalog.
func (m *MemoryDocumentStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.documents, key)
	delete(m.lists, key)
}

// Keys lists document and list keys starting with prefix
func (m *MemoryDocumentStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0)
	for key := range m.documents {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	for key := range m.lists {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// AppendUnique appends value to the list at key unless already present
func (m *MemoryDocumentStore) AppendUnique(ctx context.Context, key, value string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.lists[key] {
		if existing == value {
			return false, nil
		}
	}
	m.lists[strings.Clone(key)] = append(m.lists[key], strings.Clone(value))
	return true, nil
}

// Range returns a copy of the list at key
func (m *MemoryDocumentStore) Range(ctx context.Context, key string) ([]string, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.lists[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Ping always succeeds for a live context
func (m *MemoryDocumentStore) Ping(ctx context.Context) error {
	return alive(ctx)
}

// alive maps a cancelled or expired context to ErrStoreUnavailable,
// the way a remote store would fail
func alive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
