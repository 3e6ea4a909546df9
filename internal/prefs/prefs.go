// Package prefs is the injected key-value store for per-user view
// preferences: column order, widths, visibility, collapsed sections. It is
// UI persistence only and is fully decoupled from the aggregation engine.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrNotFound is returned when no preferences exist for a (user, view) pair.
var ErrNotFound = errors.New("prefs: not found")

// Store persists one opaque JSON document per (user, view) pair. The portal
// never inspects the document; the presentation layer owns its shape.
type Store interface {
	Get(ctx context.Context, user, view string) (json.RawMessage, error)
	Put(ctx context.Context, user, view string, doc json.RawMessage) error
	Delete(ctx context.Context, user, view string) error
}

// MemoryStore is an in-process Store used in development and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

func memKey(user, view string) string { return user + "/" + view }

// Get returns the stored document or ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, user, view string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[memKey(user, view)]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Put stores the document, replacing any previous one.
func (m *MemoryStore) Put(_ context.Context, user, view string, doc json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(json.RawMessage, len(doc))
	copy(cp, doc)
	m.docs[memKey(user, view)] = cp
	return nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (m *MemoryStore) Delete(_ context.Context, user, view string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, memKey(user, view))
	return nil
}
