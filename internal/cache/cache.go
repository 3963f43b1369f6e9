// Package cache provides the result cache used by the HTTP facade. Keys are
// content hashes of the canonical request payload, so identical requests hit
// the same entry regardless of field ordering in the original JSON.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache stores serialized calculation results keyed by request hash.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Key derives a cache key from the product name and the canonical request
// payload.
func Key(product string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return product + ":" + hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process cache for single-instance deployments and tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get returns the cached value for key if present and not expired.
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores a value under key; a zero ttl means no expiry.
func (m *Memory) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}
