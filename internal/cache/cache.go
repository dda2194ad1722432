// Package cache memoizes evaluation results keyed by their inputs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"reanalyzer/internal/engine"
)

// Cache stores opaque values with an expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// keyVersion changes whenever the cached payload shape changes.
const keyVersion = "v1"

// Key derives the cache key of an evaluation from its input and policy.
func Key(in engine.Input, policy engine.Policy) (string, error) {
	payload, err := json.Marshal(struct {
		Input  engine.Input  `json:"input"`
		Policy engine.Policy `json:"policy"`
	}{in, policy})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	return fmt.Sprintf("eval:%s:%016x", keyVersion, xxhash.Sum64(payload)), nil
}

// DefaultMemorySize bounds the in-memory cache when no size is configured.
const DefaultMemorySize = 10000

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryOptions configures an in-memory cache. TTL is the longest an entry
// is kept; a shorter ttl passed to Set still applies.
type MemoryOptions struct {
	Size int
	TTL  time.Duration
}

// Memory is an in-process Cache backed by a bounded LRU. Entries past their
// ttl are reclaimed in the background. A zero ttl keeps the entry until it
// is evicted for space.
type Memory struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory(opts MemoryOptions) *Memory {
	size := opts.Size
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &Memory{
		lru: expirable.NewLRU[string, entry](size, nil, opts.TTL),
		now: time.Now,
	}
}

// Get returns the value stored under key if it has not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.lru.Add(key, e)
	return nil
}

// Len returns the number of entries held, including any not yet reclaimed.
func (m *Memory) Len() int {
	return m.lru.Len()
}
