// Package cache provides the short-lived read cache that sits between the
// presentation layer and the database. Entries expire after a fixed TTL and
// the whole store is invalidated on any write, so cached data is never older
// than the TTL or the last write, whichever is more recent.
package cache

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value   any
	fetched time.Time
}

// Store maps an (operation, argument tuple) key to a cached result. Expiry is
// checked on read. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a Store whose entries live for ttl after being set.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key builds a cache key from an operation id and its exact argument tuple.
// Pointer arguments are rendered by value so that identical filters produce
// identical keys regardless of which allocation carried them.
func Key(op string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, op)
	for _, a := range args {
		parts = append(parts, render(a))
	}
	return strings.Join(parts, "|")
}

func render(a any) string {
	switch v := a.(type) {
	case nil:
		return "<nil>"
	case *int64:
		if v == nil {
			return "<nil>"
		}
		return strconv.FormatInt(*v, 10)
	case *string:
		if v == nil {
			return "<nil>"
		}
		return *v
	default:
		return fmt.Sprint(a)
	}
}

// Get returns the value cached under key, if present and not expired.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.fetched) >= s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, stamped with the current time.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, fetched: s.now()}
}

// Invalidate drops every cached entry so the next read re-queries.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}

// Len reports the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
