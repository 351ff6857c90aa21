// Package draft keeps short-lived, per-user wizard state between Discord interactions.
package draft

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

var (
	// ErrNotFound is returned when a draft is missing or has expired.
	ErrNotFound = errors.New("draft not found or expired")

	// ErrForbidden is returned when a draft is requested by someone other than its owner.
	ErrForbidden = errors.New("draft belongs to another user")
)

type entry[T any] struct {
	ownerID string
	value   T
}

// Store holds drafts of type T for a fixed time-to-live.
// Every draft is bound to the user id that stored it.
//
// Interaction handlers run concurrently, so drafts must only be read or
// mutated inside View, Update and Take, which serialize access to the store.
type Store[T any] struct {
	name  string
	ttl   time.Duration
	cache *gocache.Cache

	mu sync.Mutex
}

// NewStore creates a Store whose entries expire after ttl.
func NewStore[T any](name string, ttl time.Duration) *Store[T] {
	c := gocache.New(ttl, ttl)
	c.OnEvicted(func(key string, _ any) {
		slog.Debug("evicted draft", "store", name, "key", key)
	})

	return &Store[T]{
		name:  name,
		ttl:   ttl,
		cache: c,
	}
}

// NewKey returns a fresh draft key suitable for embedding in a customId.
func NewKey() string {
	return uuid.NewString()
}

// Put stores value under key for ownerID, replacing any previous draft and resetting its TTL.
// It returns key so callers can chain it into a customId.
func (s *Store[T]) Put(key, ownerID string, value T) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Set(key, entry[T]{ownerID: ownerID, value: value}, s.ttl)
	return key
}

// Restore puts back a draft removed by Take, unless a new draft was stored
// under key in the meantime. It reports whether the draft was restored.
func (s *Store[T]) Restore(key, ownerID string, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Add(key, entry[T]{ownerID: ownerID, value: value}, s.ttl) == nil
}

// Get returns the draft stored under key if ownerID owns it.
func (s *Store[T]) Get(key, ownerID string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(key, ownerID)
}

// View calls fn with the draft stored under key while holding the store lock.
func (s *Store[T]) View(key, ownerID string, fn func(T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.get(key, ownerID)
	if err != nil {
		return err
	}
	fn(value)
	return nil
}

// Update applies fn to the draft stored under key while holding the store
// lock. The draft's TTL is refreshed when fn succeeds.
func (s *Store[T]) Update(key, ownerID string, fn func(T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.get(key, ownerID)
	if err != nil {
		return err
	}
	if err := fn(value); err != nil {
		return err
	}
	s.cache.Set(key, entry[T]{ownerID: ownerID, value: value}, s.ttl)
	return nil
}

// Take applies fn to the draft stored under key and removes it from the store
// when fn succeeds. Only one caller can take a given draft; later callers get
// ErrNotFound.
func (s *Store[T]) Take(key, ownerID string, fn func(T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	value, err := s.get(key, ownerID)
	if err != nil {
		return zero, err
	}
	if err := fn(value); err != nil {
		return zero, err
	}
	s.cache.Delete(key)
	return value, nil
}

func (s *Store[T]) get(key, ownerID string) (T, error) {
	var zero T

	raw, ok := s.cache.Get(key)
	if !ok {
		return zero, ErrNotFound
	}

	e, ok := raw.(entry[T])
	if !ok {
		return zero, ErrNotFound
	}
	if e.ownerID != ownerID {
		slog.Warn("rejected draft access", "store", s.name, "key", key, "user_id", ownerID)
		return zero, ErrForbidden
	}

	return e.value, nil
}

// Delete removes the draft stored under key.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(key)
}

// Len sweeps expired drafts and returns the number still live.
func (s *Store[T]) Len() int {
	s.cache.DeleteExpired()
	return s.cache.ItemCount()
}

// TTL returns the lifetime of drafts in this store.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}
