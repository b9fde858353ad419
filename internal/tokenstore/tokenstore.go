// Package tokenstore tracks revoked bearer tokens so logout takes effect
// before the JWT itself expires.
package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// revokedPrefix namespaces revocation keys in redis.
const revokedPrefix = "revoked:"

// Store records revoked tokens until their natural expiry.
type Store interface {
	// Revoke marks a token as revoked for the given lifetime.
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	// IsRevoked reports whether a token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisStore is a redis-backed Store shared across replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a redis client as a revocation store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Revoke marks a token as revoked in redis with a TTL.
func (s *RedisStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.Set(ctx, revokedPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether a token exists in the revocation set.
func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryEntry stores a revocation with its expiry.
type memoryEntry struct {
	expires time.Time
}

// MemoryStore is an in-process Store used when redis is not configured.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory revocation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryEntry)}
}

// Revoke marks a token as revoked until its TTL lapses.
func (s *MemoryStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.items[token] = memoryEntry{expires: time.Now().Add(ttl)}
	return nil
}

// IsRevoked reports whether a token is currently revoked.
func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expires) {
		delete(s.items, token)
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries. Caller holds the lock.
func (s *MemoryStore) sweepLocked() {
	now := time.Now()
	for token, entry := range s.items {
		if now.After(entry.expires) {
			delete(s.items, token)
		}
	}
}
