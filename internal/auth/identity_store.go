package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"internmatch/internal/cache"
)

const identityKeyPrefix = "identity:"

// IdentityStoreInterface caches resolved identities by token.
type IdentityStoreInterface interface {
	Get(ctx context.Context, token string) (*Identity, bool)
	Put(ctx context.Context, token string, identity *Identity) error
	Invalidate(ctx context.Context, token string) error
}

// IdentityStore keeps resolved identities in Redis. Keys are token digests, never raw tokens.
type IdentityStore struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure IdentityStore implements IdentityStoreInterface
var _ IdentityStoreInterface = (*IdentityStore)(nil)

// NewIdentityStore creates a new identity store. A zero ttl disables caching.
func NewIdentityStore(cache *cache.Client, ttl time.Duration) *IdentityStore {
	return &IdentityStore{cache: cache, ttl: ttl}
}

func identityKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return identityKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns a cached identity, if any.
func (s *IdentityStore) Get(ctx context.Context, token string) (*Identity, bool) {
	if s == nil || s.ttl <= 0 {
		return nil, false
	}
	var identity Identity
	if !s.cache.GetJSON(ctx, identityKey(token), &identity) {
		return nil, false
	}
	if !identity.IsStudent() && !identity.IsAdmin() {
		return nil, false
	}
	return &identity, true
}

// Put caches identity for token.
func (s *IdentityStore) Put(ctx context.Context, token string, identity *Identity) error {
	if s == nil || s.ttl <= 0 {
		return nil
	}
	return s.cache.SetJSON(ctx, identityKey(token), identity, s.ttl)
}

// Invalidate drops the cached identity for token.
func (s *IdentityStore) Invalidate(ctx context.Context, token string) error {
	if s == nil {
		return nil
	}
	return s.cache.Delete(ctx, identityKey(token))
}
