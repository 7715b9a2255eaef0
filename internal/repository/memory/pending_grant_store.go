package memory

import (
	"context"
	"time"

	"smepro-be/pkg/capability"

	"github.com/patrickmn/go-cache"
)

// PendingGrantStore keeps capability activation tokens in process memory.
// Suits single-instance deployments; use the redis store behind a balancer.
type PendingGrantStore struct {
	cache *cache.Cache
}

func NewPendingGrantStore() *PendingGrantStore {
	c := cache.New(capability.PendingTTL, 10*time.Minute)
	return &PendingGrantStore{
		cache: c,
	}
}

func (s *PendingGrantStore) Put(ctx context.Context, token string, grant capability.PendingGrant, ttl time.Duration) error {
	s.cache.Set(token, grant, ttl)
	return nil
}

func (s *PendingGrantStore) Take(ctx context.Context, token string) (capability.PendingGrant, bool, error) {
	x, found := s.cache.Get(token)
	if !found {
		return capability.PendingGrant{}, false, nil
	}
	s.cache.Delete(token)
	return x.(capability.PendingGrant), true, nil
}
