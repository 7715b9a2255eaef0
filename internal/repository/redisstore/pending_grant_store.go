package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smepro-be/pkg/capability"

	"github.com/redis/go-redis/v9"
)

const grantKeyPrefix = "capability:grant:"

// PendingGrantStore keeps capability activation tokens in redis so any
// instance behind the balancer can confirm a grant proposed by another.
type PendingGrantStore struct {
	client *redis.Client
}

func NewPendingGrantStore(client *redis.Client) *PendingGrantStore {
	return &PendingGrantStore{
		client: client,
	}
}

func (s *PendingGrantStore) Put(ctx context.Context, token string, grant capability.PendingGrant, ttl time.Duration) error {
	payload, err := json.Marshal(grant)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, grantKeyPrefix+token, payload, ttl).Err()
}

func (s *PendingGrantStore) Take(ctx context.Context, token string) (capability.PendingGrant, bool, error) {
	key := grantKeyPrefix + token
	payload, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return capability.PendingGrant{}, false, nil
	}
	if err != nil {
		return capability.PendingGrant{}, false, err
	}
	var grant capability.PendingGrant
	if err := json.Unmarshal([]byte(payload), &grant); err != nil {
		return capability.PendingGrant{}, false, err
	}
	return grant, true, nil
}
