package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// SessionStore tracks revoked tokens in redis. A signed-out token stays
// denied until its natural expiry, after which the key can be dropped.
type SessionStore struct {
	redis *redis.Client
}

func NewSessionStore(redisAddr string) *SessionStore {
	return &SessionStore{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
	}
}

func NewSessionStoreWithClient(client *redis.Client) *SessionStore {
	return &SessionStore{redis: client}
}

func (s *SessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	return s.redis.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (s *SessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.redis.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStore) Close() error {
	return s.redis.Close()
}
