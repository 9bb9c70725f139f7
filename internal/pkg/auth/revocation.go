package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RevocationStore remembers logged out token ids until the token would have expired anyway.
type RevocationStore struct {
	redis RedisClient
	now   func() time.Time
}

func NewRevocationStore(redis RedisClient) *RevocationStore {
	return &RevocationStore{
		redis: redis,
		now:   time.Now,
	}
}

func (s *RevocationStore) GetRevocationKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return fmt.Errorf("token has no id")
	}

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, s.GetRevocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.GetRevocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}

	return n > 0, nil
}
