package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps session principals in Redis with a sliding idle
// timeout. Safe for concurrent use; the durable record for a session id is
// only ever written by the session that owns it.
type RedisStore struct {
	client      *redis.Client
	idleTimeout time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, idleTimeout time.Duration) *RedisStore {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &RedisStore{
		client:      client,
		idleTimeout: idleTimeout,
	}
}

// Get retrieves the principal for a session id and refreshes its idle
// timeout. Returns (nil, nil) when the session is unknown or expired.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Principal, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var principal Principal
	if err := json.Unmarshal([]byte(data), &principal); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	// Sliding expiry: activity keeps the session alive.
	_ = s.client.Expire(ctx, redisKeyPrefix+sessionID, s.idleTimeout).Err()

	return &principal, nil
}

// Set stores the principal under the session id with the idle timeout.
func (s *RedisStore) Set(ctx context.Context, sessionID string, principal *Principal) error {
	data, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sessionID, data, s.idleTimeout).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// Clear removes the session record. Clearing an absent session is a no-op.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
