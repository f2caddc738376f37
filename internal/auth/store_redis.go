// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

// RedisSessionStore implements SessionStore using Redis.
//
// # Concurrency
//
// Redis executes commands for a key serially, which gives the deterministic
// resolution the session lifecycle needs: a DEL ordered after a concurrent
// GETEX wins — every later validation sees the token as absent.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new Redis-backed SessionStore.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

/*
Set stores the session JSON under its token with the idle-timeout TTL.

Parameters:
  - ctx: context.Context
  - token: string
  - session: *sec.SessionContext
  - ttl: time.Duration

Returns:
  - error: Marshalling or execution errors
*/
func (store *RedisSessionStore) Set(ctx context.Context, token string, session *sec.SessionContext, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	key := constants.RedisPrefixSession + token
	if err := store.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
GetRefresh retrieves the session for a token and slides its TTL forward.

Description: GETEX performs the lookup and the TTL reset as one atomic
command, so a validated access always restarts the full idle window.
Returns apperr.NotFound if the token is absent or its TTL already lapsed.

Parameters:
  - ctx: context.Context
  - token: string
  - ttl: time.Duration

Returns:
  - *sec.SessionContext: The stored session
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisSessionStore) GetRefresh(ctx context.Context, token string, ttl time.Duration) (*sec.SessionContext, error) {
	key := constants.RedisPrefixSession + token

	payload, err := store.client.GetEx(ctx, key, ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &sec.SessionContext{}
	if err := json.Unmarshal([]byte(payload), session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	return session, nil
}

/*
Delete removes the session from Redis.

Description: DEL on a missing key is a no-op in Redis, which makes destroy
idempotent for free.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - error: Execution failures
*/
func (store *RedisSessionStore) Delete(ctx context.Context, token string) error {
	key := constants.RedisPrefixSession + token

	if err := store.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
