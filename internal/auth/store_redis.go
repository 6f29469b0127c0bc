// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// Sessions are volatile by design: the TTL on the key is the session expiry,
// so no sweeper process is needed.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Set stores a session record under its opaque token with the given TTL.

Parameters:
  - ctx: context.Context
  - token: the opaque cookie credential
  - record: the session payload
  - ttl: time until the session lapses

Returns:
  - error: apperr.Upstream on identity-store failure
*/
func (repository *RedisSessionRepository) Set(ctx context.Context, token string, record *SessionRecord, ttl time.Duration) error {
	key := constants.RedisPrefixSession + token

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("auth: marshal session record: %w", err)
	}

	if err := repository.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return apperr.Upstream(fmt.Errorf("auth: session set failed: %w", err))
	}

	return nil
}

/*
Get retrieves the session record for a token.

Description: Returns (nil, nil) if the token is unknown or expired — an
anonymous outcome, not an error. Store connectivity failures surface as
apperr.Upstream so they are never mistaken for a missing session.
*/
func (repository *RedisSessionRepository) Get(ctx context.Context, token string) (*SessionRecord, error) {
	key := constants.RedisPrefixSession + token

	payload, err := repository.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperr.Upstream(fmt.Errorf("auth: session get failed: %w", err))
	}

	record := &SessionRecord{}
	if err := json.Unmarshal(payload, record); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("auth: corrupt session record: %w", err))
	}

	return record, nil
}

/*
Delete removes the session record (sign-out).
*/
func (repository *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return apperr.Upstream(fmt.Errorf("auth: session delete failed: %w", err))
	}

	return nil
}
