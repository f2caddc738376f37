// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

// SessionManager owns the lifecycle of authenticated sessions.
//
// # Lifecycle
//
//	Absent → Active (Create) → Expired (idle-timeout) | Destroyed (Destroy)
//
// Expiry is implicit: a token whose TTL lapsed in the store simply stops
// validating. Both terminal states are indistinguishable to callers — the
// token is Invalid either way.
type SessionManager struct {
	store       SessionStore
	idleTimeout time.Duration
}

// NewSessionManager constructs a manager over the given store with the
// standard idle-timeout.
func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{
		store:       store,
		idleTimeout: SessionIdleTimeout,
	}
}

/*
Create issues a new session bound to the given identity.

Description: Generates a fresh unguessable token, persists the session with
the idle-timeout TTL, and returns the token. A session is bound to exactly
one user and is never shared.

Parameters:
  - ctx: context.Context
  - session: sec.SessionContext (user id + display fields only)

Returns:
  - string: The opaque session token
  - error: Entropy or persistence failures
*/
func (manager *SessionManager) Create(ctx context.Context, session sec.SessionContext) (string, error) {
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return "", fmt.Errorf("session_token_generation_failed: %w", err)
	}

	if err := manager.store.Set(ctx, token, &session, manager.idleTimeout); err != nil {
		return "", fmt.Errorf("session_create_failed: %w", err)
	}

	return token, nil
}

/*
Validate resolves a token into its session identity.

Description: A successful validation counts as activity and slides the idle
window forward. Absent, expired, and destroyed tokens are all reported with
the same Unauthorized outcome.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - *sec.SessionContext: The authenticated identity
  - error: apperr.Unauthorized for any invalid token, or storage failures
*/
func (manager *SessionManager) Validate(ctx context.Context, token string) (*sec.SessionContext, error) {
	session, err := manager.store.GetRefresh(ctx, token, manager.idleTimeout)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid or expired session")
		}
		return nil, fmt.Errorf("session_validate_failed: %w", err)
	}

	return session, nil
}

/*
Destroy invalidates a session token.

Description: Idempotent — destroying an already-destroyed, expired, or
unknown token is not an error. After Destroy returns, no concurrent or later
Validate on the token can succeed.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - error: Persistence failures only
*/
func (manager *SessionManager) Destroy(ctx context.Context, token string) error {
	if err := manager.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("session_destroy_failed: %w", err)
	}
	return nil
}

// IdleTimeout returns the configured idle window. The HTTP layer uses it to
// align the cookie MaxAge with the server-side TTL.
func (manager *SessionManager) IdleTimeout() time.Duration {
	return manager.idleTimeout
}
