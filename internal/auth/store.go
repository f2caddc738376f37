// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/fittessness/fittessness/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Implementations translate storage failures into the apperr taxonomy at the
// boundary: missing rows surface as NOT_FOUND, unique violations as CONFLICT,
// and connectivity loss as SERVICE_UNAVAILABLE — never raw driver errors.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - ctx: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(ctx context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - ctx: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(ctx context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account atomically: afterwards
		either the full record is visible or none of it.

		Parameters:
		  - ctx: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on duplicate username/email, apperr.Unavailable
		    on transient connectivity loss
	*/
	Create(ctx context.Context, user *User) error
}

// # Session Data Access

// SessionStore defines the data access contract for live session state.
//
// The store must support concurrent access from many requests: writes for
// different tokens never interfere, and a Delete ordered after a concurrent
// GetRefresh wins (the token validates as absent from then on).
type SessionStore interface {

	/*
		Set stores a session under its token with the idle-timeout TTL.

		Parameters:
		  - ctx: context.Context
		  - token: string
		  - session: *sec.SessionContext
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(ctx context.Context, token string, session *sec.SessionContext, ttl time.Duration) error

	/*
		GetRefresh returns the session for a token and, when found, resets
		its TTL to the idle-timeout (sliding expiration — the lookup itself
		counts as activity).

		Parameters:
		  - ctx: context.Context
		  - token: string
		  - ttl: time.Duration

		Returns:
		  - *sec.SessionContext: The stored session
		  - error: apperr.NotFound for absent/expired tokens, or retrieval failures
	*/
	GetRefresh(ctx context.Context, token string, ttl time.Duration) (*sec.SessionContext, error)

	/*
		Delete removes a session. Deleting an absent or already-deleted
		token is not an error (idempotent).

		Parameters:
		  - ctx: context.Context
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(ctx context.Context, token string) error
}
