// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fittessness/fittessness/internal/platform/dberr"
)

// # User Repository
//
// All inputs are passed as bound parameters to pgx — never concatenated into
// the query text — so injection is not a failure mode here.

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users table.

Description: Atomic single-row insert; the UNIQUE constraints on username and
email surface as a CONFLICT outcome without revealing which column collided.

Parameters:
  - ctx: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict, apperr.Unavailable, or internal database errors
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (
			id, username, first_name, last_name, email, hashed_password, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	return dberr.Wrap(err, "User", duplicateIdentityMessage)
}

/*
FindByUsername retrieves a user record by their unique username.

Description: Standard lookup for authentication and profile resolution.

Parameters:
  - ctx: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, first_name, last_name, email, hashed_password, created_at
		FROM users
		WHERE username = $1`

	return repository.scanUser(ctx, query, username)
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - ctx: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, username, first_name, last_name, email, hashed_password, created_at
		FROM users
		WHERE id = $1`

	return repository.scanUser(ctx, query, id)
}

// scanUser runs a single-row user query and hydrates the entity.
func (repository *PostgresUserRepository) scanUser(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "User", duplicateIdentityMessage)
	}

	return user, nil
}
