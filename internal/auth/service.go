// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/sec"
	"github.com/fittessness/fittessness/internal/platform/validate"
	"github.com/fittessness/fittessness/pkg/normalize"
	"github.com/fittessness/fittessness/pkg/uuid"
)

// # Contracts & Types

// StatsSource supplies the workout aggregates shown on the profile page.
//
// Defined here (not in the workout package) so this package stays free of a
// workout dependency; the concrete implementation is injected in main.
type StatsSource interface {
	// ProfileTotals returns the lifetime workout count and calorie sum for a user.
	ProfileTotals(ctx context.Context, userID string) (totalWorkouts int, totalCalories int, err error)
}

// Service implements user registration, login, and logout use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully: message uniformity and timing
// uniformity on the login path are deliberate.
type Service struct {
	users    UserRepository
	sessions *SessionManager
	hasher   *sec.PasswordHasher
	stats    StatsSource
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(users UserRepository, sessions *SessionManager, hasher *sec.PasswordHasher, stats StatsSource) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		stats:    stats,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: All field rules are checked up front and reported together; the
store is never touched while any rule fails. The plain-text password exists
only for the duration of the hash call.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (hash never serialized)
  - error: Validation, Conflict (ambiguous duplicate), or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	// Canonicalize before validation so rules and uniqueness checks see the
	// exact value that will be stored.
	input.Username = normalize.Name(input.Username)
	input.FirstName = normalize.Name(input.FirstName)
	input.LastName = normalize.Name(input.LastName)
	input.Email = normalize.Email(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		LenBetween(FieldUsername, input.Username, UsernameMinLen, UsernameMaxLen).
		Alnum(FieldUsername, input.Username).
		Required(FieldFirstName, input.FirstName).
		MaxLen(FieldFirstName, input.FirstName, NameMaxLen).
		Required(FieldLastName, input.LastName).
		MaxLen(FieldLastName, input.LastName, NameMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Password(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Prevent storing plain-text passwords. The cost factor is a deliberate
	// CPU-bound delay; it must not be cached or parallelized away.
	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	// A duplicate username or email surfaces as one ambiguous Conflict; any
	// other failure is already classified by the repository.
	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	Token   string
	Session sec.SessionContext
}

/*
Login validates user credentials and establishes a session.

Description: Verifies identity with a constant-time hash comparison and
issues an opaque session token. Unknown-username and wrong-password attempts
return the identical outcome, and the unknown-username path burns a dummy
hash comparison so the two are not distinguishable by timing either.

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Token plus the identity bound to it
  - error: Validation, Unauthorized, or internal failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {

	// Canonicalize the same way registration does, so a padded username
	// resolves to the account it created.
	input.Username = normalize.Name(input.Username)

	// One generic message for missing input: the response never says which
	// field was empty.
	if input.Username == "" || input.Password == "" {
		return nil, apperr.ValidationError("Username and password are required")
	}

	user, err := service.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			service.hasher.BurnCompare(input.Password)
			return nil, apperr.Unauthorized(invalidCredentialsMessage)
		}
		// Transient store outages keep their own classification (generic
		// retry message), everything else is internal.
		return nil, err
	}

	match, err := service.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_verify_failed: %w", err))
	}
	if !match {
		return nil, apperr.Unauthorized(invalidCredentialsMessage)
	}

	session := sec.SessionContext{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
	}

	token, err := service.sessions.Create(ctx, session)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_session_creation_failed: %w", err))
	}

	return &LoginSession{Token: token, Session: session}, nil
}

/*
Logout destroys the user's active session.

Description: Idempotent — logging out with a stale or unknown token is
treated as success.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - err: Destruction failures
*/
func (service *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return service.sessions.Destroy(ctx, token)
}

// # Profile

// Profile is the authenticated user's account view plus workout aggregates.
type Profile struct {
	User          *User `json:"user"`
	TotalWorkouts int   `json:"total_workouts"`
	TotalCalories int   `json:"total_calories"`
}

/*
GetProfile loads the account record and lifetime workout totals.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - *Profile: Account plus aggregates
  - error: apperr.NotFound if the account vanished, or storage errors
*/
func (service *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalWorkouts, totalCalories, err := service.stats.ProfileTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:          user,
		TotalWorkouts: totalWorkouts,
		TotalCalories: totalCalories,
	}, nil
}
