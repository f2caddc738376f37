// Copyright (c) 2026 Fittessness. All rights reserved.

/*
Package auth implements the user identity and session management core.

It defines the User entity, the credential verification flow, and the session
lifecycle (create, validate with sliding idle-timeout, destroy).

# Architecture

  - Service: Orchestrates registration and login (validation, hashing, store).
  - SessionManager: Owns live session state backed by a [SessionStore].
  - Repositories: Abstracted interfaces for Postgres (users) and Redis (sessions).

No component outside this package and [sec.PasswordHasher] ever touches a
plain-text password.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of Fittessness.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Form field names for validation and identity mapping in the auth domain.
const (
	FieldUsername  = "username"
	FieldFirstName = "first"
	FieldLastName  = "last"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldMessage   = "message"
)
