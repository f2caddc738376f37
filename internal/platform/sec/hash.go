// Copyright (c) 2026 Fittessness. All rights reserved.

// Package sec provides cryptographic primitives for credential and session
// handling.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, session
// token generation, cookie signing) from the domain logic. It acts as an
// Infrastructure service injected into the application layer.
package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher derives and verifies salted one-way password hashes using
// bcrypt with a configurable work factor.
//
// # Properties
//
//   - Every call to Hash embeds a fresh random salt, so hashing the same
//     password twice yields two different strings.
//   - The output is self-describing ($2a$cost$salt+digest), so Verify needs
//     no extra state.
//   - Verify compares digests in constant time inside bcrypt.
//
// The plaintext is never retained past the call.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to the default work
// factor, which lands in the tens-of-milliseconds range on current hardware.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted hash from the plain-text password.
// It fails only on internal/entropy errors, never on the password content.
func (hasher *PasswordHasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify recomputes the hash of the candidate password with the salt embedded
// in existingHash and compares digests.
//
// # Returns
//   - (true, nil) on a match.
//   - (false, nil) on a clean mismatch.
//   - (false, err) when existingHash is corrupt or not a bcrypt string —
//     callers treat that as an internal error, not a failed login.
func (hasher *PasswordHasher) Verify(plainTextPassword, existingHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("sec: malformed password hash: %w", err)
}

// dummyHash is a valid bcrypt hash of an unguessable throwaway value. Login
// burns a compare against it when the username does not exist, so the
// unknown-user path costs the same as a wrong-password path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// BurnCompare performs a throwaway bcrypt comparison to equalize timing
// between "user not found" and "wrong password" login outcomes.
func (hasher *PasswordHasher) BurnCompare(plainTextPassword string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plainTextPassword))
}
