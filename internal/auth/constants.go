// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import "time"

// # Session Constraints

const (
	// SessionIdleTimeout is the inactivity window after which a session is
	// invalid. Expiration is sliding: every successful validation counts as
	// activity and restarts the window.
	SessionIdleTimeout = 1 * time.Hour

	// SessionTokenLength is the byte length of the random session token.
	SessionTokenLength = 32
)

// # Field Constraints

const (
	// UsernameMinLen / UsernameMaxLen bound the alphanumeric username.
	UsernameMinLen = 3
	UsernameMaxLen = 50

	// NameMaxLen bounds the free-text first/last name fields.
	NameMaxLen = 50
)

// invalidCredentialsMessage is the single user-facing message for every login
// failure. Unknown username and wrong password are deliberately
// indistinguishable.
const invalidCredentialsMessage = "Invalid username or password"

// duplicateIdentityMessage never says whether the username or the email
// collided, so registration responses cannot be used to probe for accounts.
const duplicateIdentityMessage = "Username or email already exists"
