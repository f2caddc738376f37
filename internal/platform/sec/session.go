// Copyright (c) 2026 Fittessness. All rights reserved.

package sec

// SessionContext is the authenticated identity attached to a request once its
// session token has been validated.
//
// # Scope
//
// It deliberately carries only the user id plus the display fields needed by
// downstream handlers (no email, no password hash), so the session store never
// holds anything sensitive and pages render without a user re-fetch.
type SessionContext struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}
