// Copyright (c) 2026 Fittessness. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittessness/fittessness/internal/auth"
	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

func testIdentity() sec.SessionContext {
	return sec.SessionContext{UserID: "user-1", Username: "alice99", FirstName: "Alice"}
}

/*
TestSessionManager_CreateValidate verifies the basic issue/resolve cycle and
that every issued token is distinct.
*/
func TestSessionManager_CreateValidate(t *testing.T) {
	store := newFakeSessionStore()
	manager := auth.NewSessionManager(store)

	first, err := manager.Create(context.Background(), testIdentity())
	require.NoError(t, err)

	second, err := manager.Create(context.Background(), testIdentity())
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "tokens must be unique per session")

	session, err := manager.Validate(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "Alice", session.FirstName)
}

/*
TestSessionManager_IdleExpiry verifies that a session expires after the idle
window and that activity slides the window forward.
*/
func TestSessionManager_IdleExpiry(t *testing.T) {
	store := newFakeSessionStore()
	manager := auth.NewSessionManager(store)

	token, err := manager.Create(context.Background(), testIdentity())
	require.NoError(t, err)

	// 50 minutes idle: still inside the 1h window, and the validation
	// restarts it.
	store.advance(50 * time.Minute)
	_, err = manager.Validate(context.Background(), token)
	require.NoError(t, err)

	// Another 50 minutes: only valid because the previous access slid the
	// window. Without sliding this would be 100 minutes of idle time.
	store.advance(50 * time.Minute)
	_, err = manager.Validate(context.Background(), token)
	require.NoError(t, err)

	// 61 minutes with no activity: expired.
	store.advance(61 * time.Minute)
	_, err = manager.Validate(context.Background(), token)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Invalid or expired session", ae.Message)
}

/*
TestSessionManager_DestroyedAndUnknownLookAlike verifies that destroyed,
expired, and never-issued tokens all fail validation identically.
*/
func TestSessionManager_DestroyedAndUnknownLookAlike(t *testing.T) {
	store := newFakeSessionStore()
	manager := auth.NewSessionManager(store)

	token, err := manager.Create(context.Background(), testIdentity())
	require.NoError(t, err)
	require.NoError(t, manager.Destroy(context.Background(), token))

	destroyedErr := apperr.As(validateErr(t, manager, token))
	unknownErr := apperr.As(validateErr(t, manager, "never-issued"))

	require.NotNil(t, destroyedErr)
	require.NotNil(t, unknownErr)
	assert.Equal(t, destroyedErr.Code, unknownErr.Code)
	assert.Equal(t, destroyedErr.Message, unknownErr.Message)
}

func validateErr(t *testing.T, manager *auth.SessionManager, token string) error {
	t.Helper()
	_, err := manager.Validate(context.Background(), token)
	require.Error(t, err)
	return err
}
