// Copyright (c) 2026 Fittessness. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fittessness/fittessness/internal/platform/ctxutil"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Session verifies that a session identity can be stored in context.
*/
func TestContext_Session(t *testing.T) {
	ctx := context.Background()
	session := &sec.SessionContext{
		UserID:    "user-123",
		Username:  "alice",
		FirstName: "Alice",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetSession(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithSession(ctx, session)
	retrieved := ctxutil.GetSession(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, "Alice", retrieved.FirstName)
}
