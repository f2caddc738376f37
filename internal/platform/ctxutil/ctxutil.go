// Copyright (c) 2026 Fittessness. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/fittessness/fittessness/internal/platform/ctxkey"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithSession returns a new context with the validated session attached.
func WithSession(ctx context.Context, session *sec.SessionContext) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, session)
}

// GetSession retrieves the [*sec.SessionContext] from the [context.Context].
// Returns nil for anonymous requests.
func GetSession(ctx context.Context) *sec.SessionContext {
	session, ok := ctx.Value(ctxkey.KeySession).(*sec.SessionContext)
	if !ok {
		return nil
	}
	return session
}
