// Copyright (c) 2026 Fittessness. All rights reserved.

package middleware

import (
	"context"
	"net/http"

	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/ctxutil"
	"github.com/fittessness/fittessness/internal/platform/sec"
)

// SessionValidator defines the interface the auth guard needs to resolve a
// session token into an identity.
//
// # Why an interface?
//
// Defining SessionValidator here decouples the middleware from the session
// manager implementation, allowing us to easily inject fakes during unit
// testing. The guard only ever queries it — all session mutation (create,
// destroy, expiry) stays inside the session manager.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*sec.SessionContext, error)
}

// LoadSession resolves the signed session cookie into a [sec.SessionContext]
// and attaches it to the request context.
//
// # Flow
//  1. No session cookie: request proceeds as anonymous.
//  2. Cookie present: verify the HMAC signature over the transport value.
//  3. Validate the embedded token against the session manager.
//  4. On success, inject the session into the request context.
//  5. On any failure, clear the stale cookie and proceed as anonymous —
//     the Deny decision belongs to [RequireLogin].
func LoadSession(validator SessionValidator, signer *sec.CookieSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			token, err := signer.Verify(cookie.Value)
			if err != nil {
				ClearSessionCookie(writer)
				next.ServeHTTP(writer, request)
				return
			}

			session, err := validator.Validate(request.Context(), token)
			if err != nil {
				ClearSessionCookie(writer)
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), session)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireLogin blocks requests that do not carry a valid session.
//
// # Usage
//
// Must be registered in the router AFTER [LoadSession].
//
// # Flow
//  1. Check if [*sec.SessionContext] exists in context.
//  2. If missing, redirect to the login entry point (the protected-route
//     contract: Deny never serves protected content, it redirects).
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			http.Redirect(writer, request, constants.LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// SetSessionCookie writes the signed session token to the client.
//
// The cookie is HttpOnly (no script access) and SameSite=Lax. MaxAge matches
// the server-side idle timeout so well-behaved clients drop it in step with
// the store.
func SetSessionCookie(writer http.ResponseWriter, signer *sec.CookieSigner, token string, maxAgeSeconds int) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    signer.Sign(token),
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie instructs the client to drop the session cookie.
func ClearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
