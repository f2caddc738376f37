// Copyright (c) 2026 Fittessness. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/middleware"
	requestutil "github.com/fittessness/fittessness/internal/platform/request"
	"github.com/fittessness/fittessness/internal/platform/respond"
	"github.com/fittessness/fittessness/internal/platform/sec"
	"github.com/fittessness/fittessness/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler owns the user lifecycle entry points (registration, login,
// logout, profile). It is strictly a transport layer: status codes, cookies,
// and JSON — all policy lives in [Service].
type Handler struct {
	authService *Service
	signer      *sec.CookieSigner
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, signer *sec.CookieSigner) *Handler {
	return &Handler{authService: service, signer: signer}
}

// RegisterRoutes adds the auth route map to the given router.
//
// # Endpoints
//   - POST /registered : Creates a new account (public).
//   - POST /loggedin   : Authenticates and issues the session cookie (public).
//   - GET  /logout     : Destroys the session (guarded).
//   - GET  /profile    : Account view with workout totals (guarded).
//
// The historical page names (/registered, /loggedin) are kept so existing
// clients and bookmarks keep working.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public endpoints
	router.Post("/registered", handler.register)
	router.Post("/loggedin", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)
		r.Get("/logout", handler.logout)
		r.Get("/profile", handler.profile)
	})
}

// # Request Payloads

type registerRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /registered

Description: Decodes input and delegates to the service, which validates all
field rules together before any store access.

Request:
  - Body: registerRequest (Username, First, Last, Email, Password)

Response:
  - 201: User: Created account (no hash)
  - 400: VALIDATION_ERROR: All failing rules, reported together
  - 409: CONFLICT: "Username or email already exists" (field never named)
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and establishes a session.

POST /loggedin

Description: Verifies credentials, issues an opaque session token, signs it
into the session cookie, and redirects to the dashboard. Every failure path
carries the same generic message.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 302: Redirect to /dashboard with the session cookie set
  - 400: VALIDATION_ERROR: "Username and password are required"
  - 401: UNAUTHORIZED: "Invalid username or password"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	login, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	maxAge := int(handler.authService.sessions.IdleTimeout().Seconds())
	middleware.SetSessionCookie(writer, handler.signer, login.Token, maxAge)

	respond.Redirect(writer, request, "/dashboard")
}

/*
Logout terminates the current user session.

GET /logout

Description: Destroys the server-side session (idempotent), clears the
cookie, and redirects home.

Response:
  - 302: Redirect to /
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if token, err := handler.signer.Verify(cookie.Value); err == nil {
			_ = handler.authService.Logout(request.Context(), token)
		}
	}

	middleware.ClearSessionCookie(writer)
	respond.Redirect(writer, request, "/")
}

/*
Profile returns the authenticated user's account view.

GET /profile

Response:
  - 200: Profile: Account fields plus lifetime workout totals
  - 302: Redirect to /login when no valid session is present
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.authService.GetProfile(request.Context(), session.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
