// Copyright (c) 2026 Fittessness. All rights reserved.

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fittessness/fittessness/internal/api"
	"github.com/fittessness/fittessness/internal/auth"
	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/config"
	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/sec"
	"github.com/fittessness/fittessness/internal/workout"
)

// # In-Memory Fakes
//
// The end-to-end tests run the real router, middleware chain, handlers, and
// services over in-memory stores, so the full register → login → protected →
// logout journey is exercised without external dependencies.

type memoryUserRepository struct {
	users map[string]*auth.User
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperr.Conflict("Username or email already exists")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

type memorySessionStore struct {
	sessions map[string]*sec.SessionContext
}

func (s *memorySessionStore) Set(_ context.Context, token string, session *sec.SessionContext, _ time.Duration) error {
	clone := *session
	s.sessions[token] = &clone
	return nil
}

func (s *memorySessionStore) GetRefresh(_ context.Context, token string, _ time.Duration) (*sec.SessionContext, error) {
	if session, ok := s.sessions[token]; ok {
		clone := *session
		return &clone, nil
	}
	return nil, apperr.NotFound("Session")
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type memoryWorkoutRepository struct {
	entries []*workout.Workout
}

func (r *memoryWorkoutRepository) Create(_ context.Context, entry *workout.Workout) error {
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *memoryWorkoutRepository) forUser(userID string) []*workout.Workout {
	matched := []*workout.Workout{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (r *memoryWorkoutRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*workout.Workout, int, error) {
	matched := r.forUser(userID)
	if offset >= len(matched) {
		return []*workout.Workout{}, len(matched), nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], len(matched), nil
}

func (r *memoryWorkoutRepository) SearchByUser(ctx context.Context, userID, _ string, limit, offset int) ([]*workout.Workout, int, error) {
	return r.ListByUser(ctx, userID, limit, offset)
}

func (r *memoryWorkoutRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]*workout.Workout, error) {
	entries, _, err := r.ListByUser(ctx, userID, limit, 0)
	return entries, err
}

func (r *memoryWorkoutRepository) TotalsByUser(_ context.Context, userID string) (int, int, int, error) {
	count, calories, duration := 0, 0, 0
	for _, entry := range r.forUser(userID) {
		count++
		calories += entry.Calories
		duration += entry.Duration
	}
	return count, calories, duration, nil
}

// newTestServer assembles the full application over the in-memory fakes.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "8000", Environment: "test"}

	hasher := sec.NewPasswordHasher(bcrypt.MinCost)
	signer := sec.NewCookieSigner("test-secret")

	workoutService := workout.NewService(&memoryWorkoutRepository{})
	workoutHandler := workout.NewHandler(workoutService)

	sessionManager := auth.NewSessionManager(&memorySessionStore{sessions: map[string]*sec.SessionContext{}})
	authService := auth.NewService(&memoryUserRepository{users: map[string]*auth.User{}}, sessionManager, hasher, workoutService)
	authHandler := auth.NewHandler(authService, signer)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, log, sessionManager, signer, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Workout:   workoutHandler,
	})

	return server.Handler()
}

func postJSON(t *testing.T, handler http.Handler, path string, payload map[string]any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func get(t *testing.T, handler http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

var registerPayload = map[string]any{
	"username": "alice99",
	"first":    "Alice",
	"last":     "Smith",
	"email":    "alice@example.com",
	"password": "Str0ng!pass",
}

/*
TestServer_FullJourney walks the complete member lifecycle through the real
router: register, login, use every protected page, log out, and get denied.
*/
func TestServer_FullJourney(t *testing.T) {
	handler := newTestServer(t)

	// 1. Register
	recorder := postJSON(t, handler, "/registered", registerPayload, nil)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	// 2. Login: redirect to the dashboard with the session cookie set
	recorder = postJSON(t, handler, "/loggedin", map[string]any{
		"username": "alice99",
		"password": "Str0ng!pass",
	}, nil)
	require.Equal(t, http.StatusFound, recorder.Code, recorder.Body.String())
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))

	cookie := sessionCookie(t, recorder)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	// 3. Dashboard greets the member by first name
	recorder = get(t, handler, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"first_name":"Alice"`)

	// 4. The entry form page, then the submission itself
	recorder = get(t, handler, "/add-workout", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"submit":"/workout-added"`)

	recorder = postJSON(t, handler, "/workout-added", map[string]any{
		"date":     "2026-08-30",
		"exercise": "Running",
		"duration": 45,
		"calories": 420,
		"notes":    "Morning run",
	}, cookie)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	// 5. The dashboard totals now include the session's minutes
	recorder = get(t, handler, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total_duration":45`)

	// 6. History and search both show it
	recorder = get(t, handler, "/list-workouts", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":1`)

	recorder = get(t, handler, "/search-workouts?keyword=run", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"searched":true`)
	assert.Contains(t, recorder.Body.String(), "Running")

	// An untouched search form is a normal page, not an error
	recorder = get(t, handler, "/search-workouts", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"searched":false`)
	assert.Contains(t, recorder.Body.String(), `"workouts":[]`)

	// 7. Profile carries the aggregates
	recorder = get(t, handler, "/profile", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total_workouts":1`)
	assert.Contains(t, recorder.Body.String(), `"total_calories":420`)

	// 8. Logout clears the cookie and redirects home
	recorder = get(t, handler, "/logout", cookie)
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
	assert.Equal(t, -1, sessionCookie(t, recorder).MaxAge)

	// 9. The old cookie no longer opens protected pages
	recorder = get(t, handler, "/dashboard", cookie)
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constants.LoginPath, recorder.Header().Get("Location"))
}

/*
TestServer_ProtectedRoutesRedirectAnonymous verifies the guard on every
protected page.
*/
func TestServer_ProtectedRoutesRedirectAnonymous(t *testing.T) {
	handler := newTestServer(t)

	for _, path := range []string{"/dashboard", "/add-workout", "/list-workouts", "/search-workouts?keyword=x", "/profile", "/logout"} {
		recorder := get(t, handler, path, nil)
		assert.Equal(t, http.StatusFound, recorder.Code, path)
		assert.Equal(t, constants.LoginPath, recorder.Header().Get("Location"), path)
	}
}

/*
TestServer_PublicPages verifies the unauthenticated entry points.
*/
func TestServer_PublicPages(t *testing.T) {
	handler := newTestServer(t)

	for _, path := range []string{"/", "/about", "/register", "/login", "/health"} {
		recorder := get(t, handler, path, nil)
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}

	recorder := get(t, handler, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestServer_LoginFailureUniformity verifies at the HTTP level that unknown
usernames and wrong passwords produce byte-identical error bodies.
*/
func TestServer_LoginFailureUniformity(t *testing.T) {
	handler := newTestServer(t)

	recorder := postJSON(t, handler, "/registered", registerPayload, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	unknown := postJSON(t, handler, "/loggedin", map[string]any{"username": "nobody", "password": "Str0ng!pass"}, nil)
	wrong := postJSON(t, handler, "/loggedin", map[string]any{"username": "alice99", "password": "Wr0ng!pass"}, nil)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

/*
TestServer_DuplicateRegistration verifies the ambiguous Conflict response.
*/
func TestServer_DuplicateRegistration(t *testing.T) {
	handler := newTestServer(t)

	recorder := postJSON(t, handler, "/registered", registerPayload, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, handler, "/registered", registerPayload, nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Username or email already exists")
	assert.NotContains(t, recorder.Body.String(), "field")
}
