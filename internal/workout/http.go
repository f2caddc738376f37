// Copyright (c) 2026 Fittessness. All rights reserved.

package workout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittessness/fittessness/internal/platform/middleware"
	requestutil "github.com/fittessness/fittessness/internal/platform/request"
	"github.com/fittessness/fittessness/internal/platform/respond"
	"github.com/fittessness/fittessness/internal/platform/validate"
	"github.com/fittessness/fittessness/pkg/pagination"
)

// Handler implements the workout-log HTTP endpoints.
type Handler struct {
	workoutService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{workoutService: service}
}

// RegisterRoutes adds the workout route map to the given router. Every
// endpoint requires an authenticated session.
//
// # Endpoints
//   - GET  /dashboard       : Landing view with recent entries and totals.
//   - GET  /add-workout     : Entry form page for logging a session.
//   - POST /workout-added   : Logs a new workout session.
//   - GET  /list-workouts   : Paginated history, newest date first.
//   - GET  /search-workouts : History filtered by ?keyword=.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Get("/dashboard", handler.dashboard)
		r.Get("/add-workout", handler.addWorkoutPage)
		r.Post("/workout-added", handler.create)
		r.Get("/list-workouts", handler.list)
		r.Get("/search-workouts", handler.search)
	})
}

type createRequest struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
	Notes    string `json:"notes"`
}

/*
Dashboard returns the member's landing view.

GET /dashboard

Response:
  - 200: Dashboard: First name, recent entries, lifetime totals
  - 302: Redirect to /login when no valid session is present
*/
func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dashboard, err := handler.workoutService.GetDashboard(request.Context(), session.UserID, session.FirstName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}

/*
AddWorkoutPage returns the entry form page document.

GET /add-workout

Description: Documents the fields the form submits to POST /workout-added,
the JSON counterpart of the old form page.

Response:
  - 200: Page document
  - 302: Redirect to /login when no valid session is present
*/
func (handler *Handler) addWorkoutPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"page":   "add-workout",
		"submit": "/workout-added",
		"fields": []string{FieldDate, FieldExercise, FieldDuration, FieldCalories, FieldNotes},
	})
}

/*
Create logs a new workout session for the authenticated member.

POST /workout-added

Request:
  - Body: createRequest (Date, Exercise, Duration, Calories, Notes)

Response:
  - 201: Workout: Created entry
  - 400: VALIDATION_ERROR: All failing rules, reported together
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entry, err := handler.workoutService.Create(request.Context(), userID, CreateInput{
		Date:     input.Date,
		Exercise: input.Exercise,
		Duration: input.Duration,
		Calories: input.Calories,
		Notes:    input.Notes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
List returns the member's paginated workout history.

GET /list-workouts?page=&limit=

Response:
  - 200: []Workout with pagination metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	workouts, total, err := handler.workoutService.List(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, workouts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Search filters the member's history by exercise keyword.

GET /search-workouts?keyword=&page=&limit=

Description: A missing or blank keyword is the untouched search form, not an
error — the page renders with searched=false and no entries.

Response:
  - 200: SearchResult (searched flag, keyword, matching entries)
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	keyword := request.URL.Query().Get(FieldKeyword)

	result, err := handler.workoutService.Search(request.Context(), userID, keyword, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
