// Copyright (c) 2026 Fittessness. All rights reserved.

/*
Package workout implements the training-log domain of Fittessness.

Members record individual workout sessions (exercise, date, duration,
calories, free-form notes) and browse them back through the dashboard,
the paginated history list, and keyword search. Every operation in this
package is scoped to the authenticated owner: a workout is only ever
visible to the user who logged it.

# Architecture

The package follows the store → service → handler layering used across
the codebase:

  - Repository: PostgreSQL persistence (store.go, store_postgres.go)
  - Service: validation and use-case orchestration (service.go)
  - Handler: HTTP endpoints behind the session guard (http.go)
*/
package workout

import "time"

// Field identifiers used in validation details and JSON payloads.
const (
	FieldDate     = "date"
	FieldExercise = "exercise"
	FieldDuration = "duration"
	FieldCalories = "calories"
	FieldNotes    = "notes"
	FieldKeyword  = "keyword"
)

// Input limits for a workout entry.
const (
	ExerciseMaxLen = 100
	NotesMaxLen    = 500

	// DashboardRecentLimit is how many latest entries the dashboard shows.
	DashboardRecentLimit = 5
)

// Workout represents a single logged training session.
//
// Date is kept as an ISO calendar date (YYYY-MM-DD) rather than a timestamp:
// a workout belongs to a day, not an instant, and the stored value must
// round-trip unchanged through the API.
type Workout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      string    `json:"date"`
	Exercise  string    `json:"exercise"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
