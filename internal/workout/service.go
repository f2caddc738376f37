// Copyright (c) 2026 Fittessness. All rights reserved.

package workout

import (
	"context"
	"time"

	"github.com/fittessness/fittessness/internal/platform/validate"
	"github.com/fittessness/fittessness/pkg/normalize"
	"github.com/fittessness/fittessness/pkg/uuid"
)

// Service implements the workout-log use cases.
type Service struct {
	workouts Repository
}

// NewService constructs a new workout [Service] with its repository.
func NewService(workouts Repository) *Service {
	return &Service{workouts: workouts}
}

// CreateInput holds the data required to log a workout session.
type CreateInput struct {
	Date     string
	Exercise string
	Duration int
	Calories int
	Notes    string
}

/*
Create validates and persists a new workout entry for the given user.

Description: All field rules are checked together before any store access.
The entry is always bound to the caller's user ID — never to anything in
the payload.

Parameters:
  - ctx: context.Context
  - userID: string (The authenticated owner)
  - input: CreateInput

Returns:
  - *Workout: Created entry
  - error: Validation or storage errors
*/
func (service *Service) Create(ctx context.Context, userID string, input CreateInput) (*Workout, error) {
	input.Exercise = normalize.Name(input.Exercise)
	input.Notes = normalize.Name(input.Notes)

	validator := &validate.Validator{}
	validator.Required(FieldDate, input.Date).
		Date(FieldDate, input.Date).
		Custom(FieldDate, input.Date != "" && !parsableDate(input.Date), "Must be a real calendar date").
		Required(FieldExercise, input.Exercise).
		MaxLen(FieldExercise, input.Exercise, ExerciseMaxLen).
		IntMin(FieldDuration, input.Duration, 1).
		IntMin(FieldCalories, input.Calories, 0).
		MaxLen(FieldNotes, input.Notes, NotesMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      input.Date,
		Exercise:  input.Exercise,
		Duration:  input.Duration,
		Calories:  input.Calories,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	if err := service.workouts.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
List returns one page of the user's workout history, newest date first.

Parameters:
  - ctx: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Workout: The requested page
  - int: Total count for pagination metadata
  - error: Storage errors
*/
func (service *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Workout, int, error) {
	return service.workouts.ListByUser(ctx, userID, limit, offset)
}

// SearchResult is the search page payload. Searched is false when no keyword
// was submitted; the page then renders empty rather than erroring.
type SearchResult struct {
	Searched bool       `json:"searched"`
	Keyword  string     `json:"keyword"`
	Workouts []*Workout `json:"workouts"`
	Total    int        `json:"total"`
}

/*
Search filters the user's history by an exercise keyword.

Description: Case-insensitive substring match on the exercise name, scoped
to the caller. An empty keyword is not an error: the result simply carries
Searched=false and no entries, mirroring an untouched search form.

Parameters:
  - ctx: context.Context
  - userID: string
  - keyword: string
  - limit: int
  - offset: int

Returns:
  - *SearchResult: Matching page, or the blank not-searched page
  - error: Storage errors
*/
func (service *Service) Search(ctx context.Context, userID, keyword string, limit, offset int) (*SearchResult, error) {
	keyword = normalize.Name(keyword)
	if keyword == "" {
		return &SearchResult{Workouts: []*Workout{}}, nil
	}

	workouts, total, err := service.workouts.SearchByUser(ctx, userID, keyword, limit, offset)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Searched: true,
		Keyword:  keyword,
		Workouts: workouts,
		Total:    total,
	}, nil
}

// Dashboard is the landing view for an authenticated member.
type Dashboard struct {
	FirstName     string     `json:"first_name"`
	Recent        []*Workout `json:"recent_workouts"`
	TotalWorkouts int        `json:"total_workouts"`
	TotalCalories int        `json:"total_calories"`
	TotalDuration int        `json:"total_duration"`
}

/*
GetDashboard assembles the member's landing view: greeting name, the latest
entries, and lifetime totals (count, calories, minutes trained).

Parameters:
  - ctx: context.Context
  - userID: string
  - firstName: string (Display name from the session)

Returns:
  - *Dashboard: Assembled view
  - error: Storage errors
*/
func (service *Service) GetDashboard(ctx context.Context, userID, firstName string) (*Dashboard, error) {
	recent, err := service.workouts.RecentByUser(ctx, userID, DashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	totalWorkouts, totalCalories, totalDuration, err := service.workouts.TotalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		FirstName:     firstName,
		Recent:        recent,
		TotalWorkouts: totalWorkouts,
		TotalCalories: totalCalories,
		TotalDuration: totalDuration,
	}, nil
}

// ProfileTotals returns the lifetime workout count and calorie sum for a
// user. It backs the aggregates on the account profile page.
func (service *Service) ProfileTotals(ctx context.Context, userID string) (int, int, error) {
	totalWorkouts, totalCalories, _, err := service.workouts.TotalsByUser(ctx, userID)
	return totalWorkouts, totalCalories, err
}

// parsableDate reports whether the value is a real calendar date, catching
// shapes the format regex accepts but the calendar does not (2026-02-30).
func parsableDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
