// Copyright (c) 2026 Fittessness. All rights reserved.

package workout_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/workout"
)

// fakeRepository is an in-memory stand-in for the PostgreSQL repository.
type fakeRepository struct {
	entries []*workout.Workout
}

func (r *fakeRepository) Create(_ context.Context, entry *workout.Workout) error {
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeRepository) forUser(userID string) []*workout.Workout {
	matched := []*workout.Workout{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	return matched
}

func page(entries []*workout.Workout, limit, offset int) []*workout.Workout {
	if offset >= len(entries) {
		return []*workout.Workout{}
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}

func (r *fakeRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*workout.Workout, int, error) {
	matched := r.forUser(userID)
	return page(matched, limit, offset), len(matched), nil
}

func (r *fakeRepository) SearchByUser(_ context.Context, userID, keyword string, limit, offset int) ([]*workout.Workout, int, error) {
	matched := []*workout.Workout{}
	for _, entry := range r.forUser(userID) {
		if strings.Contains(strings.ToLower(entry.Exercise), strings.ToLower(keyword)) {
			matched = append(matched, entry)
		}
	}
	return page(matched, limit, offset), len(matched), nil
}

func (r *fakeRepository) RecentByUser(_ context.Context, userID string, limit int) ([]*workout.Workout, error) {
	return page(r.forUser(userID), limit, 0), nil
}

func (r *fakeRepository) TotalsByUser(_ context.Context, userID string) (int, int, int, error) {
	count, calories, duration := 0, 0, 0
	for _, entry := range r.forUser(userID) {
		count++
		calories += entry.Calories
		duration += entry.Duration
	}
	return count, calories, duration, nil
}

func validCreateInput() workout.CreateInput {
	return workout.CreateInput{
		Date:     "2026-08-30",
		Exercise: "Running",
		Duration: 45,
		Calories: 420,
		Notes:    "Morning run along the river",
	}
}

/*
TestService_Create_Success verifies that a valid entry is persisted with a
generated ID and bound to the caller.
*/
func TestService_Create_Success(t *testing.T) {
	repo := &fakeRepository{}
	service := workout.NewService(repo)

	entry, err := service.Create(context.Background(), "user-1", validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "2026-08-30", entry.Date)
	assert.Len(t, repo.entries, 1)
}

/*
TestService_Create_Validation verifies the field rules, including calendar
dates the format regex alone would accept.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*workout.CreateInput)
		field  string
	}{
		{"missing_date", func(in *workout.CreateInput) { in.Date = "" }, workout.FieldDate},
		{"bad_date_format", func(in *workout.CreateInput) { in.Date = "30/08/2026" }, workout.FieldDate},
		{"impossible_date", func(in *workout.CreateInput) { in.Date = "2026-02-30" }, workout.FieldDate},
		{"missing_exercise", func(in *workout.CreateInput) { in.Exercise = "" }, workout.FieldExercise},
		{"exercise_too_long", func(in *workout.CreateInput) { in.Exercise = strings.Repeat("x", 101) }, workout.FieldExercise},
		{"zero_duration", func(in *workout.CreateInput) { in.Duration = 0 }, workout.FieldDuration},
		{"negative_calories", func(in *workout.CreateInput) { in.Calories = -1 }, workout.FieldCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := workout.NewService(repo)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := service.Create(context.Background(), "user-1", input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			found := false
			for _, detail := range ae.Details {
				if detail.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a failure on field %q", tt.field)
			assert.Empty(t, repo.entries, "store must not be touched on validation failure")
		})
	}
}

/*
TestService_Search verifies keyword filtering.
*/
func TestService_Search(t *testing.T) {
	repo := &fakeRepository{}
	service := workout.NewService(repo)

	for _, exercise := range []string{"Running", "Swimming", "Trail running"} {
		input := validCreateInput()
		input.Exercise = exercise
		_, err := service.Create(context.Background(), "user-1", input)
		require.NoError(t, err)
	}

	result, err := service.Search(context.Background(), "user-1", "run", 20, 0)
	require.NoError(t, err)
	assert.True(t, result.Searched)
	assert.Equal(t, "run", result.Keyword)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Workouts, 2)
}

/*
TestService_Search_EmptyKeyword verifies that a blank keyword yields the
untouched search page — no error, no entries, searched flag off.
*/
func TestService_Search_EmptyKeyword(t *testing.T) {
	repo := &fakeRepository{}
	service := workout.NewService(repo)

	_, err := service.Create(context.Background(), "user-1", validCreateInput())
	require.NoError(t, err)

	for name, keyword := range map[string]string{"empty": "", "whitespace": "   "} {
		t.Run(name, func(t *testing.T) {
			result, err := service.Search(context.Background(), "user-1", keyword, 20, 0)
			require.NoError(t, err)

			assert.False(t, result.Searched)
			assert.Equal(t, 0, result.Total)
			assert.Empty(t, result.Workouts)
			assert.NotNil(t, result.Workouts, "must serialize as [], not null")
		})
	}
}

/*
TestService_OwnershipScoping verifies that listings never leak another
member's entries.
*/
func TestService_OwnershipScoping(t *testing.T) {
	repo := &fakeRepository{}
	service := workout.NewService(repo)

	_, err := service.Create(context.Background(), "user-1", validCreateInput())
	require.NoError(t, err)

	other := validCreateInput()
	other.Exercise = "Cycling"
	_, err = service.Create(context.Background(), "user-2", other)
	require.NoError(t, err)

	entries, total, err := service.List(context.Background(), "user-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "Running", entries[0].Exercise)
}

/*
TestService_GetDashboard verifies the landing view assembly: greeting,
recent entries (capped), and lifetime totals.
*/
func TestService_GetDashboard(t *testing.T) {
	repo := &fakeRepository{}
	service := workout.NewService(repo)

	for day := 10; day < 18; day++ {
		input := validCreateInput()
		input.Date = "2026-08-" + itoa2(day)
		_, err := service.Create(context.Background(), "user-1", input)
		require.NoError(t, err)
	}

	dashboard, err := service.GetDashboard(context.Background(), "user-1", "Alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", dashboard.FirstName)
	assert.Len(t, dashboard.Recent, workout.DashboardRecentLimit)
	assert.Equal(t, "2026-08-17", dashboard.Recent[0].Date, "newest entry first")
	assert.Equal(t, 8, dashboard.TotalWorkouts)
	assert.Equal(t, 8*420, dashboard.TotalCalories)
	assert.Equal(t, 8*45, dashboard.TotalDuration)
}

func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
