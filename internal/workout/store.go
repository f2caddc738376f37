// Copyright (c) 2026 Fittessness. All rights reserved.

package workout

import "context"

// Repository defines the persistence contract for workout entries.
//
// Every method takes the owning user's ID and must never return another
// user's rows: ownership scoping happens in the query, not in the caller.
type Repository interface {
	/*
		Create persists a new workout entry.

		Parameters:
		  - ctx: context.Context
		  - workout: *Workout (Entity to persist; ID and UserID already set)

		Returns:
		  - error: Storage failures
	*/
	Create(ctx context.Context, workout *Workout) error

	/*
		ListByUser returns a page of the user's workouts, newest date first.

		Parameters:
		  - ctx: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Workout: The requested page (empty slice when none)
		  - int: Total number of the user's workouts
		  - error: Storage failures
	*/
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Workout, int, error)

	/*
		SearchByUser returns the user's workouts whose exercise matches the
		keyword (case-insensitive substring), newest date first.

		Parameters:
		  - ctx: context.Context
		  - userID: string
		  - keyword: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Workout: Matching page (empty slice when none)
		  - int: Total number of matches
		  - error: Storage failures
	*/
	SearchByUser(ctx context.Context, userID, keyword string, limit, offset int) ([]*Workout, int, error)

	/*
		RecentByUser returns the user's latest entries for the dashboard.

		Parameters:
		  - ctx: context.Context
		  - userID: string
		  - limit: int

		Returns:
		  - []*Workout: Up to limit entries, newest date first
		  - error: Storage failures
	*/
	RecentByUser(ctx context.Context, userID string, limit int) ([]*Workout, error)

	/*
		TotalsByUser returns the user's lifetime workout count, calorie sum,
		and minutes-trained sum.

		Parameters:
		  - ctx: context.Context
		  - userID: string

		Returns:
		  - int: Total workout count
		  - int: Total calories burned
		  - int: Total duration in minutes
		  - error: Storage failures
	*/
	TotalsByUser(ctx context.Context, userID string) (int, int, int, error)
}
