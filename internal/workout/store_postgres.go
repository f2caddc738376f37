// Copyright (c) 2026 Fittessness. All rights reserved.

package workout

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fittessness/fittessness/internal/platform/dberr"
)

// # Workout Repository
//
// All inputs — including the search keyword — are passed as bound parameters
// to pgx, never concatenated into the query text.

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new workout row. The date column is a DATE; the ISO
// string is cast on the way in so it round-trips byte-for-byte on the way out.
func (repository *PostgresRepository) Create(ctx context.Context, workout *Workout) error {
	const query = `
		INSERT INTO workouts (
			id, user_id, date, exercise, duration, calories, notes, created_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)`

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		workout.ID,
		workout.UserID,
		workout.Date,
		workout.Exercise,
		workout.Duration,
		workout.Calories,
		workout.Notes,
		workout.CreatedAt,
	)

	return dberr.Wrap(err, "Workout", "")
}

// ListByUser returns one page of the user's history plus the total count.
func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Workout, int, error) {
	const countQuery = `SELECT count(*) FROM workouts WHERE user_id = $1`
	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), exercise, duration, calories, notes, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Workout", "")
	}

	rows, err := repository.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Workout", "")
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

// SearchByUser filters the user's history by a case-insensitive exercise
// substring. The keyword is a bound ILIKE parameter with its wildcard
// metacharacters escaped, so it always means a literal substring.
func (repository *PostgresRepository) SearchByUser(ctx context.Context, userID, keyword string, limit, offset int) ([]*Workout, int, error) {
	const countQuery = `
		SELECT count(*) FROM workouts
		WHERE user_id = $1 AND exercise ILIKE '%' || $2 || '%' ESCAPE '\'`
	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), exercise, duration, calories, notes, created_at
		FROM workouts
		WHERE user_id = $1 AND exercise ILIKE '%' || $2 || '%' ESCAPE '\'
		ORDER BY date DESC, created_at DESC
		LIMIT $3 OFFSET $4`

	escaped := escapeLike(keyword)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, userID, escaped).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Workout", "")
	}

	rows, err := repository.pool.Query(ctx, query, userID, escaped, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Workout", "")
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

// RecentByUser returns the user's latest entries for the dashboard.
func (repository *PostgresRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]*Workout, error) {
	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), exercise, duration, calories, notes, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2`

	rows, err := repository.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Workout", "")
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// TotalsByUser aggregates the lifetime workout count, calorie sum, and
// minutes-trained sum. COALESCE keeps the sums at zero for users with no
// entries yet.
func (repository *PostgresRepository) TotalsByUser(ctx context.Context, userID string) (int, int, int, error) {
	const query = `
		SELECT count(*), COALESCE(sum(calories), 0), COALESCE(sum(duration), 0)
		FROM workouts
		WHERE user_id = $1`

	var totalWorkouts, totalCalories, totalDuration int
	err := repository.pool.QueryRow(ctx, query, userID).Scan(&totalWorkouts, &totalCalories, &totalDuration)
	if err != nil {
		return 0, 0, 0, dberr.Wrap(err, "Workout", "")
	}

	return totalWorkouts, totalCalories, totalDuration, nil
}

// scanWorkouts hydrates every row into an entity. Always returns a non-nil
// slice so empty results serialize as [] rather than null.
func scanWorkouts(rows pgx.Rows) ([]*Workout, error) {
	workouts := []*Workout{}
	for rows.Next() {
		w := &Workout{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.Exercise, &w.Duration, &w.Calories, &w.Notes, &w.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Workout", "")
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Workout", "")
	}

	return workouts, nil
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
