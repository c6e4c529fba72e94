package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert inserts the workout or, if a record with the same fitbit log id
// exists already, refreshes it. Safe to call repeatedly for overlapping
// sync windows.
func (r *Repo) Upsert(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("fitbit_log_id", workout.FitbitLogID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO fitbit_workout (
			user_id, fitbit_log_id, start_time, duration_ms, activity_name,
			category, is_training, calories, steps, distance, raw_json, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (fitbit_log_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			start_time = EXCLUDED.start_time,
			duration_ms = EXCLUDED.duration_ms,
			activity_name = EXCLUDED.activity_name,
			category = EXCLUDED.category,
			is_training = EXCLUDED.is_training,
			calories = EXCLUDED.calories,
			steps = EXCLUDED.steps,
			distance = EXCLUDED.distance,
			raw_json = EXCLUDED.raw_json`,
		workout.UserID, workout.FitbitLogID, workout.StartTime, workout.DurationMs,
		workout.ActivityName, workout.Category, workout.IsTraining,
		workout.Calories, workout.Steps, workout.Distance, workout.RawJSON, workout.CreatedAt,
	)
	return err
}

// LatestByCategories returns the most recent workout among the given
// categories, or nil when no such workout was ever recorded.
func (r *Repo) LatestByCategories(ctx context.Context, categories []Category) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latestByCategories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, fitbit_log_id, start_time, duration_ms, activity_name,
			category, COALESCE(is_training, FALSE), calories, steps, distance, created_at
		FROM fitbit_workout
		WHERE category = ANY($1)
		ORDER BY start_time DESC
		LIMIT 1`,
		categoriesToStrings(categories),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// CountTrainingSince counts workouts that qualify as training, started at
// or after the given instant.
func (r *Repo) CountTrainingSince(ctx context.Context, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countTrainingSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM fitbit_workout
		WHERE start_time >= $1
			AND (is_training OR category = ANY($2))`,
		since, categoriesToStrings(TrainingCategories),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query row: %w", err)
	}
	return count, nil
}

// CountByCategorySince counts workouts of one category started at or after
// the given instant.
func (r *Repo) CountByCategorySince(ctx context.Context, category Category, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countByCategorySince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", string(category)))

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM fitbit_workout
		WHERE start_time >= $1 AND category = $2`,
		since, string(category),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query row: %w", err)
	}
	return count, nil
}

// CategoryCounts returns the number of stored workouts per category.
func (r *Repo) CategoryCounts(ctx context.Context) (_ map[Category]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.categoryCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(category, ''), COUNT(*) FROM fitbit_workout
		GROUP BY COALESCE(category, '')`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	counts := map[Category]int{
		CategoryStrength: 0,
		CategoryCardio:   0,
		CategoryWalk:     0,
		CategoryOther:    0,
	}
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if category == "" {
			// not yet classified, not a category of its own
			continue
		}
		counts[Category(category)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// List returns a page of workouts, most recent first, together with the
// total count.
func (r *Repo) List(ctx context.Context, page, size int) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 {
		return nil, 0, fmt.Errorf("page must be greater than 0")
	}
	if size < 1 {
		return nil, 0, fmt.Errorf("size must be greater than 0")
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM fitbit_workout`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	limit := size
	offset := (page - 1) * size

	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, fitbit_log_id, start_time, duration_ms, activity_name,
			COALESCE(category, ''), COALESCE(is_training, FALSE),
			calories, steps, distance, created_at
		FROM fitbit_workout
		ORDER BY start_time DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, 0, err
	}
	return found, total, nil
}

// ListUnclassified returns workouts still missing a derived category,
// oldest first, up to the given batch size. Used by the classification
// backfill.
func (r *Repo) ListUnclassified(ctx context.Context, batchSize int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listUnclassified")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, fitbit_log_id, start_time, duration_ms, activity_name,
			COALESCE(category, ''), COALESCE(is_training, FALSE),
			calories, steps, distance, created_at
		FROM fitbit_workout
		WHERE category IS NULL OR is_training IS NULL
		ORDER BY created_at ASC
		LIMIT $1`,
		batchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2workouts(rows)
}

// UpdateClassification sets the derived category and training flag of one
// workout record.
func (r *Repo) UpdateClassification(ctx context.Context, id int, category Category, isTraining bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateClassification")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE fitbit_workout SET category = $1, is_training = $2 WHERE id = $3`,
		string(category), isTraining, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var found []Workout
	for rows.Next() {
		var workout Workout
		var category string
		if err := rows.Scan(
			&workout.ID, &workout.UserID, &workout.FitbitLogID, &workout.StartTime,
			&workout.DurationMs, &workout.ActivityName, &category, &workout.IsTraining,
			&workout.Calories, &workout.Steps, &workout.Distance, &workout.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		workout.Category = Category(category)
		found = append(found, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return found, nil
}

func categoriesToStrings(categories []Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
