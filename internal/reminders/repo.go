package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Find returns the reminder for the given (subject, kind, day) key, or
// nil when none was created yet.
func (r *Repo) Find(ctx context.Context, subjectKey, kind, dayKey string) (_ *Reminder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day_key", dayKey))

	var reminder Reminder
	err = r.db.QueryRow(ctx, `
		SELECT id, subject_key, kind, day_key, status, reason, message, created_at, updated_at
		FROM reminder
		WHERE subject_key = $1 AND kind = $2 AND day_key = $3`,
		subjectKey, kind, dayKey,
	).Scan(
		&reminder.ID, &reminder.SubjectKey, &reminder.Kind, &reminder.DayKey,
		&reminder.Status, &reminder.Reason, &reminder.Message,
		&reminder.CreatedAt, &reminder.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query row: %w", err)
	}
	return &reminder, nil
}

// Create inserts a new reminder. A unique violation on the
// (subject, kind, day) key comes back as ErrReminderExists so the caller
// can treat a concurrent create as "already created".
func (r *Repo) Create(ctx context.Context, reminder Reminder) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", reminder.ID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO reminder (id, subject_key, kind, day_key, status, reason, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		reminder.ID, reminder.SubjectKey, reminder.Kind, reminder.DayKey,
		reminder.Status, reminder.Reason, reminder.Message, reminder.CreatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return ErrReminderExists
	}
	return err
}

// UpdateMessage fills in the generated message of one reminder.
func (r *Repo) UpdateMessage(ctx context.Context, id, message string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.updateMessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE reminder SET message = $1, updated_at = NOW() WHERE id = $2`,
		message, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// UpdateStatus changes the status of the reminder owned by the given
// subject. Used for manual dismissal.
func (r *Repo) UpdateStatus(ctx context.Context, id, subjectKey, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("id", id),
		attribute.String("status", status),
	)

	tag, err := r.db.Exec(ctx, `
		UPDATE reminder SET status = $1, updated_at = NOW()
		WHERE id = $2 AND subject_key = $3`,
		status, id, subjectKey,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// BulkResolve marks pending reminders created at or before the given
// instant as resolved and returns how many were affected. Pending
// reminders created after that instant are left alone.
func (r *Repo) BulkResolve(ctx context.Context, subjectKey, kind string, createdAtLte time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.bulkResolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE reminder SET status = $1, updated_at = NOW()
		WHERE subject_key = $2 AND kind = $3 AND status = $4 AND created_at <= $5`,
		StatusResolved, subjectKey, kind, StatusPending, createdAtLte,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ListPage returns a page of the subject's reminders, newest first,
// together with the total count.
func (r *Repo) ListPage(ctx context.Context, subjectKey string, page, size int) (_ []Reminder, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.listPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 {
		return nil, 0, fmt.Errorf("page must be greater than 0")
	}
	if size < 1 {
		return nil, 0, fmt.Errorf("size must be greater than 0")
	}

	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reminder WHERE subject_key = $1`,
		subjectKey,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	limit := size
	offset := (page - 1) * size

	rows, err := r.db.Query(ctx, `
		SELECT id, subject_key, kind, day_key, status, reason, message, created_at, updated_at
		FROM reminder
		WHERE subject_key = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		subjectKey, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var found []Reminder
	for rows.Next() {
		var reminder Reminder
		if err := rows.Scan(
			&reminder.ID, &reminder.SubjectKey, &reminder.Kind, &reminder.DayKey,
			&reminder.Status, &reminder.Reason, &reminder.Message,
			&reminder.CreatedAt, &reminder.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		found = append(found, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return found, total, nil
}
