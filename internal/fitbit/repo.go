package fitbit

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetAuth returns the stored credentials for the given user, or
// ErrNotConnected when the account was never connected (or disconnected).
func (r *Repo) GetAuth(ctx context.Context, userID string) (_ *Auth, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.getAuth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var auth Auth
	err = r.db.QueryRow(ctx, `
		SELECT user_id, fitbit_user_id, scope, access_token, refresh_token,
			expires_at, created_at, updated_at
		FROM fitbit_auth
		WHERE user_id = $1`,
		userID,
	).Scan(
		&auth.UserID, &auth.FitbitUserID, &auth.Scope, &auth.AccessToken,
		&auth.RefreshToken, &auth.ExpiresAt, &auth.CreatedAt, &auth.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, fmt.Errorf("query row: %w", err)
	}
	return &auth, nil
}

// UpsertAuth stores the credentials, replacing any previous ones for the
// same user.
func (r *Repo) UpsertAuth(ctx context.Context, auth Auth) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.upsertAuth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", auth.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO fitbit_auth (
			user_id, fitbit_user_id, scope, access_token, refresh_token,
			expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			fitbit_user_id = EXCLUDED.fitbit_user_id,
			scope = EXCLUDED.scope,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()`,
		auth.UserID, auth.FitbitUserID, auth.Scope, auth.AccessToken,
		auth.RefreshToken, auth.ExpiresAt,
	)
	return err
}

// DeleteAuth removes the stored credentials. Not an error if none exist.
func (r *Repo) DeleteAuth(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.deleteAuth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `DELETE FROM fitbit_auth WHERE user_id = $1`, userID)
	return err
}

// AppendSyncRun records one completed sync. Append-only.
func (r *Repo) AppendSyncRun(ctx context.Context, userID string, ranAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.appendSyncRun")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO sync_run (user_id, ran_at) VALUES ($1, $2)`,
		userID, ranAt,
	)
	return err
}

// SyncRunCountInRange counts sync runs with ran_at in [from, to).
func (r *Repo) SyncRunCountInRange(ctx context.Context, userID string, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.syncRunCountInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM sync_run
		WHERE user_id = $1 AND ran_at >= $2 AND ran_at < $3`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query row: %w", err)
	}
	return count, nil
}
