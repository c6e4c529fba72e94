package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/metrics"
	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/internal/workouts"
	"github.com/mkovacic/fitbeat/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=fitbit_mocks_test.go -package=fitbit_test

const activitiesPageLimit = 100

type activitiesClient interface {
	Refresh(ctx context.Context, refreshToken string) (*Token, error)
	ListActivitiesPage(ctx context.Context, accessToken, afterDate string, offset, limit int) (*ActivitiesPage, int, error)
}

type authRepo interface {
	GetAuth(ctx context.Context, userID string) (*Auth, error)
	UpsertAuth(ctx context.Context, auth Auth) error
	AppendSyncRun(ctx context.Context, userID string, ranAt time.Time) error
}

type workoutsStore interface {
	Upsert(ctx context.Context, workout workouts.Workout) error
}

type SyncResult struct {
	Synced int       `json:"synced"`
	RanAt  time.Time `json:"ranAt"`
}

// Syncer pulls the activity log from fitbit and stores each entry as a
// classified workout. Runs are recorded so callers can enforce the daily
// manual sync limit.
type Syncer struct {
	client         activitiesClient
	authRepo       authRepo
	workoutsStore  workoutsStore
	syncWindowDays int
	metrics        *metrics.Manager

	NowFunc func() time.Time
}

func NewSyncer(
	client activitiesClient,
	authRepo authRepo,
	workoutsStore workoutsStore,
	syncWindowDays int,
	metricsManager *metrics.Manager,
) *Syncer {
	return &Syncer{
		client:         client,
		authRepo:       authRepo,
		workoutsStore:  workoutsStore,
		syncWindowDays: syncWindowDays,
		metrics:        metricsManager,
		NowFunc:        time.Now,
	}
}

// Run executes one full sync: refresh credentials if needed, walk the
// activity pages inside the sync window, classify and upsert every entry,
// then record the run.
func (s *Syncer) Run(ctx context.Context) (_ *SyncResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitbit.syncer.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	defer func() {
		s.metrics.HistSyncDuration.Observe(time.Since(start).Seconds())
	}()

	now := s.NowFunc()

	auth, err := s.authRepo.GetAuth(ctx, DefaultUserID)
	if err != nil {
		return nil, err
	}

	refreshed := false
	if auth.Expired(now) {
		if auth, err = s.refreshAuth(ctx, auth); err != nil {
			return nil, err
		}
		refreshed = true
	}

	afterDate := now.AddDate(0, 0, -s.syncWindowDays).In(pkg.ReferenceZone).Format("2006-01-02")
	log.Debugf("fitbit sync: listing activities after %s", afterDate)

	synced := 0
	offset := 0
	for {
		page, status, err := s.client.ListActivitiesPage(ctx, auth.AccessToken, afterDate, offset, activitiesPageLimit)
		if err != nil {
			return nil, fmt.Errorf("list activities page: %w", err)
		}
		if status == http.StatusUnauthorized && !refreshed {
			// token rejected before its stored expiry, refresh once and retry
			if auth, err = s.refreshAuth(ctx, auth); err != nil {
				return nil, err
			}
			refreshed = true
			continue
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("fitbit activities list returned status %d", status)
		}

		for _, rawActivity := range page.Activities {
			stored, err := s.storeActivity(ctx, rawActivity, now)
			if err != nil {
				return nil, err
			}
			if stored {
				synced++
			}
		}

		if page.Pagination == nil || page.Pagination.Next == "" {
			break
		}
		offset += len(page.Activities)
	}

	if err := s.authRepo.AppendSyncRun(ctx, DefaultUserID, now); err != nil {
		return nil, fmt.Errorf("append sync run: %w", err)
	}

	s.metrics.CounterSyncRuns.Inc()
	s.metrics.CounterSyncedWorkouts.Add(float64(synced))
	span.SetAttributes(attribute.Int("synced", synced))
	log.Debugf("fitbit sync done, %d workouts synced", synced)

	return &SyncResult{
		Synced: synced,
		RanAt:  now,
	}, nil
}

func (s *Syncer) refreshAuth(ctx context.Context, auth *Auth) (*Auth, error) {
	token, err := s.client.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh auth: %w", err)
	}

	auth.AccessToken = token.AccessToken
	auth.RefreshToken = token.RefreshToken
	auth.ExpiresAt = token.ExpiresAt
	if token.Scope != "" {
		auth.Scope = token.Scope
	}
	if token.FitbitUserID != "" {
		auth.FitbitUserID = token.FitbitUserID
	}

	if err := s.authRepo.UpsertAuth(ctx, *auth); err != nil {
		return nil, fmt.Errorf("store refreshed auth: %w", err)
	}
	return auth, nil
}

// storeActivity parses, classifies and upserts one raw activity record.
// Records without a log id cannot be deduplicated and are skipped.
func (s *Syncer) storeActivity(ctx context.Context, rawActivity json.RawMessage, now time.Time) (bool, error) {
	var activity Activity
	if err := json.Unmarshal(rawActivity, &activity); err != nil {
		return false, fmt.Errorf("unmarshal activity: %w", err)
	}

	if activity.LogID == 0 {
		log.Warnf("fitbit sync: skipping activity without log id: %s", activity.ActivityName)
		return false, nil
	}

	startTime, err := time.Parse(time.RFC3339, activity.StartTime)
	if err != nil {
		return false, fmt.Errorf("parse activity %d start time: %w", activity.LogID, err)
	}

	category, isTraining := workouts.Classify(activity.ActivityName)

	workout := workouts.Workout{
		UserID:       DefaultUserID,
		FitbitLogID:  fmt.Sprintf("%d", activity.LogID),
		StartTime:    startTime,
		DurationMs:   activity.Duration,
		ActivityName: activity.ActivityName,
		Category:     category,
		IsTraining:   isTraining,
		Calories:     activity.Calories,
		Steps:        activity.Steps,
		Distance:     activity.Distance,
		RawJSON:      rawActivity,
		CreatedAt:    now,
	}

	if err := s.workoutsStore.Upsert(ctx, workout); err != nil {
		return false, fmt.Errorf("upsert workout %s: %w", workout.FitbitLogID, err)
	}
	return true, nil
}
