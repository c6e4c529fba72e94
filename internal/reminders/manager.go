package reminders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/metrics"
	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/internal/workouts"
	"github.com/mkovacic/fitbeat/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=reminders_test

type remindersStore interface {
	Find(ctx context.Context, subjectKey, kind, dayKey string) (*Reminder, error)
	Create(ctx context.Context, reminder Reminder) error
	UpdateMessage(ctx context.Context, id, message string) error
	BulkResolve(ctx context.Context, subjectKey, kind string, createdAtLte time.Time) (int, error)
}

type activitySource interface {
	LatestByCategories(ctx context.Context, categories []workouts.Category) (*workouts.Workout, error)
}

// Skip reasons reported when no reminder gets created.
const (
	skipReasonRecentTraining = "recent_training_exists"
	skipReasonAlreadyCreated = "already_created_for_day"
)

// RunResult is the outcome of one lifecycle check. HoursSinceLast is nil
// when no qualifying activity was ever recorded.
type RunResult struct {
	Created        bool     `json:"created"`
	ReminderID     string   `json:"reminderId,omitempty"`
	Reason         string   `json:"reason"`
	DayKey         string   `json:"dayKey"`
	HoursSinceLast *float64 `json:"hoursSinceLast"`
	ResolvedCount  int      `json:"resolvedCount"`
}

// Manager runs the reminder lifecycle: resolve stale pending reminders
// first, then evaluate the gap policy and create at most one reminder per
// reference-zone day.
type Manager struct {
	store      remindersStore
	activities activitySource
	policy     GapPolicy
	messages   MessageProvider
	subjectKey string
	kind       string
	metrics    *metrics.Manager

	IDFunc func() string
}

func NewManager(
	store remindersStore,
	activities activitySource,
	policy GapPolicy,
	messages MessageProvider,
	metricsManager *metrics.Manager,
) *Manager {
	return &Manager{
		store:      store,
		activities: activities,
		policy:     policy,
		messages:   messages,
		subjectKey: DefaultSubjectKey,
		kind:       KindTrainingGap,
		metrics:    metricsManager,
		IDFunc:     uuid.NewString,
	}
}

func (m *Manager) Run(ctx context.Context, now time.Time) (_ *RunResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reminders.manager.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayKey := pkg.DayKey(now)
	span.SetAttributes(attribute.String("day_key", dayKey))

	latest, latestOverall, err := m.latestActivities(ctx)
	if err != nil {
		return nil, err
	}

	// resolve before evaluate: new training always clears pending
	// reminders that predate it, even when a new gap is about to open
	resolvedCount := 0
	if latestOverall != nil {
		resolvedCount, err = m.store.BulkResolve(ctx, m.subjectKey, m.kind, latestOverall.StartTime)
		if err != nil {
			return nil, fmt.Errorf("bulk resolve: %w", err)
		}
		if resolvedCount > 0 {
			m.metrics.CounterRemindersResolved.Add(float64(resolvedCount))
			log.Debugf("training check: resolved %d pending reminders", resolvedCount)
		}
	}

	evaluation := m.policy.Evaluate(latest, now)
	hoursSinceLast := hoursSince(latestOverall, now)

	if !evaluation.Trigger {
		log.Debugf("training check [%s]: recent training exists, no reminder needed", dayKey)
		return &RunResult{
			Created:        false,
			Reason:         skipReasonRecentTraining,
			DayKey:         dayKey,
			HoursSinceLast: hoursSinceLast,
			ResolvedCount:  resolvedCount,
		}, nil
	}

	existing, err := m.store.Find(ctx, m.subjectKey, m.kind, dayKey)
	if err != nil {
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	if existing != nil {
		log.Debugf("training check [%s]: reminder %s already created", dayKey, existing.ID)
		return &RunResult{
			Created:        false,
			ReminderID:     existing.ID,
			Reason:         skipReasonAlreadyCreated,
			DayKey:         dayKey,
			HoursSinceLast: hoursSinceLast,
			ResolvedCount:  resolvedCount,
		}, nil
	}

	reminder := Reminder{
		ID:         m.IDFunc(),
		SubjectKey: m.subjectKey,
		Kind:       m.kind,
		DayKey:     dayKey,
		Status:     StatusPending,
		Reason:     evaluation.Reason,
		CreatedAt:  now,
	}

	if err = m.store.Create(ctx, reminder); err != nil {
		if errors.Is(err, ErrReminderExists) {
			// concurrent check won the race for this day
			log.Debugf("training check [%s]: reminder created concurrently", dayKey)
			return &RunResult{
				Created:        false,
				Reason:         skipReasonAlreadyCreated,
				DayKey:         dayKey,
				HoursSinceLast: hoursSinceLast,
				ResolvedCount:  resolvedCount,
			}, nil
		}
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	m.metrics.CounterRemindersCreated.Inc()
	log.Printf("training check [%s]: created reminder %s (%s)", dayKey, reminder.ID, reminder.Reason)

	m.fillMessage(ctx, reminder.ID, latestOverall, now)

	return &RunResult{
		Created:        true,
		ReminderID:     reminder.ID,
		Reason:         reminder.Reason,
		DayKey:         dayKey,
		HoursSinceLast: hoursSinceLast,
		ResolvedCount:  resolvedCount,
	}, nil
}

// latestActivities loads the freshest workout per training category and
// the overall freshest one. Ties go to the earlier category in the
// evaluation order.
func (m *Manager) latestActivities(ctx context.Context) (map[workouts.Category]time.Time, *workouts.Workout, error) {
	latest := make(map[workouts.Category]time.Time)
	var latestOverall *workouts.Workout
	for _, category := range workouts.TrainingCategories {
		workout, err := m.activities.LatestByCategories(ctx, []workouts.Category{category})
		if err != nil {
			return nil, nil, fmt.Errorf("latest %s activity: %w", category, err)
		}
		if workout == nil {
			continue
		}
		latest[category] = workout.StartTime
		if latestOverall == nil || workout.StartTime.After(latestOverall.StartTime) {
			latestOverall = workout
		}
	}
	return latest, latestOverall, nil
}

// fillMessage generates and stores the reminder message as a separate
// write. Failures are logged, never propagated: a reminder without a
// message is still a valid reminder.
func (m *Manager) fillMessage(ctx context.Context, reminderID string, latestOverall *workouts.Workout, now time.Time) {
	msgCtx := MessageContext{
		HoursSinceLast: math.Inf(1),
	}
	if latestOverall != nil {
		msgCtx.LastActivity = &LastActivity{
			Name:      latestOverall.ActivityName,
			Category:  latestOverall.Category,
			StartTime: latestOverall.StartTime,
		}
		msgCtx.HoursSinceLast = *hoursSince(latestOverall, now)
	}

	message := m.messages.Generate(ctx, msgCtx)
	if err := m.store.UpdateMessage(ctx, reminderID, message); err != nil {
		log.Errorf("failed to store message for reminder %s: %s", reminderID, err)
	}
}

func hoursSince(latestOverall *workouts.Workout, now time.Time) *float64 {
	if latestOverall == nil {
		return nil
	}
	hours := float64(now.Sub(latestOverall.StartTime).Milliseconds()) / (1000 * 60 * 60)
	return &hours
}
