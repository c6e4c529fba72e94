package reminders

import (
	"fmt"
	"math"
	"time"

	"github.com/mkovacic/fitbeat/internal/workouts"
)

// CategoryGap is the computed staleness of one activity category.
// GapHours is +Inf when no activity of the category was ever recorded.
type CategoryGap struct {
	Category workouts.Category
	GapHours float64
	Stale    bool
}

// Evaluation is a pure trigger decision: no side effects, no store access.
type Evaluation struct {
	Trigger bool
	Reason  string
	Gaps    []CategoryGap
}

// GapPolicy decides whether the latest qualifying activity timestamps
// constitute a training gap at the given instant. Categories absent from
// the map count as never trained.
type GapPolicy interface {
	Evaluate(latest map[workouts.Category]time.Time, now time.Time) Evaluation
}

// UnifiedWindowPolicy triggers when no strength or cardio activity
// happened inside the trailing window, no matter which category.
type UnifiedWindowPolicy struct {
	Window time.Duration
}

func (p UnifiedWindowPolicy) Evaluate(latest map[workouts.Category]time.Time, now time.Time) Evaluation {
	windowHours := p.Window.Hours()

	minGap := math.Inf(1)
	var gaps []CategoryGap
	for _, category := range workouts.TrainingCategories {
		gap := gapHours(latest, category, now)
		gaps = append(gaps, CategoryGap{
			Category: category,
			GapHours: gap,
			Stale:    gap >= windowHours,
		})
		if gap < minGap {
			minGap = gap
		}
	}

	return Evaluation{
		Trigger: minGap >= windowHours,
		Reason:  fmt.Sprintf("no_strength_or_cardio_%dh", int(windowHours)),
		Gaps:    gaps,
	}
}

// PerCategoryPolicy holds an independent threshold per category and
// triggers when any one of them is exceeded, regardless of how fresh the
// other categories are.
type PerCategoryPolicy struct {
	Thresholds map[workouts.Category]time.Duration
}

func (p PerCategoryPolicy) Evaluate(latest map[workouts.Category]time.Time, now time.Time) Evaluation {
	var gaps []CategoryGap
	trigger := false
	reason := ""
	for _, category := range workouts.TrainingCategories {
		threshold, ok := p.Thresholds[category]
		if !ok {
			continue
		}
		gap := gapHours(latest, category, now)
		stale := gap >= threshold.Hours()
		gaps = append(gaps, CategoryGap{
			Category: category,
			GapHours: gap,
			Stale:    stale,
		})
		if stale && !trigger {
			trigger = true
			reason = fmt.Sprintf("no_%s_in_%dh", category, int(threshold.Hours()))
		}
	}

	return Evaluation{
		Trigger: trigger,
		Reason:  reason,
		Gaps:    gaps,
	}
}

// gapHours is a wall-clock millisecond difference, deliberately ignoring
// calendar and DST arithmetic.
func gapHours(latest map[workouts.Category]time.Time, category workouts.Category, now time.Time) float64 {
	ts, ok := latest[category]
	if !ok {
		return math.Inf(1)
	}
	return float64(now.Sub(ts).Milliseconds()) / (1000 * 60 * 60)
}
