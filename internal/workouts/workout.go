package workouts

import (
	"encoding/json"
	"time"
)

type Category string

const (
	CategoryStrength Category = "strength"
	CategoryCardio   Category = "cardio"
	CategoryWalk     Category = "walk"
	CategoryOther    Category = "other"
)

// TrainingCategories are the categories that count as actual training
// when looking for training gaps.
var TrainingCategories = []Category{CategoryStrength, CategoryCardio}

// Workout is a single activity record ingested from fitbit. Category and
// IsTraining are derived from the activity name via Classify and can be
// recomputed at any time without re-fetching the source data.
type Workout struct {
	ID           int             `json:"id"`
	UserID       string          `json:"userId"`
	FitbitLogID  string          `json:"fitbitLogId"`
	StartTime    time.Time       `json:"startTime"`
	DurationMs   int64           `json:"durationMs"`
	ActivityName string          `json:"activityName"`
	Category     Category        `json:"category"`
	IsTraining   bool            `json:"isTraining"`
	Calories     *int            `json:"calories"`
	Steps        *int            `json:"steps"`
	Distance     *float64        `json:"distance"`
	RawJSON      json.RawMessage `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SyncRun is one manual or scheduled fitbit sync. Append-only, counted
// to enforce the daily manual sync limit.
type SyncRun struct {
	ID     int       `json:"id"`
	UserID string    `json:"userId"`
	RanAt  time.Time `json:"ranAt"`
}
