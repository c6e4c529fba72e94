package reminders

import (
	"errors"
	"time"
)

const (
	// DefaultSubjectKey identifies the single tracked person.
	DefaultSubjectKey = "owner"
	// KindTrainingGap marks reminders created by the training gap check.
	KindTrainingGap = "training_gap"
)

const (
	StatusPending   = "pending"
	StatusDismissed = "dismissed"
	StatusResolved  = "resolved"
)

var (
	ErrReminderExists   = errors.New("reminder already exists")
	ErrReminderNotFound = errors.New("reminder not found")
)

// Reminder is one nudge created for a detected training gap. At most one
// per (subject, kind, day). Message is filled in a second write after
// creation, so a nil message means "still generating", not an error.
type Reminder struct {
	ID         string    `json:"id"`
	SubjectKey string    `json:"subjectKey"`
	Kind       string    `json:"kind"`
	DayKey     string    `json:"dayKey"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason"`
	Message    *string   `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
