package reminders

import (
	"context"
	"time"

	"github.com/mkovacic/fitbeat/internal/workouts"
)

// DefaultMaxMessageLength caps reminder messages so they stay glanceable
// in notifications.
const DefaultMaxMessageLength = 240

// LastActivity is the most recent qualifying workout, used as context for
// message generation.
type LastActivity struct {
	Name      string
	Category  workouts.Category
	StartTime time.Time
}

// MessageContext carries everything a message provider may use.
// HoursSinceLast is +Inf when no qualifying activity was ever recorded.
type MessageContext struct {
	LastActivity   *LastActivity
	HoursSinceLast float64
}

// MessageProvider turns a gap into a short nudge. Implementations never
// fail: when enrichment breaks they fall back to a deterministic
// template. The returned message is always within the length cap.
type MessageProvider interface {
	Generate(ctx context.Context, msgCtx MessageContext) string
}

// TemplateProvider is the deterministic fallback: a fixed suggestion
// conditioned on the last workout's category.
type TemplateProvider struct {
	maxLength int
}

func NewTemplateProvider(maxLength int) *TemplateProvider {
	if maxLength <= 0 {
		maxLength = DefaultMaxMessageLength
	}
	return &TemplateProvider{
		maxLength: maxLength,
	}
}

func (p *TemplateProvider) Generate(_ context.Context, msgCtx MessageContext) string {
	prefix := ""
	if msgCtx.HoursSinceLast >= 48 {
		prefix = "It has been about 2 days since your last session. "
	}

	if msgCtx.LastActivity == nil {
		return clipMessage(prefix+"Let's restart momentum with a 10-minute bootcamp baseline today, just enough to get moving.", p.maxLength)
	}

	switch msgCtx.LastActivity.Category {
	case workouts.CategoryStrength:
		return clipMessage(prefix+"Nice strength effort last time, try 12 minutes of easy cardio or mobility today to keep your streak alive.", p.maxLength)
	case workouts.CategoryCardio:
		return clipMessage(prefix+"Great cardio work recently, fit in a short bootcamp or strength set today to stay balanced.", p.maxLength)
	default:
		return clipMessage(prefix+"A quick 10-minute bootcamp baseline today is a smart way to rebuild consistency.", p.maxLength)
	}
}

func clipMessage(message string, maxLength int) string {
	runes := []rune(message)
	if len(runes) <= maxLength {
		return message
	}
	return string(runes[:maxLength])
}
