package pkg

import "time"

// Calendar days are always bucketed in a fixed reference timezone (UTC+8,
// Singapore), independent of the server's local timezone. Reminders are
// deduplicated per such day, and the manual sync limit is counted per
// such day.

const sgtOffsetSeconds = 8 * 60 * 60

var ReferenceZone = time.FixedZone("SGT", sgtOffsetSeconds)

// DayKey formats the given instant as YYYY-MM-DD in the reference timezone.
func DayKey(t time.Time) string {
	return t.In(ReferenceZone).Format("2006-01-02")
}

// StartOfReferenceDay returns the instant at which the reference-timezone
// calendar day containing t begins.
func StartOfReferenceDay(t time.Time) time.Time {
	local := t.In(ReferenceZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ReferenceZone)
}

// NextStartOfReferenceDay returns the first instant of the reference-timezone
// calendar day after the one containing t.
func NextStartOfReferenceDay(t time.Time) time.Time {
	return StartOfReferenceDay(t).Add(24 * time.Hour)
}
