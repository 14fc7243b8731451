package utils

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar days in query strings and socket rooms
const DateLayout = "2006-01-02"

// GenerateID returns a new random entity id
func GenerateID() string {
	return uuid.NewString()
}

// SameDay reports whether a and b fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
// An empty string yields today's midnight according to now.
func ParseDay(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" {
		return StartOfDay(now.In(loc)), nil
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// FormatDay is the inverse of ParseDay
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
