package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for date-only values.
const DateLayout = "2006-01-02"

// FeedbackWeekDays is the span of a feedback week: Sunday through Thursday.
const FeedbackWeekDays = 4

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a date-only value in YYYY-MM-DD form.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ValidateWeekStart checks that the given date is a Sunday, the only valid
// start of a feedback week.
func ValidateWeekStart(weekStart time.Time) error {
	if weekStart.Weekday() != time.Sunday {
		return fmt.Errorf("week start %s is a %s, must be a Sunday", weekStart.Format(DateLayout), weekStart.Weekday())
	}
	return nil
}

// WeekEnd derives the feedback week end (Thursday) from its start.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, FeedbackWeekDays)
}
