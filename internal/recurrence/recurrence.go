// Package recurrence advances reminder schedules by their frequency.
package recurrence

import (
	"time"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Next returns the first occurrence after `after`, stepping from
// `scheduled` by the frequency. Stepping repeatedly (rather than once)
// keeps a reminder that slept through several periods from rescheduling
// into the past. ok is false for an unknown frequency.
//
// Monthly and yearly steps use calendar arithmetic, so Jan 31 + 1 month
// normalizes to Mar 2/3 the way time.AddDate does.
func Next(scheduled time.Time, f domain.Frequency, after time.Time) (next time.Time, ok bool) {
	step, ok := stepFunc(f)
	if !ok {
		return time.Time{}, false
	}

	next = step(scheduled)
	for !next.After(after) {
		next = step(next)
	}
	return next, true
}

func stepFunc(f domain.Frequency) (func(time.Time) time.Time, bool) {
	switch f {
	case domain.FrequencyDaily:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }, true
	case domain.FrequencyWeekly:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }, true
	case domain.FrequencyMonthly:
		return func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }, true
	case domain.FrequencyYearly:
		return func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }, true
	}
	return nil, false
}
