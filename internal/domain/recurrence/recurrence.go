// Package recurrence computes occurrence dates for recurring payments.
// All functions are pure and operate on midnight-normalized UTC dates.
package recurrence

import (
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
)

// Midnight strips the time-of-day component. Every date compared anywhere in
// the engine, projector or undo handler goes through here first.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextOccurrence returns the occurrence that follows anchor. An unrecognized
// frequency, or a custom frequency without a positive interval, returns the
// anchor unchanged; callers must treat "did not advance" as terminal.
func NextOccurrence(frequency string, interval int, anchor time.Time) time.Time {
	return step(frequency, interval, anchor, 1)
}

// PreviousOccurrence is the inverse of NextOccurrence for anchors that did not
// need month-end clamping.
func PreviousOccurrence(frequency string, interval int, anchor time.Time) time.Time {
	return step(frequency, interval, anchor, -1)
}

func step(frequency string, interval int, anchor time.Time, direction int) time.Time {
	anchor = Midnight(anchor)

	if interval < 1 {
		if frequency == models.FrequencyCustom {
			return anchor
		}
		interval = 1
	}
	n := interval * direction

	switch frequency {
	case models.FrequencyDaily, models.FrequencyCustom:
		return anchor.AddDate(0, 0, n)
	case models.FrequencyWeekly:
		return anchor.AddDate(0, 0, 7*n)
	case models.FrequencyMonthly:
		return addMonths(anchor, n)
	case models.FrequencyYearly:
		return addMonths(anchor, 12*n)
	}

	return anchor
}

// addMonths adds calendar months, clamping the day to the target month's last
// valid day (Jan 31 + 1 month = Feb 28/29, never Mar 3). time.AddDate is not
// used here because it normalizes overflow instead of clamping.
func addMonths(anchor time.Time, n int) time.Time {
	total := anchor.Year()*12 + int(anchor.Month()) - 1 + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}

	day := anchor.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
