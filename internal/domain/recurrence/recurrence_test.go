package recurrence

import (
	"testing"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		interval  int
		anchor    time.Time
		want      time.Time
	}{
		{"daily", models.FrequencyDaily, 1, date(2024, time.March, 10), date(2024, time.March, 11)},
		{"daily every 2", models.FrequencyDaily, 2, date(2024, time.March, 10), date(2024, time.March, 12)},
		{"weekly", models.FrequencyWeekly, 1, date(2024, time.March, 10), date(2024, time.March, 17)},
		{"weekly every 2", models.FrequencyWeekly, 2, date(2024, time.March, 10), date(2024, time.March, 24)},
		{"monthly", models.FrequencyMonthly, 1, date(2024, time.March, 15), date(2024, time.April, 15)},
		{"monthly across year", models.FrequencyMonthly, 2, date(2024, time.December, 5), date(2025, time.February, 5)},
		{"monthly clamps to feb leap", models.FrequencyMonthly, 1, date(2024, time.January, 31), date(2024, time.February, 29)},
		{"monthly clamps to feb non-leap", models.FrequencyMonthly, 1, date(2023, time.January, 31), date(2023, time.February, 28)},
		{"monthly clamps 31 to 30", models.FrequencyMonthly, 1, date(2024, time.March, 31), date(2024, time.April, 30)},
		{"yearly", models.FrequencyYearly, 1, date(2024, time.March, 10), date(2025, time.March, 10)},
		{"yearly leap day clamps", models.FrequencyYearly, 1, date(2024, time.February, 29), date(2025, time.February, 28)},
		{"custom is every N days", models.FrequencyCustom, 10, date(2024, time.March, 10), date(2024, time.March, 20)},
		{"unknown frequency is a no-op", "fortnightly", 1, date(2024, time.March, 10), date(2024, time.March, 10)},
		{"custom without interval is inert", models.FrequencyCustom, 0, date(2024, time.March, 10), date(2024, time.March, 10)},
		{"zero interval defaults to 1", models.FrequencyDaily, 0, date(2024, time.March, 10), date(2024, time.March, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextOccurrence(tt.frequency, tt.interval, tt.anchor))
		})
	}
}

func TestPreviousOccurrence(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 9), PreviousOccurrence(models.FrequencyDaily, 1, date(2024, time.March, 10)))
	assert.Equal(t, date(2024, time.March, 3), PreviousOccurrence(models.FrequencyWeekly, 1, date(2024, time.March, 10)))
	assert.Equal(t, date(2024, time.February, 15), PreviousOccurrence(models.FrequencyMonthly, 1, date(2024, time.March, 15)))
	assert.Equal(t, date(2024, time.November, 5), PreviousOccurrence(models.FrequencyMonthly, 3, date(2025, time.February, 5)))
	assert.Equal(t, date(2023, time.March, 10), PreviousOccurrence(models.FrequencyYearly, 1, date(2024, time.March, 10)))
	assert.Equal(t, date(2024, time.March, 1), PreviousOccurrence(models.FrequencyCustom, 9, date(2024, time.March, 10)))
}

// Previous must invert Next wherever the forward step did not clamp.
func TestPreviousInvertsNext(t *testing.T) {
	anchors := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 28),
		date(2023, time.June, 15),
		date(2024, time.December, 25),
	}
	frequencies := []string{
		models.FrequencyDaily,
		models.FrequencyWeekly,
		models.FrequencyMonthly,
		models.FrequencyYearly,
		models.FrequencyCustom,
	}

	for _, f := range frequencies {
		for _, anchor := range anchors {
			for _, interval := range []int{1, 2, 5} {
				next := NextOccurrence(f, interval, anchor)
				assert.Equal(t, anchor, PreviousOccurrence(f, interval, next),
					"frequency=%s interval=%d anchor=%s", f, interval, anchor)
			}
		}
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, time.March, 10, 17, 38, 12, 500, time.UTC)
	assert.Equal(t, date(2024, time.March, 10), Midnight(in))
}
