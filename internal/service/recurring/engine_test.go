package recurring

import (
	"errors"
	"testing"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activePayment(frequency string, interval int, start time.Time) *models.RecurringPayment {
	return &models.RecurringPayment{
		Id:             primitive.NewObjectID(),
		UserId:         primitive.NewObjectID(),
		Name:           "Netflix",
		Amount:         15.99,
		Frequency:      frequency,
		CustomInterval: interval,
		StartDate:      start,
		Status:         models.StatusActive,
	}
}

func TestRunCatchesUpDailyPayment(t *testing.T) {
	now := date(2024, time.March, 20)
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 10))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(now))

	assert.Len(t, expenses.expenses, 10)
	for day := 11; day <= 20; day++ {
		e, ok := expenses.byDate()[date(2024, time.March, day).Format("2006-01-02")]
		require.True(t, ok, "missing expense for day %d", day)
		assert.Equal(t, payment.UserId, e.UserId)
		assert.Equal(t, 15.99, e.Amount)
	}

	require.NotNil(t, payment.LastGenerated)
	assert.Equal(t, date(2024, time.March, 20), *payment.LastGenerated)
	require.NotNil(t, payment.LastGeneratedExpenseId)
	assert.Equal(t, date(2024, time.March, 20), expenses.expenses[*payment.LastGeneratedExpenseId].Date)
}

func TestRunIsIdempotentAtSameNow(t *testing.T) {
	now := date(2024, time.March, 20)
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 10))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(now))
	generated := len(expenses.expenses)

	require.NoError(t, engine.Run(now))

	assert.Equal(t, generated, len(expenses.expenses), "second run must not re-emit occurrences")
	assert.Equal(t, date(2024, time.March, 20), *payment.LastGenerated)
}

func TestRunNormalizesNowToMidnight(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 18))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(time.Date(2024, time.March, 20, 17, 38, 0, 0, time.UTC)))

	assert.Len(t, expenses.expenses, 2)
	assert.Equal(t, date(2024, time.March, 20), *payment.LastGenerated)
}

func TestRunCopiesPaymentFieldsWithDefaults(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))
	payment.Description = ""
	payment.Category = ""
	payment.Icon = ""

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	require.Len(t, expenses.expenses, 1)
	for _, e := range expenses.expenses {
		assert.Equal(t, "Netflix", e.Description, "description falls back to the payment name")
		assert.Equal(t, models.DefaultCategory, e.Category)
		assert.Equal(t, "🔁", e.Icon)
	}
}

func TestRunRespectsCustomFrequency(t *testing.T) {
	payment := activePayment(models.FrequencyCustom, 4, date(2024, time.March, 1))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 14)))

	// March 5, 9, 13
	assert.Len(t, expenses.expenses, 3)
	assert.Equal(t, date(2024, time.March, 13), *payment.LastGenerated)
}

func TestRunClampsMonthlyRollover(t *testing.T) {
	payment := activePayment(models.FrequencyMonthly, 1, date(2024, time.January, 31))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 5)))

	require.Len(t, expenses.expenses, 1)
	_, ok := expenses.byDate()["2024-02-29"]
	assert.True(t, ok, "occurrence lands on the last day of February, not March 2")
	assert.Equal(t, date(2024, time.February, 29), *payment.LastGenerated)
}

func TestRunSkipsPausedPayments(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 1))
	payment.Status = models.StatusPaused

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	assert.Empty(t, expenses.expenses)
	assert.Nil(t, payment.LastGenerated)
}

func TestRunSkipsFutureAndExpiredPayments(t *testing.T) {
	future := activePayment(models.FrequencyDaily, 1, date(2024, time.April, 1))
	expired := activePayment(models.FrequencyDaily, 1, date(2024, time.February, 1))
	end := date(2024, time.February, 20)
	expired.EndDate = &end

	payments := newFakePaymentStore(future, expired)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	assert.Empty(t, expenses.expenses)
	assert.Nil(t, future.LastGenerated)
	assert.Nil(t, expired.LastGenerated, "checkpoint never advances past the end date")
}

func TestRunStopsAtEndDate(t *testing.T) {
	payment := activePayment(models.FrequencyWeekly, 1, date(2024, time.March, 1))
	end := date(2024, time.March, 20)
	payment.EndDate = &end

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	// March 8 and 15; March 22 is past the end date.
	assert.Len(t, expenses.expenses, 2)
	assert.Equal(t, date(2024, time.March, 15), *payment.LastGenerated)
}

func TestRunIgnoresInertSchedules(t *testing.T) {
	inert := activePayment(models.FrequencyCustom, 0, date(2024, time.March, 1))
	unknown := activePayment("fortnightly", 1, date(2024, time.March, 1))

	payments := newFakePaymentStore(inert, unknown)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	assert.Empty(t, expenses.expenses)
}

func TestRunLostCheckpointRaceInsertsNothing(t *testing.T) {
	racer := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 18))
	healthy := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(racer, healthy)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	// FindDue serves a snapshot taken before a concurrent run advanced the
	// racer, so this run's compare-and-swap on it must lose.
	payments.dueOverride = []models.RecurringPayment{*racer, *healthy}
	advanced := date(2024, time.March, 20)
	racer.LastGenerated = &advanced

	require.NoError(t, engine.Run(date(2024, time.March, 20)))

	// Only the healthy payment's expense made it in.
	require.Len(t, expenses.expenses, 1)
	for _, e := range expenses.expenses {
		assert.Equal(t, healthy.UserId, e.UserId)
	}
	assert.Equal(t, date(2024, time.March, 20), *racer.LastGenerated, "loser must not move the checkpoint")
}

func TestRunSurfacesStoreFailures(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	payments.findDueErr = errors.New("primary stepped down")
	require.Error(t, engine.Run(date(2024, time.March, 20)))

	payments.findDueErr = nil
	expenses.bulkInsertErr = errors.New("write concern timeout")
	require.Error(t, engine.Run(date(2024, time.March, 20)))
}

func TestRunSkipsPaymentWhoseCheckpointWriteFails(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	engine := NewEngine(payments, payments, expenses)

	payments.advanceErr = errors.New("connection reset")
	require.NoError(t, engine.Run(date(2024, time.March, 20)), "one payment's failure is non-fatal to the run")

	assert.Empty(t, expenses.expenses)
}
