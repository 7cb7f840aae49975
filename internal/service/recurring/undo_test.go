package recurring

import (
	"errors"
	"testing"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func generateOne(t *testing.T, payments *fakePaymentStore, expenses *fakeExpenseStore, now time.Time) {
	t.Helper()
	require.NoError(t, NewEngine(payments, payments, expenses).Run(now))
}

func TestUndoRollsCheckpointBackOneStep(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 18))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	generateOne(t, payments, expenses, date(2024, time.March, 20))
	require.Equal(t, date(2024, time.March, 20), *payment.LastGenerated)

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	require.NoError(t, handler.Undo(*payment.LastGeneratedExpenseId, payment.UserId))

	assert.Len(t, expenses.expenses, 1, "only the undone expense is removed")
	require.NotNil(t, payment.LastGenerated)
	assert.Equal(t, date(2024, time.March, 19), *payment.LastGenerated)
}

func TestUndoOfOlderExpenseLeavesCheckpointAlone(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 18))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	generateOne(t, payments, expenses, date(2024, time.March, 20))

	older, ok := expenses.byDate()["2024-03-19"]
	require.True(t, ok)

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	require.NoError(t, handler.Undo(older.Id, payment.UserId))

	assert.Len(t, expenses.expenses, 1, "the older expense is deleted")
	assert.Equal(t, date(2024, time.March, 20), *payment.LastGenerated,
		"a gap in history never moves the checkpoint")
}

func TestUndoMatchesByDescriptionWhenBackReferenceIsGone(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	generateOne(t, payments, expenses, date(2024, time.March, 20))

	expenseId := *payment.LastGeneratedExpenseId
	payment.LastGeneratedExpenseId = nil

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	require.NoError(t, handler.Undo(expenseId, payment.UserId))

	assert.Empty(t, expenses.expenses)
	assert.Equal(t, date(2024, time.March, 19), *payment.LastGenerated)
}

func TestUndoUnknownExpenseIsNotFound(t *testing.T) {
	payments := newFakePaymentStore()
	expenses := newFakeExpenseStore()

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	err := handler.Undo(primitive.NewObjectID(), primitive.NewObjectID())

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestUndoAnotherUsersExpenseIsNotFound(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	generateOne(t, payments, expenses, date(2024, time.March, 20))

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	err := handler.Undo(*payment.LastGeneratedExpenseId, primitive.NewObjectID())

	assert.ErrorIs(t, err, usecase.ErrNotFound, "ownership failures look identical to absence")
	assert.Len(t, expenses.expenses, 1, "nothing deleted")
}

func TestUndoDeletesEvenWhenPaymentLookupFails(t *testing.T) {
	payment := activePayment(models.FrequencyDaily, 1, date(2024, time.March, 19))

	payments := newFakePaymentStore(payment)
	expenses := newFakeExpenseStore()
	generateOne(t, payments, expenses, date(2024, time.March, 20))

	expenseId := *payment.LastGeneratedExpenseId

	handler := NewUndoHandler(expenses, failingPaymentLookup{}, expenses, payments)
	require.NoError(t, handler.Undo(expenseId, payment.UserId))

	assert.Empty(t, expenses.expenses, "deletion still succeeds")
	assert.Equal(t, date(2024, time.March, 20), *payment.LastGenerated, "checkpoint step is skipped")
}

type failingPaymentLookup struct{}

func (failingPaymentLookup) FindForExpense(*models.Expense) (*models.RecurringPayment, error) {
	return nil, errors.New("lookup unavailable")
}

func TestUndoManualExpenseWithNoLinkedPayment(t *testing.T) {
	payments := newFakePaymentStore()
	expenses := newFakeExpenseStore()

	manual := models.Expense{
		Id:     primitive.NewObjectID(),
		UserId: primitive.NewObjectID(),
		Amount: 42,
		Date:   date(2024, time.March, 20),
	}
	require.NoError(t, expenses.BulkInsert([]models.Expense{manual}))

	handler := NewUndoHandler(expenses, payments, expenses, payments)
	require.NoError(t, handler.Undo(manual.Id, manual.UserId))

	assert.Empty(t, expenses.expenses)
}
