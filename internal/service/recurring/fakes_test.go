package recurring

import (
	"errors"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakePaymentStore implements the payment-side repository interfaces with the
// same filter and compare-and-swap semantics as the Mongo implementation.
type fakePaymentStore struct {
	payments map[primitive.ObjectID]*models.RecurringPayment

	findDueErr  error
	advanceErr  error
	dueOverride []models.RecurringPayment
}

func newFakePaymentStore(payments ...*models.RecurringPayment) *fakePaymentStore {
	s := &fakePaymentStore{payments: map[primitive.ObjectID]*models.RecurringPayment{}}
	for _, p := range payments {
		s.payments[p.Id] = p
	}
	return s
}

func (s *fakePaymentStore) FindDue(date time.Time) ([]models.RecurringPayment, error) {
	if s.findDueErr != nil {
		return nil, s.findDueErr
	}
	if s.dueOverride != nil {
		return s.dueOverride, nil
	}

	var due []models.RecurringPayment
	for _, p := range s.payments {
		if p.Status != models.StatusActive {
			continue
		}
		if recurrence.Midnight(p.StartDate).After(date) {
			continue
		}
		if p.EndDate != nil && recurrence.Midnight(*p.EndDate).Before(date) {
			continue
		}
		due = append(due, *p)
	}
	return due, nil
}

func (s *fakePaymentStore) FindActiveByUserId(userId primitive.ObjectID, date time.Time) ([]models.RecurringPayment, error) {
	var active []models.RecurringPayment
	for _, p := range s.payments {
		if p.UserId != userId || p.Status != models.StatusActive {
			continue
		}
		if p.EndDate != nil && recurrence.Midnight(*p.EndDate).Before(date) {
			continue
		}
		active = append(active, *p)
	}
	return active, nil
}

func (s *fakePaymentStore) FindForExpense(expense *models.Expense) (*models.RecurringPayment, error) {
	for _, p := range s.payments {
		if p.LastGeneratedExpenseId != nil && *p.LastGeneratedExpenseId == expense.Id {
			copied := *p
			return &copied, nil
		}
	}
	for _, p := range s.payments {
		if p.UserId != expense.UserId {
			continue
		}
		if p.Name == expense.Description || (p.Description != "" && p.Description == expense.Description) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakePaymentStore) Advance(paymentId primitive.ObjectID, expected *time.Time, checkpoint time.Time, expenseId primitive.ObjectID) error {
	if s.advanceErr != nil {
		return s.advanceErr
	}

	p, ok := s.payments[paymentId]
	if !ok || !sameDate(p.LastGenerated, expected) {
		return usecase.ErrConflict
	}

	p.LastGenerated = &checkpoint
	p.LastGeneratedExpenseId = &expenseId
	return nil
}

func (s *fakePaymentStore) Rollback(paymentId primitive.ObjectID, expected time.Time, checkpoint time.Time) error {
	p, ok := s.payments[paymentId]
	if !ok || !sameDate(p.LastGenerated, &expected) {
		return usecase.ErrConflict
	}

	p.LastGenerated = &checkpoint
	p.LastGeneratedExpenseId = nil
	return nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

type fakeExpenseStore struct {
	expenses map[primitive.ObjectID]*models.Expense

	bulkInsertErr error
	findErr       error
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: map[primitive.ObjectID]*models.Expense{}}
}

func (s *fakeExpenseStore) BulkInsert(expenses []models.Expense) error {
	if s.bulkInsertErr != nil {
		return s.bulkInsertErr
	}
	for i := range expenses {
		e := expenses[i]
		s.expenses[e.Id] = &e
	}
	return nil
}

func (s *fakeExpenseStore) Find(expenseId primitive.ObjectID, userId primitive.ObjectID) (*models.Expense, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	e, ok := s.expenses[expenseId]
	if !ok || e.UserId != userId {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (s *fakeExpenseStore) Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error {
	e, ok := s.expenses[expenseId]
	if !ok || e.UserId != userId {
		return errors.New("expense not found")
	}
	delete(s.expenses, expenseId)
	return nil
}

func (s *fakeExpenseStore) byDate() map[string]*models.Expense {
	out := map[string]*models.Expense{}
	for _, e := range s.expenses {
		out[e.Date.Format("2006-01-02")] = e
	}
	return out
}
