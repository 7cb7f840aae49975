package usecase

import (
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecurringPaymentRepository interface {
	Create(payment *models.RecurringPayment) (*models.RecurringPayment, error)
}

type FindRecurringPaymentsByUserIdRepository interface {
	FindByUserId(userId primitive.ObjectID) ([]models.RecurringPayment, error)
}

type FindRecurringPaymentByIdRepository interface {
	Find(paymentId primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringPayment, error)
}

// FindDueRecurringPaymentsRepository returns every active payment whose
// schedule window contains the given date (startDate <= date and endDate,
// when present, >= date), regardless of owner.
type FindDueRecurringPaymentsRepository interface {
	FindDue(date time.Time) ([]models.RecurringPayment, error)
}

// FindActiveRecurringPaymentsByUserIdRepository returns the caller's active
// payments that have not expired by the given date. Used by the projector.
type FindActiveRecurringPaymentsByUserIdRepository interface {
	FindActiveByUserId(userId primitive.ObjectID, date time.Time) ([]models.RecurringPayment, error)
}

// FindRecurringPaymentForExpenseRepository resolves the payment an expense
// was generated from: by back-reference first, by (description-or-name, owner)
// as a fallback.
type FindRecurringPaymentForExpenseRepository interface {
	FindForExpense(expense *models.Expense) (*models.RecurringPayment, error)
}

type UpdateRecurringPaymentStartDateRepository interface {
	UpdateStartDate(paymentId primitive.ObjectID, userId primitive.ObjectID, startDate time.Time) (*models.RecurringPayment, error)
}

type UpdateRecurringPaymentStatusRepository interface {
	UpdateStatus(paymentId primitive.ObjectID, userId primitive.ObjectID, status string) (*models.RecurringPayment, error)
}

// AdvanceCheckpointRepository moves last_generated forward as a compare-and-swap:
// the write applies only while last_generated still equals expected (nil when no
// occurrence was ever generated). A lost race returns ErrConflict.
type AdvanceCheckpointRepository interface {
	Advance(paymentId primitive.ObjectID, expected *time.Time, checkpoint time.Time, expenseId primitive.ObjectID) error
}

// RollbackCheckpointRepository is the undo counterpart: it moves last_generated
// back one step, conditional on it still holding the undone occurrence's date.
type RollbackCheckpointRepository interface {
	Rollback(paymentId primitive.ObjectID, expected time.Time, checkpoint time.Time) error
}

type DeleteRecurringPaymentRepository interface {
	Delete(paymentId primitive.ObjectID, userId primitive.ObjectID) error
}
