package recurring

import (
	"fmt"
	"log"

	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UndoHandler deletes a generated expense and, when it is the most recent
// occurrence of a linked payment, rolls that payment's checkpoint back one
// step. Undoing an expense that is not the checkpoint's expense only deletes
// it; the resulting gap in history is never backfilled, because generation
// only ever walks forward from the checkpoint.
type UndoHandler struct {
	FindExpenseByIdRepository       usecase.FindExpenseByIdRepository
	FindPaymentForExpenseRepository usecase.FindRecurringPaymentForExpenseRepository
	DeleteExpenseRepository         usecase.DeleteExpenseRepository
	RollbackCheckpointRepository    usecase.RollbackCheckpointRepository
}

func NewUndoHandler(
	findExpenseById usecase.FindExpenseByIdRepository,
	findPaymentForExpense usecase.FindRecurringPaymentForExpenseRepository,
	deleteExpense usecase.DeleteExpenseRepository,
	rollbackCheckpoint usecase.RollbackCheckpointRepository,
) *UndoHandler {
	return &UndoHandler{
		FindExpenseByIdRepository:       findExpenseById,
		FindPaymentForExpenseRepository: findPaymentForExpense,
		DeleteExpenseRepository:         deleteExpense,
		RollbackCheckpointRepository:    rollbackCheckpoint,
	}
}

// Undo removes the expense identified by expenseId on behalf of userId. An
// absent expense and another user's expense are both reported as
// usecase.ErrNotFound. A failed payment lookup or checkpoint rollback is
// logged and does not fail the deletion.
func (h *UndoHandler) Undo(expenseId primitive.ObjectID, userId primitive.ObjectID) error {
	expense, err := h.FindExpenseByIdRepository.Find(expenseId, userId)
	if err != nil {
		return fmt.Errorf("finding expense: %w", err)
	}
	if expense == nil {
		return usecase.ErrNotFound
	}

	payment, err := h.FindPaymentForExpenseRepository.FindForExpense(expense)
	if err != nil {
		log.Printf("undo expense %s: payment lookup failed: %v", expenseId.Hex(), err)
		payment = nil
	}

	if err := h.DeleteExpenseRepository.Delete(expenseId, userId); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if payment == nil || payment.LastGenerated == nil {
		return nil
	}

	checkpoint := recurrence.Midnight(*payment.LastGenerated)
	if !checkpoint.Equal(recurrence.Midnight(expense.Date)) {
		return nil
	}

	previous := recurrence.PreviousOccurrence(payment.Frequency, payment.CustomInterval, checkpoint)
	if err := h.RollbackCheckpointRepository.Rollback(payment.Id, checkpoint, previous); err != nil {
		log.Printf("undo expense %s: rolling back checkpoint of payment %s: %v",
			expenseId.Hex(), payment.Id.Hex(), err)
	}

	return nil
}
