// Package recurring holds the catch-up generation engine, the undo handler
// and the upcoming projector for recurring payments.
package recurring

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/icon"
	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Engine materializes missed occurrences of every due payment as expenses and
// advances each payment's checkpoint.
type Engine struct {
	FindDuePaymentsRepository    usecase.FindDueRecurringPaymentsRepository
	AdvanceCheckpointRepository  usecase.AdvanceCheckpointRepository
	BulkInsertExpensesRepository usecase.BulkInsertExpensesRepository
}

func NewEngine(
	findDuePayments usecase.FindDueRecurringPaymentsRepository,
	advanceCheckpoint usecase.AdvanceCheckpointRepository,
	bulkInsertExpenses usecase.BulkInsertExpensesRepository,
) *Engine {
	return &Engine{
		FindDuePaymentsRepository:    findDuePayments,
		AdvanceCheckpointRepository:  advanceCheckpoint,
		BulkInsertExpensesRepository: bulkInsertExpenses,
	}
}

// RunNow is the zero-argument entry point for the scheduler and the HTTP
// trigger; the outcome is only logged.
func (e *Engine) RunNow() {
	if err := e.Run(time.Now()); err != nil {
		log.Println("expense generation run failed:", err)
	}
}

// Run brings every active, in-window payment up to date as of now. The
// checkpoint is advanced per payment with a compare-and-swap before that
// payment's expenses are staged, so an overlapping run that loses the swap
// inserts nothing. Re-running at the same now is a no-op. A single payment's
// failure is logged and does not abort the rest.
func (e *Engine) Run(now time.Time) error {
	today := recurrence.Midnight(now)

	payments, err := e.FindDuePaymentsRepository.FindDue(today)
	if err != nil {
		return fmt.Errorf("finding due payments: %w", err)
	}

	var batch []models.Expense
	var conflicts, failures int

	for i := range payments {
		payment := &payments[i]

		expenses := missedOccurrences(payment, today)
		if len(expenses) == 0 {
			continue
		}

		checkpoint := expenses[len(expenses)-1].Date
		err := e.AdvanceCheckpointRepository.Advance(payment.Id, payment.LastGenerated, checkpoint, expenses[len(expenses)-1].Id)
		if errors.Is(err, usecase.ErrConflict) {
			conflicts++
			log.Printf("payment %s: checkpoint already advanced by a concurrent run, skipping", payment.Id.Hex())
			continue
		}
		if err != nil {
			failures++
			log.Printf("payment %s: advancing checkpoint: %v", payment.Id.Hex(), err)
			continue
		}

		batch = append(batch, expenses...)
	}

	if len(batch) > 0 {
		if err := e.BulkInsertExpensesRepository.BulkInsert(batch); err != nil {
			log.Println("inserting generated expenses:", err)
			return fmt.Errorf("inserting generated expenses: %w", err)
		}
	}

	log.Printf("expense generation: %d payments due, %d expenses created, %d conflicts, %d failures",
		len(payments), len(batch), conflicts, failures)

	return nil
}

// missedOccurrences walks the payment's schedule from its checkpoint (or start
// date) up to today and returns one expense per missed occurrence, dates in
// chronological order, ids pre-generated for the checkpoint back-reference.
func missedOccurrences(payment *models.RecurringPayment, today time.Time) []models.Expense {
	if payment.Status != models.StatusActive {
		return nil
	}

	start := recurrence.Midnight(payment.StartDate)
	if start.After(today) {
		return nil
	}

	var end *time.Time
	if payment.EndDate != nil {
		d := recurrence.Midnight(*payment.EndDate)
		if d.Before(today) {
			return nil
		}
		end = &d
	}

	cursor := start
	if payment.LastGenerated != nil {
		cursor = recurrence.Midnight(*payment.LastGenerated)
	}

	var expenses []models.Expense
	for {
		next := recurrence.NextOccurrence(payment.Frequency, payment.CustomInterval, cursor)
		if !next.After(cursor) {
			// inert schedule (unknown frequency or custom without interval)
			break
		}
		if next.After(today) {
			break
		}
		if end != nil && end.Before(next) {
			break
		}

		expenses = append(expenses, expenseFor(payment, next))
		cursor = next
	}

	return expenses
}

func expenseFor(payment *models.RecurringPayment, date time.Time) models.Expense {
	description := payment.Description
	if description == "" {
		description = payment.Name
	}

	category := payment.Category
	if category == "" {
		category = models.DefaultCategory
	}

	glyph := payment.Icon
	if glyph == "" {
		glyph = icon.DefaultGlyph
	}

	now := time.Now()

	return models.Expense{
		Id:          primitive.NewObjectID(),
		UserId:      payment.UserId,
		Amount:      payment.Amount,
		Category:    category,
		Description: description,
		Date:        date,
		Icon:        glyph,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
