package recurring

import (
	"fmt"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpcomingWindowDays is the notification lookahead.
const UpcomingWindowDays = 3

type UpcomingPayment struct {
	models.RecurringPayment
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

// UpcomingProjector is the read-only forward projection used by notifications
// and the subscription dashboard. It never touches a checkpoint.
type UpcomingProjector struct {
	FindActivePaymentsRepository usecase.FindActiveRecurringPaymentsByUserIdRepository
}

func NewUpcomingProjector(findActivePayments usecase.FindActiveRecurringPaymentsByUserIdRepository) *UpcomingProjector {
	return &UpcomingProjector{
		FindActivePaymentsRepository: findActivePayments,
	}
}

// Upcoming returns the caller's active payments whose next unmaterialized
// occurrence falls within [today, today+window], inclusive. For a payment
// that never generated anything the start date itself is the candidate, not
// one step past it.
func (p *UpcomingProjector) Upcoming(userId primitive.ObjectID, now time.Time) ([]UpcomingPayment, error) {
	today := recurrence.Midnight(now)
	horizon := today.AddDate(0, 0, UpcomingWindowDays)

	payments, err := p.FindActivePaymentsRepository.FindActiveByUserId(userId, today)
	if err != nil {
		return nil, fmt.Errorf("finding active payments: %w", err)
	}

	upcoming := []UpcomingPayment{}
	for _, payment := range payments {
		if payment.Status != models.StatusActive {
			continue
		}

		var next time.Time
		if payment.LastGenerated != nil {
			anchor := recurrence.Midnight(*payment.LastGenerated)
			next = recurrence.NextOccurrence(payment.Frequency, payment.CustomInterval, anchor)
			if !next.After(anchor) {
				continue // inert schedule
			}
		} else {
			next = recurrence.Midnight(payment.StartDate)
		}

		if payment.EndDate != nil && recurrence.Midnight(*payment.EndDate).Before(next) {
			continue
		}

		if next.Before(today) || next.After(horizon) {
			continue
		}

		upcoming = append(upcoming, UpcomingPayment{
			RecurringPayment: payment,
			NextPaymentDate:  next,
		})
	}

	return upcoming, nil
}
