package subscription

import (
	"net/http"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetSubscriptionDashboardController struct {
	FindActiveRecurringPaymentsByUserIdRepository usecase.FindActiveRecurringPaymentsByUserIdRepository
	Projector                                     *recurring.UpcomingProjector
}

func NewGetSubscriptionDashboardController(
	findActiveByUserId usecase.FindActiveRecurringPaymentsByUserIdRepository,
	projector *recurring.UpcomingProjector,
) *GetSubscriptionDashboardController {
	return &GetSubscriptionDashboardController{
		FindActiveRecurringPaymentsByUserIdRepository: findActiveByUserId,
		Projector: projector,
	}
}

type upcomingEntry struct {
	Id              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Amount          float64            `json:"amount"`
	NextPaymentDate time.Time          `json:"nextPaymentDate"`
}

type dashboardData struct {
	TotalActive int             `json:"totalActive"`
	TotalAmount float64         `json:"totalAmount"`
	Upcoming    []upcomingEntry `json:"upcoming"`
}

func (c *GetSubscriptionDashboardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	now := time.Now()

	active, err := c.FindActiveRecurringPaymentsByUserIdRepository.FindActiveByUserId(userId, recurrence.Midnight(now))
	if err != nil {
		return helpers.CreateError("an error occurred when loading subscriptions", http.StatusInternalServerError)
	}

	upcoming, err := c.Projector.Upcoming(userId, now)
	if err != nil {
		return helpers.CreateError("an error occurred when projecting upcoming payments", http.StatusInternalServerError)
	}

	data := dashboardData{
		TotalActive: len(active),
		Upcoming:    make([]upcomingEntry, 0, len(upcoming)),
	}
	for _, payment := range active {
		if payment.Status == models.StatusActive {
			data.TotalAmount += payment.Amount
		}
	}
	for _, entry := range upcoming {
		data.Upcoming = append(data.Upcoming, upcomingEntry{
			Id:              entry.Id,
			Name:            entry.Name,
			Amount:          entry.Amount,
			NextPaymentDate: entry.NextPaymentDate,
		})
	}

	return helpers.CreateSuccess("", data, http.StatusOK)
}
