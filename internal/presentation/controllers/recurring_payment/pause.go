package recurring_payment

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PauseRecurringPaymentController struct {
	UpdateRecurringPaymentStatusRepository usecase.UpdateRecurringPaymentStatusRepository
}

func NewPauseRecurringPaymentController(updateStatus usecase.UpdateRecurringPaymentStatusRepository) *PauseRecurringPaymentController {
	return &PauseRecurringPaymentController{
		UpdateRecurringPaymentStatusRepository: updateStatus,
	}
}

func (c *PauseRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	paymentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateError("Invalid payment ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	payment, err := c.UpdateRecurringPaymentStatusRepository.UpdateStatus(paymentId, userId, models.StatusPaused)
	if err != nil {
		return helpers.CreateError("an error occurred when pausing subscription", http.StatusInternalServerError)
	}
	if payment == nil {
		return helpers.CreateError("Subscription not found", http.StatusNotFound)
	}

	return helpers.CreateSuccess("Subscription paused", payment, http.StatusOK)
}
