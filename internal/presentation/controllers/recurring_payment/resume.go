package recurring_payment

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResumeRecurringPaymentController struct {
	UpdateRecurringPaymentStatusRepository usecase.UpdateRecurringPaymentStatusRepository
}

func NewResumeRecurringPaymentController(updateStatus usecase.UpdateRecurringPaymentStatusRepository) *ResumeRecurringPaymentController {
	return &ResumeRecurringPaymentController{
		UpdateRecurringPaymentStatusRepository: updateStatus,
	}
}

func (c *ResumeRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	paymentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateError("Invalid payment ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	payment, err := c.UpdateRecurringPaymentStatusRepository.UpdateStatus(paymentId, userId, models.StatusActive)
	if err != nil {
		return helpers.CreateError("an error occurred when resuming subscription", http.StatusInternalServerError)
	}
	if payment == nil {
		return helpers.CreateError("Subscription not found", http.StatusNotFound)
	}

	return helpers.CreateSuccess("Subscription resumed", payment, http.StatusOK)
}
