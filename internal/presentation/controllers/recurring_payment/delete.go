package recurring_payment

import (
	"errors"
	"net/http"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteRecurringPaymentController struct {
	DeleteRecurringPaymentRepository usecase.DeleteRecurringPaymentRepository
}

func NewDeleteRecurringPaymentController(deleteRecurringPayment usecase.DeleteRecurringPaymentRepository) *DeleteRecurringPaymentController {
	return &DeleteRecurringPaymentController{
		DeleteRecurringPaymentRepository: deleteRecurringPayment,
	}
}

func (c *DeleteRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	paymentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateError("Invalid payment ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	err = c.DeleteRecurringPaymentRepository.Delete(paymentId, userId)
	if errors.Is(err, usecase.ErrNotFound) {
		return helpers.CreateError("Recurring payment not found", http.StatusNotFound)
	}
	if err != nil {
		return helpers.CreateError("an error occurred when deleting recurring payment", http.StatusInternalServerError)
	}

	return helpers.CreateSuccess("Recurring payment deleted", nil, http.StatusOK)
}
