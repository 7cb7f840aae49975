package recurring_payment

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetRecurringPaymentsController struct {
	FindRecurringPaymentsByUserIdRepository usecase.FindRecurringPaymentsByUserIdRepository
}

func NewGetRecurringPaymentsController(findByUserId usecase.FindRecurringPaymentsByUserIdRepository) *GetRecurringPaymentsController {
	return &GetRecurringPaymentsController{
		FindRecurringPaymentsByUserIdRepository: findByUserId,
	}
}

func (c *GetRecurringPaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	payments, err := c.FindRecurringPaymentsByUserIdRepository.FindByUserId(userId)
	if err != nil {
		return helpers.CreateError("an error occurred when listing recurring payments", http.StatusInternalServerError)
	}

	return helpers.CreateSuccess("", payments, http.StatusOK)
}
