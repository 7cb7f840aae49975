package recurring_payment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateStartDateController struct {
	UpdateRecurringPaymentStartDateRepository usecase.UpdateRecurringPaymentStartDateRepository
	Validate                                  *validator.Validate
}

func NewUpdateStartDateController(updateStartDate usecase.UpdateRecurringPaymentStartDateRepository) *UpdateStartDateController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateStartDateController{
		UpdateRecurringPaymentStartDateRepository: updateStartDate,
		Validate: validate,
	}
}

type UpdateStartDateBody struct {
	NewStartDate string `json:"newStartDate" validate:"required,datetime=2006-01-02"`
}

func (c *UpdateStartDateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	paymentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateError("Invalid payment ID format", http.StatusBadRequest)
	}

	var body UpdateStartDateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateError("invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateError(helpers.GetErrorMessages(c.Validate, err), http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	startDate, _ := time.Parse("2006-01-02", body.NewStartDate)

	payment, err := c.UpdateRecurringPaymentStartDateRepository.UpdateStartDate(paymentId, userId, startDate)
	if err != nil {
		return helpers.CreateError("an error occurred when updating start date", http.StatusInternalServerError)
	}
	if payment == nil {
		return helpers.CreateError("Recurring payment not found", http.StatusNotFound)
	}

	return helpers.CreateSuccess("Start date updated", payment, http.StatusOK)
}
