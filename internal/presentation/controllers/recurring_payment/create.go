package recurring_payment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/icon"
	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/recurrence"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecurringPaymentController struct {
	CreateRecurringPaymentRepository usecase.CreateRecurringPaymentRepository
	Classifier                       *icon.Classifier
	Validate                         *validator.Validate
}

func NewCreateRecurringPaymentController(
	createRecurringPayment usecase.CreateRecurringPaymentRepository,
	classifier *icon.Classifier,
) *CreateRecurringPaymentController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecurringPaymentController{
		CreateRecurringPaymentRepository: createRecurringPayment,
		Classifier:                       classifier,
		Validate:                         validate,
	}
}

type CreateRecurringPaymentBody struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Amount         *float64 `json:"amount" validate:"required,gte=0"`
	Frequency      string   `json:"frequency" validate:"omitempty,oneof=daily weekly monthly yearly custom"`
	CustomInterval int      `json:"customInterval" validate:"omitempty,min=1"`
	StartDate      string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Category       string   `json:"category" validate:"omitempty,max=100"`
	Description    string   `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecurringPaymentBody
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

	frequency := body.Frequency
	if frequency == "" {
		frequency = models.FrequencyMonthly
	}

	interval := body.CustomInterval
	if interval == 0 {
		interval = 1
	}
	if frequency == models.FrequencyCustom && body.CustomInterval < 1 {
		return helpers.CreateError("customInterval is required for custom frequency", http.StatusBadRequest)
	}

	startDate := recurrence.Midnight(time.Now())
	if body.StartDate != "" {
		parsed, _ := time.Parse("2006-01-02", body.StartDate)
		startDate = parsed
	}

	var endDate *time.Time
	if body.EndDate != "" {
		parsed, _ := time.Parse("2006-01-02", body.EndDate)
		endDate = &parsed
	}

	payment, err := c.CreateRecurringPaymentRepository.Create(&models.RecurringPayment{
		UserId:         userId,
		Name:           body.Name,
		Amount:         *body.Amount,
		Frequency:      frequency,
		CustomInterval: interval,
		StartDate:      startDate,
		EndDate:        endDate,
		Category:       body.Category,
		Description:    body.Description,
		Icon:           c.Classifier.Classify(body.Name),
		Status:         models.StatusActive,
	})
	if err != nil {
		return helpers.CreateError("an error occurred when creating recurring payment", http.StatusInternalServerError)
	}

	return helpers.CreateSuccess("Recurring payment added", payment, http.StatusCreated)
}
