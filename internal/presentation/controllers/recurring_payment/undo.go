package recurring_payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UndoPaymentController struct {
	UndoHandler *recurring.UndoHandler
	Validate    *validator.Validate
}

func NewUndoPaymentController(undoHandler *recurring.UndoHandler) *UndoPaymentController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UndoPaymentController{
		UndoHandler: undoHandler,
		Validate:    validate,
	}
}

type UndoPaymentBody struct {
	ExpenseId string `json:"expenseId" validate:"required"`
}

// Handle deletes the expense and, when it was the latest generated occurrence,
// rolls the source payment's checkpoint back one step. Undoing an older
// occurrence leaves a gap that later generation runs will not refill.
func (c *UndoPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UndoPaymentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateError("invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateError("Expense ID required", http.StatusBadRequest)
	}

	expenseId, err := primitive.ObjectIDFromHex(body.ExpenseId)
	if err != nil {
		return helpers.CreateError("Invalid expense ID", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	err = c.UndoHandler.Undo(expenseId, userId)
	if errors.Is(err, usecase.ErrNotFound) {
		return helpers.CreateError("Expense not found", http.StatusNotFound)
	}
	if err != nil {
		return helpers.CreateError("an error occurred when undoing payment", http.StatusInternalServerError)
	}

	return helpers.CreateSuccess("Payment undone successfully", nil, http.StatusOK)
}
