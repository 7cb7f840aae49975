package recurring_payment

import (
	"net/http"
	"time"

	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetUpcomingPaymentsController struct {
	Projector *recurring.UpcomingProjector
}

func NewGetUpcomingPaymentsController(projector *recurring.UpcomingProjector) *GetUpcomingPaymentsController {
	return &GetUpcomingPaymentsController{
		Projector: projector,
	}
}

func (c *GetUpcomingPaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	upcoming, err := c.Projector.Upcoming(userId, time.Now())
	if err != nil {
		return helpers.CreateError("an error occurred when fetching upcoming payments", http.StatusInternalServerError)
	}

	return helpers.CreateSuccess("", upcoming, http.StatusOK)
}
