package recurring_payment

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
)

// GenerateExpensesController is the ad-hoc counterpart of the daily scheduler
// trigger. The run is fire-and-forget; its outcome is only logged.
type GenerateExpensesController struct {
	Engine *recurring.Engine
}

func NewGenerateExpensesController(engine *recurring.Engine) *GenerateExpensesController {
	return &GenerateExpensesController{
		Engine: engine,
	}
}

func (c *GenerateExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	go c.Engine.RunNow()

	return helpers.CreateSuccess("Expense generation started", nil, http.StatusAccepted)
}
