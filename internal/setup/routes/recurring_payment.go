package routes

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"github.com/pennyflow/finance-backend/internal/setup/adapters"
	"github.com/pennyflow/finance-backend/internal/setup/factory"
	"github.com/pennyflow/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func RecurringPaymentRoutes(server *http.ServeMux, db *mongo.Database, engine *recurring.Engine) {
	server.Handle("POST /recurring-payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecurringPaymentController(db)),
	))
	server.Handle("GET /recurring-payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecurringPaymentsController(db)),
	))
	server.Handle("GET /recurring-payments/upcoming", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetUpcomingPaymentsController(db)),
	))
	server.Handle("GET /recurring-payments/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportRecurringPaymentsController(db)),
	))
	server.Handle("PUT /recurring-payments/{id}/update-date", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateStartDateController(db)),
	))
	server.Handle("PUT /recurring-payments/{id}/pause", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakePauseRecurringPaymentController(db)),
	))
	server.Handle("PUT /recurring-payments/{id}/resume", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeResumeRecurringPaymentController(db)),
	))
	server.Handle("DELETE /recurring-payments/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecurringPaymentController(db)),
	))
	server.Handle("POST /recurring-payments/undo", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUndoPaymentController(db)),
	))
	server.Handle("POST /recurring-payments/generate", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGenerateExpensesController(engine)),
	))
}
