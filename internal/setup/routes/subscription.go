package routes

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/setup/adapters"
	"github.com/pennyflow/finance-backend/internal/setup/factory"
	"github.com/pennyflow/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func SubscriptionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /subscriptions/dashboard", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSubscriptionDashboardController(db)),
	))
}
