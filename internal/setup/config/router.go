package config

import (
	"net/http"

	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"github.com/pennyflow/finance-backend/internal/setup/middlewares"
	"github.com/pennyflow/finance-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, engine *recurring.Engine) {
	apiServer := http.NewServeMux()
	routes.RecurringPaymentRoutes(apiServer, db, engine)
	routes.SubscriptionRoutes(apiServer, db)

	server.Handle("/api/v1/", http.StripPrefix("/api/v1", middlewares.NoStoreHeader(apiServer)))
}
