package setup

import (
	"net/http"
	"os"

	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"github.com/pennyflow/finance-backend/internal/setup/config"
	"github.com/pennyflow/finance-backend/internal/setup/factory"
)

func Server() (*http.ServeMux, *recurring.Engine) {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB"))
	engine := factory.MakeGenerationEngine(db)

	config.SetupRoutes(mux, db, engine)

	return mux, engine
}
