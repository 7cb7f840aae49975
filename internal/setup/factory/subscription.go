package factory

import (
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/recurring_payment_repository"
	"github.com/pennyflow/finance-backend/internal/presentation/controllers/subscription"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetSubscriptionDashboardController(db *mongo.Database) *subscription.GetSubscriptionDashboardController {
	findActiveRepository := recurring_payment_repository.NewFindActiveRecurringPaymentsByUserIdRepository(db)
	projector := recurring.NewUpcomingProjector(findActiveRepository)
	return subscription.NewGetSubscriptionDashboardController(findActiveRepository, projector)
}
