package factory

import (
	"os"

	"github.com/pennyflow/finance-backend/internal/domain/icon"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/recurring_payment_repository"
	"github.com/pennyflow/finance-backend/internal/presentation/controllers/recurring_payment"
	"github.com/pennyflow/finance-backend/internal/service/recurring"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateRecurringPaymentController(db *mongo.Database) *recurring_payment.CreateRecurringPaymentController {
	createRepository := recurring_payment_repository.NewCreateRecurringPaymentRepository(db)
	classifier := icon.NewClassifier(icon.DefaultMappings)
	return recurring_payment.NewCreateRecurringPaymentController(createRepository, classifier)
}

func MakeGetRecurringPaymentsController(db *mongo.Database) *recurring_payment.GetRecurringPaymentsController {
	findRepository := recurring_payment_repository.NewFindRecurringPaymentsByUserIdRepository(db)
	return recurring_payment.NewGetRecurringPaymentsController(findRepository)
}

func MakeGetUpcomingPaymentsController(db *mongo.Database) *recurring_payment.GetUpcomingPaymentsController {
	findActiveRepository := recurring_payment_repository.NewFindActiveRecurringPaymentsByUserIdRepository(db)
	projector := recurring.NewUpcomingProjector(findActiveRepository)
	return recurring_payment.NewGetUpcomingPaymentsController(projector)
}

func MakeUpdateStartDateController(db *mongo.Database) *recurring_payment.UpdateStartDateController {
	updateRepository := recurring_payment_repository.NewUpdateRecurringPaymentStartDateRepository(db)
	return recurring_payment.NewUpdateStartDateController(updateRepository)
}

func MakePauseRecurringPaymentController(db *mongo.Database) *recurring_payment.PauseRecurringPaymentController {
	updateRepository := recurring_payment_repository.NewUpdateRecurringPaymentStatusRepository(db)
	return recurring_payment.NewPauseRecurringPaymentController(updateRepository)
}

func MakeResumeRecurringPaymentController(db *mongo.Database) *recurring_payment.ResumeRecurringPaymentController {
	updateRepository := recurring_payment_repository.NewUpdateRecurringPaymentStatusRepository(db)
	return recurring_payment.NewResumeRecurringPaymentController(updateRepository)
}

func MakeDeleteRecurringPaymentController(db *mongo.Database) *recurring_payment.DeleteRecurringPaymentController {
	deleteRepository := recurring_payment_repository.NewDeleteRecurringPaymentRepository(db)
	return recurring_payment.NewDeleteRecurringPaymentController(deleteRepository)
}

func MakeUndoPaymentController(db *mongo.Database) *recurring_payment.UndoPaymentController {
	undoHandler := recurring.NewUndoHandler(
		expense_repository.NewFindExpenseByIdRepository(db),
		recurring_payment_repository.NewFindRecurringPaymentForExpenseRepository(db),
		expense_repository.NewDeleteExpenseRepository(db),
		recurring_payment_repository.NewRollbackCheckpointRepository(db),
	)
	return recurring_payment.NewUndoPaymentController(undoHandler)
}

func MakeGenerateExpensesController(engine *recurring.Engine) *recurring_payment.GenerateExpensesController {
	return recurring_payment.NewGenerateExpensesController(engine)
}

func MakeExportRecurringPaymentsController(db *mongo.Database) *recurring_payment.ExportRecurringPaymentsController {
	findRepository := recurring_payment_repository.NewFindRecurringPaymentsByUserIdRepository(db)
	return recurring_payment.NewExportRecurringPaymentsController(findRepository, os.Getenv("REDIS_URL"))
}

func MakeGenerationEngine(db *mongo.Database) *recurring.Engine {
	return recurring.NewEngine(
		recurring_payment_repository.NewFindDueRecurringPaymentsRepository(db),
		recurring_payment_repository.NewAdvanceCheckpointRepository(db),
		expense_repository.NewBulkInsertExpensesRepository(db),
	)
}
