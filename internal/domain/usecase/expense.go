package usecase

import (
	"github.com/pennyflow/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BulkInsertExpensesRepository inserts a batch unordered: one failed document
// must not prevent the others from being written.
type BulkInsertExpensesRepository interface {
	BulkInsert(expenses []models.Expense) error
}

type FindExpenseByIdRepository interface {
	Find(expenseId primitive.ObjectID, userId primitive.ObjectID) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error
}
