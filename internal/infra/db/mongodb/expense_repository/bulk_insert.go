package expense_repository

import (
	"context"
	"errors"
	"log"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BulkInsertExpensesRepository struct {
	Db *mongo.Database
}

func NewBulkInsertExpensesRepository(db *mongo.Database) *BulkInsertExpensesRepository {
	return &BulkInsertExpensesRepository{
		Db: db,
	}
}

// BulkInsert writes the batch unordered: a rejected document does not prevent
// the rest from landing. Per-document failures are logged and not surfaced;
// only a wholesale failure is.
func (r *BulkInsertExpensesRepository) BulkInsert(expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	collection := r.Db.Collection("expense")

	documents := make([]interface{}, len(expenses))
	for i := range expenses {
		documents[i] = expenses[i]
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.InsertMany().SetOrdered(false)
	_, err := collection.InsertMany(ctx, documents, opts)
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) {
			for _, writeErr := range bulkErr.WriteErrors {
				log.Printf("expense insert rejected at index %d: %s", writeErr.Index, writeErr.Message)
			}
			return nil
		}
		return err
	}

	return nil
}
