package expense_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

func (r *DeleteExpenseRepository) Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("expense")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": expenseId, "user_id": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usecase.ErrNotFound
	}

	return nil
}
