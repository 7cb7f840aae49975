package expense_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpenseByIdRepository struct {
	Db *mongo.Database
}

func NewFindExpenseByIdRepository(db *mongo.Database) *FindExpenseByIdRepository {
	return &FindExpenseByIdRepository{
		Db: db,
	}
}

func (r *FindExpenseByIdRepository) Find(expenseId primitive.ObjectID, userId primitive.ObjectID) (*models.Expense, error) {
	collection := r.Db.Collection("expense")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var expense models.Expense

	err := collection.FindOne(ctx, bson.M{"_id": expenseId, "user_id": userId}).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}
