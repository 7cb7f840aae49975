package recurring_payment_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecurringPaymentRepository struct {
	Db *mongo.Database
}

func NewDeleteRecurringPaymentRepository(db *mongo.Database) *DeleteRecurringPaymentRepository {
	return &DeleteRecurringPaymentRepository{
		Db: db,
	}
}

func (r *DeleteRecurringPaymentRepository) Delete(paymentId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": paymentId, "user_id": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usecase.ErrNotFound
	}

	return nil
}
