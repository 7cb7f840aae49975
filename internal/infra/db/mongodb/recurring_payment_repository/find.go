package recurring_payment_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecurringPaymentsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringPaymentsByUserIdRepository(db *mongo.Database) *FindRecurringPaymentsByUserIdRepository {
	return &FindRecurringPaymentsByUserIdRepository{
		Db: db,
	}
}

func (r *FindRecurringPaymentsByUserIdRepository) FindByUserId(userId primitive.ObjectID) ([]models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.RecurringPayment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}
