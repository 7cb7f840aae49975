package recurring_payment_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringPaymentByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringPaymentByIdRepository(db *mongo.Database) *FindRecurringPaymentByIdRepository {
	return &FindRecurringPaymentByIdRepository{
		Db: db,
	}
}

func (r *FindRecurringPaymentByIdRepository) Find(paymentId primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var payment models.RecurringPayment

	err := collection.FindOne(ctx, bson.M{"_id": paymentId, "user_id": userId}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}
