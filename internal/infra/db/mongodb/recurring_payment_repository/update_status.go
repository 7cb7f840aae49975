package recurring_payment_repository

import (
	"context"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateRecurringPaymentStatusRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringPaymentStatusRepository(db *mongo.Database) *UpdateRecurringPaymentStatusRepository {
	return &UpdateRecurringPaymentStatusRepository{
		Db: db,
	}
}

func (r *UpdateRecurringPaymentStatusRepository) UpdateStatus(paymentId primitive.ObjectID, userId primitive.ObjectID, status string) (*models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.RecurringPayment
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": paymentId, "user_id": userId}, update, opts).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}
