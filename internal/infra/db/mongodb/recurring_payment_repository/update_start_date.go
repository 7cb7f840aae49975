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

type UpdateRecurringPaymentStartDateRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringPaymentStartDateRepository(db *mongo.Database) *UpdateRecurringPaymentStartDateRepository {
	return &UpdateRecurringPaymentStartDateRepository{
		Db: db,
	}
}

// UpdateStartDate reschedules the payment. last_generated is deliberately left
// untouched: rescheduling moves the anchor for payments that never generated,
// while generated ones keep advancing from their checkpoint.
func (r *UpdateRecurringPaymentStartDateRepository) UpdateStartDate(paymentId primitive.ObjectID, userId primitive.ObjectID, startDate time.Time) (*models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"start_date": startDate,
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
