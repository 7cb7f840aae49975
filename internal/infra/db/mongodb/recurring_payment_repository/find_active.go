package recurring_payment_repository

import (
	"context"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindActiveRecurringPaymentsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindActiveRecurringPaymentsByUserIdRepository(db *mongo.Database) *FindActiveRecurringPaymentsByUserIdRepository {
	return &FindActiveRecurringPaymentsByUserIdRepository{
		Db: db,
	}
}

func (r *FindActiveRecurringPaymentsByUserIdRepository) FindActiveByUserId(userId primitive.ObjectID, date time.Time) ([]models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{
		"user_id": userId,
		"status":  models.StatusActive,
		"$or": []bson.M{
			{"end_date": nil},
			{"end_date": bson.M{"$gte": date}},
		},
	}

	cursor, err := collection.Find(ctx, filter)
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
