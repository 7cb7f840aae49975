package recurring_payment_repository

import (
	"context"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindDueRecurringPaymentsRepository struct {
	Db *mongo.Database
}

func NewFindDueRecurringPaymentsRepository(db *mongo.Database) *FindDueRecurringPaymentsRepository {
	return &FindDueRecurringPaymentsRepository{
		Db: db,
	}
}

// FindDue returns every active payment whose schedule window contains date,
// across all users. The generation engine runs over the whole collection.
func (r *FindDueRecurringPaymentsRepository) FindDue(date time.Time) ([]models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{
		"status":     models.StatusActive,
		"start_date": bson.M{"$lte": date},
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
