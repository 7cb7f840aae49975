package recurring_payment_repository

import (
	"context"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecurringPaymentRepository struct {
	Db *mongo.Database
}

func NewCreateRecurringPaymentRepository(db *mongo.Database) *CreateRecurringPaymentRepository {
	return &CreateRecurringPaymentRepository{
		Db: db,
	}
}

func (r *CreateRecurringPaymentRepository) Create(payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	payment.Id = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	return payment, nil
}
