package recurring_payment_repository

import (
	"context"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringPaymentForExpenseRepository struct {
	Db *mongo.Database
}

func NewFindRecurringPaymentForExpenseRepository(db *mongo.Database) *FindRecurringPaymentForExpenseRepository {
	return &FindRecurringPaymentForExpenseRepository{
		Db: db,
	}
}

// FindForExpense resolves the payment a generated expense came from. The
// back-reference is authoritative; matching on the expense's description is
// the fallback for documents written before the back-reference existed, and
// can misfire on a manual expense that shares the name and owner.
func (r *FindRecurringPaymentForExpenseRepository) FindForExpense(expense *models.Expense) (*models.RecurringPayment, error) {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var payment models.RecurringPayment

	err := collection.FindOne(ctx, bson.M{
		"user_id":                   expense.UserId,
		"last_generated_expense_id": expense.Id,
	}).Decode(&payment)
	if err == nil {
		return &payment, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	err = collection.FindOne(ctx, bson.M{
		"user_id": expense.UserId,
		"$or": []bson.M{
			{"name": expense.Description},
			{"description": expense.Description},
		},
	}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}
