package recurring_payment_repository

import (
	"context"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RollbackCheckpointRepository struct {
	Db *mongo.Database
}

func NewRollbackCheckpointRepository(db *mongo.Database) *RollbackCheckpointRepository {
	return &RollbackCheckpointRepository{
		Db: db,
	}
}

// Rollback moves the checkpoint back exactly one step during undo, conditional
// on it still holding the undone occurrence's date. The back-reference is
// cleared: the preceding expense's id was not retained.
func (r *RollbackCheckpointRepository) Rollback(paymentId primitive.ObjectID, expected time.Time, checkpoint time.Time) error {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{
		"_id":            paymentId,
		"last_generated": expected,
	}
	update := bson.M{
		"$set": bson.M{
			"last_generated": checkpoint,
			"updated_at":     time.Now(),
		},
		"$unset": bson.M{
			"last_generated_expense_id": "",
		},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return usecase.ErrConflict
	}

	return nil
}
