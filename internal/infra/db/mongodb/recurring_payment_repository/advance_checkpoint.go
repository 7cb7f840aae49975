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

type AdvanceCheckpointRepository struct {
	Db *mongo.Database
}

func NewAdvanceCheckpointRepository(db *mongo.Database) *AdvanceCheckpointRepository {
	return &AdvanceCheckpointRepository{
		Db: db,
	}
}

// Advance is the engine's serialization point: the write only applies while
// last_generated still holds the value the engine read at loop start, so two
// overlapping runs cannot both claim the same occurrences.
func (r *AdvanceCheckpointRepository) Advance(paymentId primitive.ObjectID, expected *time.Time, checkpoint time.Time, expenseId primitive.ObjectID) error {
	collection := r.Db.Collection("recurring_payment")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{
		"_id":            paymentId,
		"last_generated": expected,
	}
	update := bson.M{"$set": bson.M{
		"last_generated":            checkpoint,
		"last_generated_expense_id": expenseId,
		"updated_at":                time.Now(),
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return usecase.ErrConflict
	}

	return nil
}
