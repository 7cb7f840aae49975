package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Expense struct {
	Id          primitive.ObjectID  `bson:"_id" json:"id"`
	UserId      primitive.ObjectID  `bson:"user_id" json:"userId"`
	Amount      float64             `bson:"amount" json:"amount"`
	Category    string              `bson:"category" json:"category,omitempty"`
	Description string              `bson:"description" json:"description,omitempty"`
	Date        time.Time           `bson:"date" json:"date"`
	Icon        string              `bson:"icon" json:"icon,omitempty"`
	TripId      *primitive.ObjectID `bson:"trip_id" json:"tripId,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}
