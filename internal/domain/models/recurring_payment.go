package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyCustom  = "custom" // every CustomInterval days
)

const (
	StatusActive = "active"
	StatusPaused = "paused"
)

// DefaultCategory labels expenses materialized from a payment that has no
// category of its own.
const DefaultCategory = "Recurring"

type RecurringPayment struct {
	Id             primitive.ObjectID `bson:"_id" json:"id"`
	UserId         primitive.ObjectID `bson:"user_id" json:"userId"`
	Name           string             `bson:"name" json:"name"`
	Amount         float64            `bson:"amount" json:"amount"`
	Frequency      string             `bson:"frequency" json:"frequency"` // daily | weekly | monthly | yearly | custom
	CustomInterval int                `bson:"custom_interval" json:"customInterval"`
	StartDate      time.Time          `bson:"start_date" json:"startDate"`
	EndDate        *time.Time         `bson:"end_date" json:"endDate,omitempty"`
	Category       string             `bson:"category" json:"category,omitempty"`
	Description    string             `bson:"description" json:"description,omitempty"`
	Icon           string             `bson:"icon" json:"icon,omitempty"`

	// LastGenerated is the date of the most recently materialized occurrence;
	// nil until the first one is generated.
	LastGenerated *time.Time `bson:"last_generated" json:"lastGenerated,omitempty"`

	// LastGeneratedExpenseId points at the expense created for LastGenerated.
	// Lookup convenience for undo, not an ownership edge.
	LastGeneratedExpenseId *primitive.ObjectID `bson:"last_generated_expense_id" json:"lastGeneratedExpenseId,omitempty"`

	Status    string    `bson:"status" json:"status"` // active | paused
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
