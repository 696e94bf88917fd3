package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking references an existing Event. Email is stored trimmed and
// lowercased.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
