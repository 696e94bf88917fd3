package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a stored event document. Slug is derived from Title and unique
// across the collection; Date and Time are always kept normalized
// (YYYY-MM-DD and 24-hour HH:mm).
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Overview    string             `bson:"overview" json:"overview"`
	Image       string             `bson:"image" json:"image"`
	Venue       string             `bson:"venue" json:"venue"`
	Location    string             `bson:"location" json:"location"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Mode        string             `bson:"mode" json:"mode"`
	Audience    string             `bson:"audience" json:"audience"`
	Agenda      []string           `bson:"agenda" json:"agenda"`
	Organizer   string             `bson:"organizer" json:"organizer"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
