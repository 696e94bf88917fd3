package mongodb

import (
	"context"
	"fmt"
	"time"

	"evently/internal/models"
	"evently/internal/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking runs the schema hooks and inserts a booking for the event
// stored under eventSlug. The lookup doubles as the referential check: a
// booking is never written for an event that does not exist.
func (s *Storage) CreateBooking(ctx context.Context, eventSlug string, input schema.BookingInput) (*models.Booking, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.GetEventBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		EventID:   event.ID,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err = s.bookings.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &booking, nil
}

// GetEventBookings returns the bookings of the event stored under eventSlug,
// newest first.
func (s *Storage) GetEventBookings(ctx context.Context, eventSlug string) ([]models.Booking, error) {
	event, err := s.GetEventBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.bookings.Find(ctx, bson.M{"event_id": event.ID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	var bookings []models.Booking
	if err = cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}
