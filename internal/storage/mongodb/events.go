package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evently/internal/models"
	"evently/internal/schema"
	"evently/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateEvent runs the schema hooks and inserts a new event. The slug must
// not collide with an existing one.
func (s *Storage) CreateEvent(ctx context.Context, input schema.EventInput) (*models.Event, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.events.CountDocuments(ctx, bson.M{"slug": input.Slug})
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if count > 0 {
		return nil, storage.ErrSlugTaken
	}

	now := time.Now().UTC()
	event := models.Event{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Overview:    input.Overview,
		Image:       input.Image,
		Venue:       input.Venue,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Mode:        input.Mode,
		Audience:    input.Audience,
		Agenda:      input.Agenda,
		Organizer:   input.Organizer,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err = s.events.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrSlugTaken
		}

		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event

	err := s.events.FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// GetAllEvents returns every event, soonest first.
func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "time", Value: 1},
	})

	cur, err := s.events.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	var events []models.Event
	if err = cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	return events, nil
}

// UpdateEvent replaces the event stored under slug after re-running the
// schema hooks. A title change re-derives the slug; moving onto an existing
// one is rejected.
func (s *Storage) UpdateEvent(ctx context.Context, slug string, input schema.EventInput) (*models.Event, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Slug != current.Slug {
		count, err := s.events.CountDocuments(ctx, bson.M{"slug": input.Slug})
		if err != nil {
			return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if count > 0 {
			return nil, storage.ErrSlugTaken
		}
	}

	event := models.Event{
		ID:          current.ID,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Overview:    input.Overview,
		Image:       input.Image,
		Venue:       input.Venue,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Mode:        input.Mode,
		Audience:    input.Audience,
		Agenda:      input.Agenda,
		Organizer:   input.Organizer,
		Tags:        input.Tags,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if _, err = s.events.ReplaceOne(ctx, bson.M{"_id": current.ID}, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrSlugTaken
		}

		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes the event and its bookings.
func (s *Storage) DeleteEvent(ctx context.Context, slug string) error {
	event, err := s.GetEventBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if _, err = s.events.DeleteOne(ctx, bson.M{"_id": event.ID}); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if _, err = s.bookings.DeleteMany(ctx, bson.M{"event_id": event.ID}); err != nil {
		return fmt.Errorf("failed to delete event bookings: %w", err)
	}

	return nil
}
