package mongodb

import (
	"context"
	"fmt"

	"evently/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// Storage owns the mongo client. It is created once in main and injected
// into the handlers; there is no package-level connection state.
type Storage struct {
	client   *mongo.Client
	events   *mongo.Collection
	bookings *mongo.Collection
}

func New(ctx context.Context, dbCfg *config.Database) (*Storage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dbCfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db := client.Database(dbCfg.Name)

	s := &Storage{
		client:   client,
		events:   db.Collection(eventsCollection),
		bookings: db.Collection(bookingsCollection),
	}

	if err = s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return s, nil
}

// ensureIndexes keeps slug uniqueness in the database rather than in
// application code alone.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}},
	})

	return err
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
