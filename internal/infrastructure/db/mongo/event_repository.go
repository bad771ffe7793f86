package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

const collectionEvents = "events"

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(collectionEvents)}
}

// Create inserts a new event document. The ID is generated here so the
// domain layer stays free of driver types.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

// List returns events ordered by start time. When sportID is non-empty, only
// events for that sport are returned.
func (r *EventRepository) List(ctx context.Context, sportID string) ([]domain.Event, error) {
	filter := bson.M{}
	if sportID != "" {
		filter["sport_id"] = sportID
	}

	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var events []domain.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// Save replaces the full event document.
func (r *EventRepository) Save(ctx context.Context, event *domain.Event) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
