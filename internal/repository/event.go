package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulselytics/pulselytics-go/internal/model"
)

const eventCollection = "event"

// summaryLimit caps the number of per-type groups the summary returns.
const summaryLimit = 10

// EventRepository handles event persistence in the "event" collection.
type EventRepository struct {
	store *Store
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

// Insert appends an event document, assigning an event ID and creation
// time if unset.
func (r *EventRepository) Insert(ctx context.Context, event *model.Event) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	return r.store.InsertOne(ctx, eventCollection, event)
}

// CountByType groups events by type and returns the top groups by
// count, descending, capped at summaryLimit.
func (r *EventRepository) CountByType(ctx context.Context) ([]model.TypeCount, error) {
	var rows []model.TypeCount
	if err := r.store.Aggregate(ctx, eventCollection, summaryPipeline(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: summaryLimit}},
	}
}
