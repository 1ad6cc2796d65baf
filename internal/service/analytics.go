package service

import (
	"context"
	"errors"

	"github.com/pulselytics/pulselytics-go/internal/model"
)

var (
	ErrTypeRequired = errors.New("event type is required")
)

// EventStore is the persistence surface AnalyticsService depends on.
// It is satisfied by *repository.EventRepository and by test fakes.
type EventStore interface {
	Insert(ctx context.Context, event *model.Event) error
	CountByType(ctx context.Context) ([]model.TypeCount, error)
}

// AnalyticsService records events and computes the per-type summary.
type AnalyticsService struct {
	events EventStore
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(events EventStore) *AnalyticsService {
	return &AnalyticsService{events: events}
}

// Track records one event attributed to userID. An empty userID falls
// back to the anonymous identity, so stored events never lack an actor.
func (s *AnalyticsService) Track(ctx context.Context, userID string, req model.TrackEventRequest) error {
	if req.Type == "" {
		return ErrTypeRequired
	}
	if userID == "" {
		userID = model.AnonymousUserID
	}

	props := req.Properties
	if props == nil {
		props = map[string]any{}
	}

	return s.events.Insert(ctx, &model.Event{
		UserID:     userID,
		Type:       req.Type,
		Properties: props,
	})
}

// Summary aggregates events by type. Total is the sum of the counts in
// the returned groups only; with more than ten distinct types it is
// smaller than the grand total.
func (s *AnalyticsService) Summary(ctx context.Context) (model.SummaryResponse, error) {
	rows, err := s.events.CountByType(ctx)
	if err != nil {
		return model.SummaryResponse{}, err
	}

	byType := make(map[string]int64, len(rows))
	var total int64
	for _, row := range rows {
		byType[row.Type] = row.Count
		total += row.Count
	}

	return model.SummaryResponse{Total: total, ByType: byType}, nil
}
