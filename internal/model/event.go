package model

import "time"

// AnonymousUserID is recorded on events tracked without a valid token.
const AnonymousUserID = "anonymous"

// Event is the persisted analytics event document in the "event"
// collection. UserID is the token subject (email) or AnonymousUserID;
// it is never empty.
type Event struct {
	EventID    string         `bson:"event_id"`
	UserID     string         `bson:"user_id"`
	Type       string         `bson:"type"`
	Properties map[string]any `bson:"properties"`
	CreatedAt  time.Time      `bson:"created_at"`
}

// TrackEventRequest represents a POST /events payload.
type TrackEventRequest struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// TrackEventResponse acknowledges a recorded event.
type TrackEventResponse struct {
	Status string `json:"status"`
}

// TypeCount is one aggregation row: an event type and how many events
// of that type were counted.
type TypeCount struct {
	Type  string `bson:"_id"`
	Count int64  `bson:"count"`
}

// SummaryResponse represents the analytics summary. Total is the sum of
// the returned per-type counts, not a grand total over all events.
type SummaryResponse struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"byType"`
}
