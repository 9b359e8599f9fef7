package entities

import (
	"time"

	"github.com/google/uuid"
)

// SearchEvent represents a single discovery interaction for analytics.
type SearchEvent struct {
	ID            string  `json:"id" db:"id"`
	Region        string  `json:"region" db:"region"`
	Query         string  `json:"query" db:"query"`
	ConditionID   string  `json:"condition_id,omitempty" db:"condition_id"`
	SortKey       string  `json:"sort_key" db:"sort_key"`
	EmergencyOnly bool    `json:"emergency_only" db:"emergency_only"`
	ResultCount   int     `json:"result_count" db:"result_count"`
	DroppedCount  int     `json:"dropped_count" db:"dropped_count"`
	LatencyMs     int     `json:"latency_ms" db:"latency_ms"`
	UserLatitude  float64 `json:"user_latitude,omitempty" db:"user_latitude"`
	UserLongitude float64 `json:"user_longitude,omitempty" db:"user_longitude"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewSearchEvent creates a search event with a fresh ID and timestamp
func NewSearchEvent(region string, criteria SearchCriteria, resultCount, droppedCount int) *SearchEvent {
	ev := &SearchEvent{
		ID:            uuid.New().String(),
		Region:        region,
		Query:         criteria.Query,
		SortKey:       string(criteria.SortKey),
		EmergencyOnly: criteria.EmergencyOnly,
		ResultCount:   resultCount,
		DroppedCount:  droppedCount,
		CreatedAt:     time.Now(),
	}
	if criteria.Condition != nil {
		ev.ConditionID = criteria.Condition.ID
	}
	return ev
}
