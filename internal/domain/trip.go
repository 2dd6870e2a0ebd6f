// Package domain contains the core data types for the trip planner.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (itinerary, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the persisted trip document: a titled Timeline.
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title" validate:"required"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Timeline  Timeline   `json:"timeline"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Version increases by one on every write. Timeline edits only commit
	// against the version they were computed from.
	Version int64 `json:"version"`
}
