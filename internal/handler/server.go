// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, itinerary.go, etc.) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/tabiplan/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer defines the timeline edits exposed over HTTP.
type ItineraryServicer interface {
	Pace(ctx context.Context, tripID uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error)
	OverrideDay(ctx context.Context, tripID uuid.UUID, o domain.DayOverride) (domain.Trip, error)
	RegenerateDay(ctx context.Context, tripID uuid.UUID, req domain.GenerationRequest) (domain.Trip, error)
}

// ExportServicer produces the flat export table.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// StatsServicer produces aggregate trip statistics.
type StatsServicer interface {
	Stats(ctx context.Context) (domain.TripStats, error)
}

// Server holds the services behind every API endpoint.
// Wire it in main.go via Server.Routes.
type Server struct {
	trips     TripServicer
	itinerary ItineraryServicer
	export    ExportServicer
	stats     StatsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, itinerary ItineraryServicer, export ExportServicer, stats StatsServicer) *Server {
	return &Server{trips: trips, itinerary: itinerary, export: export, stats: stats}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
