package service

import (
	"context"
	"fmt"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/repo"
)

// StatsService reports aggregate figures over all stored trips.
type StatsService struct {
	trips repo.TripRepo
}

// NewStatsService constructs a StatsService backed by the provided repo.
func NewStatsService(trips repo.TripRepo) *StatsService {
	return &StatsService{trips: trips}
}

// Stats summarizes every trip.
func (s *StatsService) Stats(ctx context.Context) (domain.TripStats, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return domain.TripStats{}, fmt.Errorf("service.StatsService.Stats: %w", err)
	}
	return domain.Summarize(trips), nil
}
