package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/generation"
	"github.com/tabiplan/backend/internal/itinerary"
	"github.com/tabiplan/backend/internal/repo"
)

// ActivityGenerator returns the raw response body of the activity-generation
// service for one day. *generation.Client satisfies it.
type ActivityGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) ([]byte, error)
}

// ItineraryService loads a trip, runs one itinerary edit on its timeline and
// persists the result.
type ItineraryService struct {
	trips     repo.TripRepo
	generator ActivityGenerator
	timeout   time.Duration
	log       *slog.Logger
}

// NewItineraryService constructs an ItineraryService. timeout bounds each
// generation call; zero means the request context alone applies.
func NewItineraryService(trips repo.TripRepo, generator ActivityGenerator, timeout time.Duration, logger *slog.Logger) *ItineraryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItineraryService{trips: trips, generator: generator, timeout: timeout, log: logger}
}

// maxEditAttempts bounds how often an edit is recomputed after losing a
// version race to a concurrent write.
const maxEditAttempts = 3

// Pace caps the number of activities on every day of the trip.
// Returns domain.ErrValidation for a non-positive cap and domain.ErrNotFound
// if the trip does not exist. A trip that pacing leaves unchanged is not
// written back.
func (s *ItineraryService) Pace(ctx context.Context, tripID uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error) {
	if err := validateStruct(cfg); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.edit(ctx, tripID, 0, func(t domain.Timeline) domain.Timeline {
		return itinerary.ApplyPacing(t, cfg)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Pace: %w", err)
	}
	return result, nil
}

// OverrideDay replaces the activities of one day with caller-supplied ones.
// Returns domain.ErrValidation for invalid activities and domain.ErrNotFound
// if the trip or the day does not exist.
func (s *ItineraryService) OverrideDay(ctx context.Context, tripID uuid.UUID, o domain.DayOverride) (domain.Trip, error) {
	if err := validateStruct(o); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.edit(ctx, tripID, o.ModifiedDay, func(t domain.Timeline) domain.Timeline {
		return itinerary.ApplyDayOverride(o, t)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.OverrideDay: %w", err)
	}
	return result, nil
}

// RegenerateDay asks the generation service for a new activity list for one
// day and merges it into the trip. When req.Region is empty the day's own
// region is sent.
//
// The generated list is merged into the trip as it is stored after the call
// returns, so edits to other days made while waiting are kept.
// If the call fails (domain.ErrUpstream) or its body cannot be adapted
// (domain.ErrInvalidExternalResponse) the stored trip is left untouched.
func (s *ItineraryService) RegenerateDay(ctx context.Context, tripID uuid.UUID, req domain.GenerationRequest) (domain.Trip, error) {
	if err := validateStruct(req); err != nil {
		return domain.Trip{}, err
	}

	trip, err := s.tripWithDay(ctx, tripID, req.DayNumber)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.RegenerateDay: %w", err)
	}
	if req.Region == "" {
		day, _ := trip.Timeline.Day(req.DayNumber)
		req.Region = day.Region
	}

	activities, err := s.generate(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "activity generation failed",
			"trip_id", tripID,
			"day_number", req.DayNumber,
			"error", err,
		)
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.RegenerateDay: %w", err)
	}

	override := domain.DayOverride{ModifiedDay: req.DayNumber, OverrideActivities: clampGenerated(activities)}
	result, err := s.edit(ctx, tripID, req.DayNumber, func(t domain.Timeline) domain.Timeline {
		return itinerary.ApplyDayOverride(override, t)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.RegenerateDay: %w", err)
	}
	return result, nil
}

// generate runs the single generation call under the configured timeout and
// adapts its body.
func (s *ItineraryService) generate(ctx context.Context, req domain.GenerationRequest) ([]domain.Activity, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return generation.Adapt(body)
}

// clampGenerated floors negative durations and costs at zero so a generated
// day satisfies the same rules as one entered by hand.
func clampGenerated(activities []domain.Activity) []domain.Activity {
	for i := range activities {
		activities[i].DurationMinutes = max(0, activities[i].DurationMinutes)
		activities[i].EstimatedCost = max(0, activities[i].EstimatedCost)
	}
	return activities
}

// tripWithDay loads a trip and checks that it has a day numbered dayNumber.
// A dayNumber of 0 skips the day check.
func (s *ItineraryService) tripWithDay(ctx context.Context, tripID uuid.UUID, dayNumber int) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if dayNumber == 0 {
		return trip, nil
	}
	if _, ok := trip.Timeline.Day(dayNumber); !ok {
		return domain.Trip{}, fmt.Errorf("%w: %d", domain.ErrDayNotFound, dayNumber)
	}
	return trip, nil
}

// edit loads the trip, applies fn to its timeline and writes the result
// against the version it read. When a concurrent write wins, the trip is
// reloaded and fn applied again, up to maxEditAttempts times. A timeline
// that fn leaves unchanged is not written.
func (s *ItineraryService) edit(ctx context.Context, tripID uuid.UUID, dayNumber int, fn func(domain.Timeline) domain.Timeline) (domain.Trip, error) {
	for attempt := 1; ; attempt++ {
		trip, err := s.tripWithDay(ctx, tripID, dayNumber)
		if err != nil {
			return domain.Trip{}, err
		}

		timeline := fn(trip.Timeline)
		if reflect.DeepEqual(trip.Timeline, timeline) {
			return trip, nil
		}
		trip.Timeline = timeline

		saved, err := s.trips.UpdateTimeline(ctx, trip)
		if errors.Is(err, domain.ErrConflict) && attempt < maxEditAttempts {
			s.log.DebugContext(ctx, "timeline edit lost a version race, retrying",
				"trip_id", tripID,
				"attempt", attempt,
			)
			continue
		}
		return saved, err
	}
}
