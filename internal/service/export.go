package service

import (
	"context"
	"fmt"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/repo"
)

// dateLayout is the calendar-date format used in export rows.
const dateLayout = "2006-01-02"

// ExportService assembles a full flat export of every trip's timeline.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per activity across all trips, in trip order,
// then day order, then activity order. Days with no activities and trips with
// no days each contribute one row with the missing fields left empty.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		base := domain.ExportRow{
			TripID:    trip.ID.String(),
			TripTitle: trip.Title,
		}
		if trip.StartDate != nil {
			base.TripStartDate = trip.StartDate.Format(dateLayout)
		}

		if len(trip.Timeline.Days) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, day := range trip.Timeline.Days {
			dayRow := base
			dayRow.HasDay = true
			dayRow.DayNumber = day.DayNumber
			dayRow.DayRegion = day.Region
			dayRow.DayTotalCost = day.TotalCost
			if day.Date != nil {
				dayRow.DayDate = day.Date.Format(dateLayout)
			}

			if len(day.Activities) == 0 {
				rows = append(rows, dayRow)
				continue
			}
			for _, a := range day.Activities {
				row := dayRow
				row.HasActivity = true
				row.ActivityID = a.ID
				row.ActivityName = a.Name
				row.StartTime = a.StartTime
				row.DurationMinutes = a.DurationMinutes
				row.Category = string(a.Category)
				row.EstimatedCost = a.EstimatedCost
				row.Location = a.Location
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}
