package itinerary_test

import (
	"fmt"
	"testing"

	"github.com/tabiplan/backend/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func activity(id string, cost float64) domain.Activity {
	return domain.Activity{
		ID:              id,
		Name:            "Activity " + id,
		StartTime:       "09:00",
		DurationMinutes: 60,
		Category:        domain.CategoryAttraction,
		EstimatedCost:   cost,
	}
}

// dayOf builds a consistent day from n activities costing cost each.
func dayOf(number, n int, cost float64) domain.Day {
	acts := make([]domain.Activity, n)
	for i := range acts {
		acts[i] = activity(fmt.Sprintf("day%d-activity%d", number, i+1), cost)
	}
	return domain.NewDay(number, nil, "kansai", acts)
}

func timelineFixture(days ...domain.Day) domain.Timeline {
	return domain.Timeline{
		Days:          days,
		TotalDuration: len(days),
		Regions:       []string{"kansai"},
		TravelStyles:  []string{"culture", "food"},
		Season:        "spring",
	}
}

// requireCostInvariant checks that every day's TotalCost equals the sum of its
// activity costs.
func requireCostInvariant(t *testing.T, tl domain.Timeline) {
	t.Helper()
	for _, d := range tl.Days {
		var sum float64
		for _, a := range d.Activities {
			sum += a.EstimatedCost
		}
		if d.TotalCost != sum {
			t.Errorf("day %d: total_cost %v, activities sum to %v", d.DayNumber, d.TotalCost, sum)
		}
	}
}
