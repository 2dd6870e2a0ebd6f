package itinerary

import "github.com/tabiplan/backend/internal/domain"

// ApplyDayOverride replaces the activities of the day numbered
// o.ModifiedDay with o.OverrideActivities, in the given order, and recomputes
// that day's TotalCost. Other days and all timeline-level fields are left as
// they were.
//
// Only existing days are replaced: when no day matches, or the timeline has no
// days, the timeline is returned unchanged.
func ApplyDayOverride(o domain.DayOverride, t domain.Timeline) domain.Timeline {
	out := t.Clone()
	for i, d := range out.Days {
		if d.DayNumber != o.ModifiedDay {
			continue
		}
		activities := o.OverrideActivities
		if activities == nil {
			activities = []domain.Activity{}
		}
		out.Days[i] = d.WithActivities(activities)
		return out
	}
	return out
}

// Recost recomputes TotalCost on every day from its activities. Services run
// it on client-supplied timelines so that stored costs never drift from the
// activity lists.
func Recost(t domain.Timeline) domain.Timeline {
	out := t.Clone()
	for i, d := range out.Days {
		out.Days[i].TotalCost = domain.Cost(d.Activities)
	}
	return out
}
