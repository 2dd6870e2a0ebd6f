// Package itinerary edits trip timelines. Every function is pure: it takes a
// domain.Timeline by value and returns a new one that shares no slices with
// its input, so callers may run edits concurrently on different timelines.
package itinerary

import "github.com/tabiplan/backend/internal/domain"

// ApplyPacing keeps at most cfg.ActivitiesPerDay activities on each day.
//
// Truncation is positional: the first activities in list order survive and
// later ones are dropped, whatever their category. Days already within the
// cap are returned unchanged, as is the whole timeline when it has no days or
// cfg sets no cap. RestTime and Pace have no effect.
func ApplyPacing(t domain.Timeline, cfg domain.PacingConfig) domain.Timeline {
	out := t.Clone()
	if len(out.Days) == 0 || cfg.ActivitiesPerDay == nil || *cfg.ActivitiesPerDay <= 0 {
		return out
	}

	limit := *cfg.ActivitiesPerDay
	for i, d := range out.Days {
		if len(d.Activities) <= limit {
			continue
		}
		out.Days[i] = d.WithActivities(d.Activities[:limit])
	}
	return out
}
