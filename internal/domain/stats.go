package domain

// TripStats aggregates every stored trip.
type TripStats struct {
	TripCount            int
	DayCount             int
	ActivityCount        int
	TotalCost            float64
	CostByCategory       map[Category]float64
	ActivitiesByCategory map[Category]int
	DaysByRegion         map[string]int
}

// Summarize computes TripStats over trips. Day costs are taken from the
// activities rather than the stored TotalCost.
func Summarize(trips []Trip) TripStats {
	s := TripStats{
		TripCount:            len(trips),
		CostByCategory:       map[Category]float64{},
		ActivitiesByCategory: map[Category]int{},
		DaysByRegion:         map[string]int{},
	}
	for _, t := range trips {
		for _, d := range t.Timeline.Days {
			s.DayCount++
			if d.Region != "" {
				s.DaysByRegion[d.Region]++
			}
			for _, a := range d.Activities {
				s.ActivityCount++
				s.ActivitiesByCategory[a.Category]++
				s.CostByCategory[a.Category] += max(0, a.EstimatedCost)
			}
			s.TotalCost += Cost(d.Activities)
		}
	}
	return s
}
