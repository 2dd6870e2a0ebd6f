package domain

import (
	"slices"
	"time"
)

// Category classifies an Activity. The set is advisory: values produced by the
// generation service are stored as-is.
type Category string

const (
	CategoryAttraction    Category = "attraction"
	CategoryMeal          Category = "meal"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryExperience    Category = "experience"
)

// Activity is one scheduled item within a Day.
// ID is only unique within the owning day.
type Activity struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	StartTime       string   `json:"start_time"` // "15:04", no timezone
	DurationMinutes int      `json:"duration_minutes" validate:"gte=0"`
	Category        Category `json:"category"`
	Icon            string   `json:"icon,omitempty"`
	EstimatedCost   float64  `json:"estimated_cost" validate:"gte=0"`
	Location        string   `json:"location,omitempty"`
}

// Day is one calendar day of a trip.
// TotalCost is derived: it always equals Cost(Activities) for values built by
// NewDay or WithActivities.
type Day struct {
	DayNumber  int        `json:"day_number" validate:"gt=0"`
	Date       *time.Time `json:"date,omitempty"`
	Region     string     `json:"region,omitempty"`
	Activities []Activity `json:"activities" validate:"dive"`
	TotalCost  float64    `json:"total_cost"`
}

// Timeline is the full multi-day plan of a trip.
// Days are kept in the order the caller supplied them, conventionally by
// ascending DayNumber. TotalDuration is the declared trip length and may
// disagree with len(Days).
type Timeline struct {
	Days          []Day    `json:"days" validate:"dive"`
	TotalDuration int      `json:"total_duration" validate:"gte=0"`
	Regions       []string `json:"regions"`
	TravelStyles  []string `json:"travel_styles"`
	Season        string   `json:"season,omitempty"`
}

// Cost returns the summed estimated cost of activities.
// Negative costs count as zero.
func Cost(activities []Activity) float64 {
	var total float64
	for _, a := range activities {
		total += max(0, a.EstimatedCost)
	}
	return total
}

// NewDay builds a Day whose TotalCost is computed from activities.
// The activities slice is copied.
func NewDay(dayNumber int, date *time.Time, region string, activities []Activity) Day {
	d := Day{DayNumber: dayNumber, Region: region}
	if date != nil {
		dt := *date
		d.Date = &dt
	}
	return d.WithActivities(activities)
}

// WithActivities returns a copy of d holding activities, with TotalCost
// recomputed. Neither d nor activities is modified.
func (d Day) WithActivities(activities []Activity) Day {
	out := d.clone()
	out.Activities = cloneActivities(activities)
	out.TotalCost = Cost(out.Activities)
	return out
}

// Day returns the day numbered n and whether it exists.
func (t Timeline) Day(n int) (Day, bool) {
	for _, d := range t.Days {
		if d.DayNumber == n {
			return d, true
		}
	}
	return Day{}, false
}

// Clone returns a deep copy of t that shares no slices or pointers with it.
func (t Timeline) Clone() Timeline {
	out := t
	out.Regions = slices.Clone(t.Regions)
	out.TravelStyles = slices.Clone(t.TravelStyles)
	if t.Days != nil {
		out.Days = make([]Day, len(t.Days))
		for i, d := range t.Days {
			out.Days[i] = d.clone()
		}
	}
	return out
}

func (d Day) clone() Day {
	out := d
	if d.Date != nil {
		dt := *d.Date
		out.Date = &dt
	}
	out.Activities = cloneActivities(d.Activities)
	return out
}

// cloneActivities copies activities, keeping nil as nil so that value
// comparisons against the source stay equal.
func cloneActivities(activities []Activity) []Activity {
	if activities == nil {
		return nil
	}
	return append(make([]Activity, 0, len(activities)), activities...)
}
