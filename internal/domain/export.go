package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per activity, with trip and day
// fields repeated on every row. A day with no activities yields one row with
// empty activity fields; a trip with no days yields one row with empty day
// and activity fields.
type ExportRow struct {
	// Trip fields, repeated for every row of the trip.
	TripID        string
	TripTitle     string
	TripStartDate string // "2006-01-02", empty when unset

	// Day fields: zero values when the trip has no days.
	HasDay       bool
	DayNumber    int
	DayDate      string
	DayRegion    string
	DayTotalCost float64

	// Activity fields: zero values when the day has no activities.
	// Generated activities may have an empty id and name, so HasActivity
	// rather than the field values tells whether the row carries one.
	HasActivity     bool
	ActivityID      string
	ActivityName    string
	StartTime       string
	DurationMinutes int
	Category        string
	EstimatedCost   float64
	Location        string
}
