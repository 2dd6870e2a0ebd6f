package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tabiplan/backend/internal/domain"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail under an "error" key.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Activity is the wire form of domain.Activity. A missing estimated_cost
// means zero.
type Activity struct {
	Id              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Category        string   `json:"category"`
	Icon            *string  `json:"icon,omitempty"`
	EstimatedCost   *float64 `json:"estimated_cost,omitempty"`
	Location        *string  `json:"location,omitempty"`
}

// Day is the wire form of domain.Day. TotalCost is ignored on input.
type Day struct {
	DayNumber  int                 `json:"day_number"`
	Date       *openapi_types.Date `json:"date,omitempty"`
	Region     *string             `json:"region,omitempty"`
	Activities []Activity          `json:"activities"`
	TotalCost  float64             `json:"total_cost"`
}

// TripRequest is the body of POST /trips and PUT /trips/{id}.
type TripRequest struct {
	Title         string              `json:"title"`
	StartDate     *openapi_types.Date `json:"start_date,omitempty"`
	Days          []Day               `json:"days"`
	TotalDuration int                 `json:"total_duration"`
	Regions       []string            `json:"regions,omitempty"`
	TravelStyles  []string            `json:"travel_styles,omitempty"`
	Season        *string             `json:"season,omitempty"`
}

// Trip is the response form of domain.Trip.
type Trip struct {
	Id            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	StartDate     *openapi_types.Date `json:"start_date,omitempty"`
	Days          []Day               `json:"days"`
	TotalDuration int                 `json:"total_duration"`
	Regions       []string            `json:"regions"`
	TravelStyles  []string            `json:"travel_styles"`
	Season        *string             `json:"season,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Pagination describes the page returned by GET /trips.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TripList is the response of GET /trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PacingRequest is the body of POST /trips/{id}/pacing.
type PacingRequest struct {
	ActivitiesPerDay *int    `json:"activities_per_day,omitempty"`
	RestTime         *string `json:"rest_time,omitempty"`
	Pace             *string `json:"pace,omitempty"`
}

// OverrideRequest is the body of PUT /trips/{id}/days/{dayNumber}/activities.
type OverrideRequest struct {
	Activities []Activity `json:"activities"`
}

// RegenerateRequest is the body of POST /trips/{id}/days/{dayNumber}/regenerate.
type RegenerateRequest struct {
	Theme      string  `json:"theme"`
	Region     *string `json:"region,omitempty"`
	Prefecture *string `json:"prefecture,omitempty"`
}

// ExportRow is one row of GET /export in JSON form.
type ExportRow struct {
	TripId          uuid.UUID           `json:"trip_id"`
	TripTitle       string              `json:"trip_title"`
	TripStartDate   *openapi_types.Date `json:"trip_start_date,omitempty"`
	DayNumber       *int                `json:"day_number,omitempty"`
	DayDate         *openapi_types.Date `json:"day_date,omitempty"`
	DayRegion       *string             `json:"day_region,omitempty"`
	DayTotalCost    *float64            `json:"day_total_cost,omitempty"`
	ActivityId      *string             `json:"activity_id,omitempty"`
	ActivityName    *string             `json:"activity_name,omitempty"`
	StartTime       *string             `json:"start_time,omitempty"`
	DurationMinutes *int                `json:"duration_minutes,omitempty"`
	Category        *string             `json:"category,omitempty"`
	EstimatedCost   *float64            `json:"estimated_cost,omitempty"`
	Location        *string             `json:"location,omitempty"`
}

// StatsResponse is the response of GET /stats.
type StatsResponse struct {
	TripCount            int                `json:"trip_count"`
	DayCount             int                `json:"day_count"`
	ActivityCount        int                `json:"activity_count"`
	TotalCost            float64            `json:"total_cost"`
	CostByCategory       map[string]float64 `json:"cost_by_category"`
	ActivitiesByCategory map[string]int     `json:"activities_by_category"`
	DaysByRegion         map[string]int     `json:"days_by_region"`
}

// --- mapping helpers --------------------------------------------------------

func activitiesFromRequest(in []Activity) []domain.Activity {
	out := make([]domain.Activity, len(in))
	for i, a := range in {
		out[i] = domain.Activity{
			ID:              a.Id,
			Name:            a.Name,
			Description:     deref(a.Description),
			StartTime:       a.StartTime,
			DurationMinutes: a.DurationMinutes,
			Category:        domain.Category(a.Category),
			Icon:            deref(a.Icon),
			EstimatedCost:   deref(a.EstimatedCost),
			Location:        deref(a.Location),
		}
	}
	return out
}

func activitiesToResponse(in []domain.Activity) []Activity {
	out := make([]Activity, len(in))
	for i, a := range in {
		cost := a.EstimatedCost
		out[i] = Activity{
			Id:              a.ID,
			Name:            a.Name,
			Description:     optional(a.Description),
			StartTime:       a.StartTime,
			DurationMinutes: a.DurationMinutes,
			Category:        string(a.Category),
			Icon:            optional(a.Icon),
			EstimatedCost:   &cost,
			Location:        optional(a.Location),
		}
	}
	return out
}

// requestToTrip converts a TripRequest into a domain.Trip with the given ID.
// Day costs are computed from the activities; any total_cost sent is ignored.
func requestToTrip(id uuid.UUID, body TripRequest) domain.Trip {
	t := domain.Trip{
		ID:        id,
		Title:     body.Title,
		StartDate: dateToTime(body.StartDate),
		Timeline: domain.Timeline{
			TotalDuration: body.TotalDuration,
			Regions:       body.Regions,
			TravelStyles:  body.TravelStyles,
			Season:        deref(body.Season),
		},
	}
	if body.Days != nil {
		t.Timeline.Days = make([]domain.Day, len(body.Days))
		for i, d := range body.Days {
			t.Timeline.Days[i] = domain.NewDay(d.DayNumber, dateToTime(d.Date), deref(d.Region), activitiesFromRequest(d.Activities))
		}
	}
	return t
}

// tripToResponse converts a domain.Trip into its wire form.
// Slices are always non-nil so clients see [] rather than null.
func tripToResponse(t domain.Trip) Trip {
	resp := Trip{
		Id:            t.ID,
		Title:         t.Title,
		StartDate:     timeToDate(t.StartDate),
		Days:          make([]Day, len(t.Timeline.Days)),
		TotalDuration: t.Timeline.TotalDuration,
		Regions:       nonNilStrings(t.Timeline.Regions),
		TravelStyles:  nonNilStrings(t.Timeline.TravelStyles),
		Season:        optional(t.Timeline.Season),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	for i, d := range t.Timeline.Days {
		resp.Days[i] = Day{
			DayNumber:  d.DayNumber,
			Date:       timeToDate(d.Date),
			Region:     optional(d.Region),
			Activities: activitiesToResponse(d.Activities),
			TotalCost:  d.TotalCost,
		}
	}
	return resp
}

func dateToTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func timeToDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

// optional returns nil for the zero value so the field is omitted in JSON.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
