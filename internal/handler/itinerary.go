package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tabiplan/backend/internal/domain"
)

// PaceTrip handles POST /trips/{id}/pacing.
func (s *Server) PaceTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeParamError(w, err)
		return
	}
	var body PacingRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	trip, err := s.itinerary.Pace(r.Context(), id, domain.PacingConfig{
		ActivitiesPerDay: body.ActivitiesPerDay,
		RestTime:         deref(body.RestTime),
		Pace:             deref(body.Pace),
	})
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// OverrideDay handles PUT /trips/{id}/days/{dayNumber}/activities.
// The activities in the body replace the day's list in the given order.
func (s *Server) OverrideDay(w http.ResponseWriter, r *http.Request) {
	id, dayNumber, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var body OverrideRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}
	if body.Activities == nil {
		writeRequestError(w, errors.New("activities is required"))
		return
	}

	trip, err := s.itinerary.OverrideDay(r.Context(), id, domain.DayOverride{
		ModifiedDay:        dayNumber,
		OverrideActivities: activitiesFromRequest(body.Activities),
	})
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// RegenerateDay handles POST /trips/{id}/days/{dayNumber}/regenerate.
// On a generation failure the stored trip is unchanged and 502 is returned.
func (s *Server) RegenerateDay(w http.ResponseWriter, r *http.Request) {
	id, dayNumber, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var body RegenerateRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	trip, err := s.itinerary.RegenerateDay(r.Context(), id, domain.GenerationRequest{
		Theme:      body.Theme,
		Region:     deref(body.Region),
		Prefecture: deref(body.Prefecture),
		DayNumber:  dayNumber,
	})
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// tripDayParams binds {id} and {dayNumber}, answering 400 itself on failure.
func tripDayParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeParamError(w, err)
		return uuid.Nil, 0, false
	}
	dayNumber, err := pathInt(r, "dayNumber")
	if err != nil {
		writeParamError(w, err)
		return uuid.Nil, 0, false
	}
	return id, dayNumber, true
}
