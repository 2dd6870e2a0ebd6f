package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/handler"
)

// ---- mock ItineraryServicer ------------------------------------------------

type mockItineraryServicer struct {
	pace          func(ctx context.Context, tripID uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error)
	overrideDay   func(ctx context.Context, tripID uuid.UUID, o domain.DayOverride) (domain.Trip, error)
	regenerateDay func(ctx context.Context, tripID uuid.UUID, req domain.GenerationRequest) (domain.Trip, error)
}

func (m *mockItineraryServicer) Pace(ctx context.Context, tripID uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error) {
	return m.pace(ctx, tripID, cfg)
}
func (m *mockItineraryServicer) OverrideDay(ctx context.Context, tripID uuid.UUID, o domain.DayOverride) (domain.Trip, error) {
	return m.overrideDay(ctx, tripID, o)
}
func (m *mockItineraryServicer) RegenerateDay(ctx context.Context, tripID uuid.UUID, req domain.GenerationRequest) (domain.Trip, error) {
	return m.regenerateDay(ctx, tripID, req)
}

// compile-time check: mockItineraryServicer must satisfy handler.ItineraryServicer.
var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

func newItineraryHTTPHandler(svc handler.ItineraryServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, nil).Routes()
}

// ---- POST /trips/{id}/pacing -----------------------------------------------

func TestPaceTrip_200(t *testing.T) {
	fixture := tripFixture()
	var gotID uuid.UUID
	var gotCfg domain.PacingConfig
	svc := &mockItineraryServicer{
		pace: func(_ context.Context, id uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error) {
			gotID, gotCfg = id, cfg
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"activities_per_day": 2, "pace": "relaxed"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+fixture.ID.String()+"/pacing", body)
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, gotID)
	require.NotNil(t, gotCfg.ActivitiesPerDay)
	assert.Equal(t, 2, *gotCfg.ActivitiesPerDay)
	assert.Equal(t, "relaxed", gotCfg.Pace)

	var resp handler.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
}

func TestPaceTrip_AbsentCapPassesNil(t *testing.T) {
	var gotCfg domain.PacingConfig
	svc := &mockItineraryServicer{
		pace: func(_ context.Context, _ uuid.UUID, cfg domain.PacingConfig) (domain.Trip, error) {
			gotCfg = cfg
			return tripFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/pacing", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotCfg.ActivitiesPerDay)
}

func TestPaceTrip_422_ValidationError(t *testing.T) {
	svc := &mockItineraryServicer{
		pace: func(_ context.Context, _ uuid.UUID, _ domain.PacingConfig) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: activities_per_day must be greater than 0", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"activities_per_day": 0})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/pacing", body)
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "activities_per_day must be greater than 0", decodeError(t, rec).Error.Message)
}

// ---- PUT /trips/{id}/days/{dayNumber}/activities ---------------------------

func TestOverrideDay_200(t *testing.T) {
	fixture := tripFixture()
	var got domain.DayOverride
	svc := &mockItineraryServicer{
		overrideDay: func(_ context.Context, _ uuid.UUID, o domain.DayOverride) (domain.Trip, error) {
			got = o
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"activities": []map[string]any{
			{"id": "x", "name": "Nara park", "start_time": "10:00", "duration_minutes": 60, "category": "attraction", "estimated_cost": 500},
			{"id": "y", "name": "Kakinoha sushi", "start_time": "12:00", "duration_minutes": 45, "category": "meal"},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/trips/"+fixture.ID.String()+"/days/1/activities", body)
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, got.ModifiedDay)
	require.Len(t, got.OverrideActivities, 2)
	assert.Equal(t, "x", got.OverrideActivities[0].ID)
	assert.Equal(t, 500.0, got.OverrideActivities[0].EstimatedCost)
	assert.Equal(t, 0.0, got.OverrideActivities[1].EstimatedCost)
}

func TestOverrideDay_EmptyListIsAllowed(t *testing.T) {
	var got domain.DayOverride
	svc := &mockItineraryServicer{
		overrideDay: func(_ context.Context, _ uuid.UUID, o domain.DayOverride) (domain.Trip, error) {
			got = o
			return tripFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String()+"/days/2/activities", strings.NewReader(`{"activities":[]}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, got.OverrideActivities)
	assert.Empty(t, got.OverrideActivities)
}

func TestOverrideDay_422_MissingActivities(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String()+"/days/1/activities", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(&mockItineraryServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "activities is required", decodeError(t, rec).Error.Message)
}

func TestOverrideDay_409_Conflict(t *testing.T) {
	svc := &mockItineraryServicer{
		overrideDay: func(_ context.Context, _ uuid.UUID, _ domain.DayOverride) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateTimeline: %w: version 3 is stale", domain.ErrConflict)
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String()+"/days/1/activities", strings.NewReader(`{"activities":[]}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decodeError(t, rec).Error.Code)
}

func TestOverrideDay_400_BadDayNumber(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String()+"/days/first/activities", strings.NewReader(`{"activities":[]}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(&mockItineraryServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_parameter", decodeError(t, rec).Error.Code)
}

func TestOverrideDay_404_DayNotFound(t *testing.T) {
	svc := &mockItineraryServicer{
		overrideDay: func(_ context.Context, _ uuid.UUID, o domain.DayOverride) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.ItineraryService.OverrideDay: %w: %d", domain.ErrDayNotFound, o.ModifiedDay)
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String()+"/days/9/activities", strings.NewReader(`{"activities":[]}`))
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "day not found", decodeError(t, rec).Error.Message)
}

// ---- POST /trips/{id}/days/{dayNumber}/regenerate --------------------------

func TestRegenerateDay_200(t *testing.T) {
	fixture := tripFixture()
	var got domain.GenerationRequest
	svc := &mockItineraryServicer{
		regenerateDay: func(_ context.Context, _ uuid.UUID, req domain.GenerationRequest) (domain.Trip, error) {
			got = req
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"theme": "temples", "prefecture": "Nara"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+fixture.ID.String()+"/days/1/regenerate", body)
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GenerationRequest{Theme: "temples", Prefecture: "Nara", DayNumber: 1}, got)
}

func TestRegenerateDay_502(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"invalid response", fmt.Errorf("generation.Adapt: %w: missing activities", domain.ErrInvalidExternalResponse), "invalid_external_response"},
		{"upstream down", fmt.Errorf("generation.Client.Generate: %w: status 503", domain.ErrUpstream), "upstream_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockItineraryServicer{
				regenerateDay: func(_ context.Context, _ uuid.UUID, _ domain.GenerationRequest) (domain.Trip, error) {
					return domain.Trip{}, tc.err
				},
			}

			body := jsonBody(t, map[string]any{"theme": "food"})
			req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/days/1/regenerate", body)
			rec := httptest.NewRecorder()

			newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Error.Code)
		})
	}
}

func TestRegenerateDay_404_TripNotFound(t *testing.T) {
	svc := &mockItineraryServicer{
		regenerateDay: func(_ context.Context, _ uuid.UUID, _ domain.GenerationRequest) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"theme": "food"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/days/1/regenerate", body)
	rec := httptest.NewRecorder()

	newItineraryHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec).Error.Message)
}
