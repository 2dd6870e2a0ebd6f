// Package generation talks to the activity-generation service and adapts its
// responses into domain activities.
package generation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/tabiplan/backend/internal/domain"
)

// activitiesField is the key holding the generated list in a response body.
const activitiesField = "activities"

// generatedActivity is one element of the generated list as the service
// sends it.
type generatedActivity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	Duration    int      `json:"duration"`
	Cost        *float64 `json:"cost"`
	Type        string   `json:"type"`
	Icon        string   `json:"icon"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

// Adapt converts a generation response body into activities.
//
// The body must be a JSON object whose "activities" field is a list. A missing,
// null or non-list field fails with domain.ErrInvalidExternalResponse; a
// present empty list yields an empty, non-nil slice. Fields are renamed only:
// time format, category and cost sign are passed through unchecked, and a
// missing cost becomes 0.
func Adapt(body []byte) ([]domain.Activity, error) {
	var envelope map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: body is not a JSON object: %v", domain.ErrInvalidExternalResponse, err)
	}

	raw, ok := envelope[activitiesField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field", domain.ErrInvalidExternalResponse, activitiesField)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %q is not a list", domain.ErrInvalidExternalResponse, activitiesField)
	}

	var generated []generatedActivity
	if err := sonic.Unmarshal(raw, &generated); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", domain.ErrInvalidExternalResponse, activitiesField, err)
	}

	activities := make([]domain.Activity, 0, len(generated))
	for _, g := range generated {
		activities = append(activities, g.toActivity())
	}
	return activities, nil
}

func (g generatedActivity) toActivity() domain.Activity {
	a := domain.Activity{
		ID:              g.ID,
		Name:            g.Title,
		Description:     g.Description,
		StartTime:       g.Time,
		DurationMinutes: g.Duration,
		Category:        domain.Category(g.Type),
		Icon:            g.Icon,
		Location:        g.Location,
	}
	if g.Cost != nil {
		a.EstimatedCost = *g.Cost
	}
	return a
}
