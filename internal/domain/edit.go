package domain

// DayOverride replaces the activities of one existing day. It is never
// persisted on its own.
type DayOverride struct {
	ModifiedDay        int        `validate:"gt=0"`
	OverrideActivities []Activity `validate:"dive"`
}

// PacingConfig caps the number of activities kept per day.
// RestTime and Pace are carried for clients but do not affect pacing.
type PacingConfig struct {
	ActivitiesPerDay *int `validate:"omitempty,gt=0"`
	RestTime         string
	Pace             string
}

// GenerationRequest is what the activity-generation service needs to propose
// a replacement list for one day.
type GenerationRequest struct {
	Theme      string `json:"theme" validate:"required"`
	Region     string `json:"region"`
	Prefecture string `json:"prefecture,omitempty"`
	DayNumber  int    `json:"day_number" validate:"gt=0"`
}
