package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database, or a trip has no day with the
// requested day number.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDayNotFound is returned when a trip exists but has no day with the
// requested day number. It matches ErrNotFound under errors.Is.
var ErrDayNotFound = fmt.Errorf("day %w", ErrNotFound)

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, duplicate day number, negative cost).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidExternalResponse is returned when the activity-generation service
// answers with a body whose activity list is missing or is not a list.
// It is never replaced by an empty day: the caller decides whether to keep the
// previous activities or report the failure.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrInvalidExternalResponse = errors.New("invalid external response")

// ErrConflict is returned when a trip changed between the read and the write
// of an edit and the edit could not be reapplied.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")

// ErrUpstream is returned when the activity-generation service could not be
// reached or answered with a non-2xx status.
var ErrUpstream = errors.New("upstream error")
