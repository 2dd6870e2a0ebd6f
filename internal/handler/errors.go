package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tabiplan/backend/internal/domain"
)

// errBodyTooLarge is returned by decodeJSON when the body exceeds the limit
// set by middleware.NewMaxBodySizeHandler.
var errBodyTooLarge = errors.New("request body too large")

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst.
// A missing body is reported as "request body is required".
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	var maxErr *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &maxErr):
		return errBodyTooLarge
	case errors.Is(err, io.EOF):
		return errors.New("request body is required")
	default:
		return errors.New("request body is not valid JSON: " + err.Error())
	}
}

// writeRequestError answers a request rejected before reaching the service
// layer (malformed or oversize body, missing field).
func writeRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("body_too_large", err.Error()))
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

// writeParamError answers a request whose path or query parameters could not
// be bound.
func writeParamError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody("invalid_parameter", err.Error()))
}

// writeServiceError maps a service error onto the HTTP response.
// notFound is the message used for domain.ErrNotFound (e.g. "trip not found").
// Unrecognised errors are logged and answered with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrDayNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFound))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict", "trip was modified concurrently; retry the request"))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	case errors.Is(err, domain.ErrInvalidExternalResponse):
		writeJSON(w, http.StatusBadGateway, errorBody("invalid_external_response", "activity generation returned an unusable response"))
	case errors.Is(err, domain.ErrUpstream):
		writeJSON(w, http.StatusBadGateway, errorBody("upstream_error", "activity generation is unavailable"))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return errorBody("validation_error", message)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: title is required" → "title is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
