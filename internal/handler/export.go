package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tabiplan/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "trip_start_date",
	"day_number", "day_date", "day_region", "day_total_cost",
	"activity_id", "activity_name", "start_time", "duration_minutes",
	"category", "estimated_cost", "location",
}

// GetExport handles GET /export.
// It returns one row per activity across all trips.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format, err := queryString(r, "format")
	if err != nil {
		writeParamError(w, err)
		return
	}
	if format != nil && *format != "csv" && *format != "json" {
		writeParamError(w, errors.New("format must be csv or json"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "not found")
		return
	}

	if format != nil && *format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(rows))
}

// buildJSONRows converts domain rows to the JSON response rows.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToJSONRow(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV with a header row.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// domainRowToJSONRow maps a domain.ExportRow to its JSON form.
// Empty day and activity fields become nil pointers (omitted in JSON).
func domainRowToJSONRow(r domain.ExportRow) ExportRow {
	tripID, _ := uuid.Parse(r.TripID)
	row := ExportRow{
		TripId:        tripID,
		TripTitle:     r.TripTitle,
		TripStartDate: parseOptionalDate(r.TripStartDate),
	}

	if r.HasDay {
		row.DayNumber = &r.DayNumber
		row.DayDate = parseOptionalDate(r.DayDate)
		row.DayRegion = optional(r.DayRegion)
		row.DayTotalCost = &r.DayTotalCost
	}
	if r.HasActivity {
		row.ActivityId = &r.ActivityID
		row.ActivityName = &r.ActivityName
		row.StartTime = optional(r.StartTime)
		row.DurationMinutes = &r.DurationMinutes
		row.Category = optional(r.Category)
		row.EstimatedCost = &r.EstimatedCost
		row.Location = optional(r.Location)
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Missing day and activity fields are encoded as empty strings.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	rec := []string{r.TripID, r.TripTitle, r.TripStartDate, "", "", "", "", "", "", "", "", "", "", ""}
	if r.HasDay {
		rec[3] = strconv.Itoa(r.DayNumber)
		rec[4] = r.DayDate
		rec[5] = r.DayRegion
		rec[6] = formatCost(r.DayTotalCost)
	}
	if r.HasActivity {
		rec[7] = r.ActivityID
		rec[8] = r.ActivityName
		rec[9] = r.StartTime
		rec[10] = strconv.Itoa(r.DurationMinutes)
		rec[11] = r.Category
		rec[12] = formatCost(r.EstimatedCost)
		rec[13] = r.Location
	}
	return rec
}

// parseOptionalDate parses a "2006-01-02" string, returning nil when empty
// or malformed.
func parseOptionalDate(s string) *openapi_types.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &openapi_types.Date{Time: t}
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
