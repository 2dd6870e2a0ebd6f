package handler

import (
	"net/http"
)

// GetStats handles GET /stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "not found")
		return
	}

	resp := StatsResponse{
		TripCount:            st.TripCount,
		DayCount:             st.DayCount,
		ActivityCount:        st.ActivityCount,
		TotalCost:            st.TotalCost,
		CostByCategory:       make(map[string]float64, len(st.CostByCategory)),
		ActivitiesByCategory: make(map[string]int, len(st.ActivitiesByCategory)),
		DaysByRegion:         make(map[string]int, len(st.DaysByRegion)),
	}
	for c, v := range st.CostByCategory {
		resp.CostByCategory[string(c)] = v
	}
	for c, n := range st.ActivitiesByCategory {
		resp.ActivitiesByCategory[string(c)] = n
	}
	for region, n := range st.DaysByRegion {
		resp.DaysByRegion[region] = n
	}
	writeJSON(w, http.StatusOK, resp)
}
