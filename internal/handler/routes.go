package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the API router. Middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/pacing", s.PaceTrip)
			r.Put("/days/{dayNumber}/activities", s.OverrideDay)
			r.Post("/days/{dayNumber}/regenerate", s.RegenerateDay)
		})
	})

	r.Get("/export", s.GetExport)
	r.Get("/stats", s.GetStats)

	return r
}
