package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Health           HealthService
	API              *APIHandlers
	Metrics          *Metrics
	AllowedOrigins   []string
	AllowCredentials bool
}

// NewRouter wires the HTTP routes exposed by the API. Literal routes such as
// /movies/rated take precedence over the /movies/{id} wildcard.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		payload := map[string]any{
			"status": "ok",
		}

		if deps.Health != nil {
			if err := deps.Health.Probe(ctx); err != nil {
				logger.Error("health probe failed", "error", err)
				status = http.StatusServiceUnavailable
				payload["status"] = "degraded"
				payload["error"] = err.Error()
			}
		}

		respondJSON(w, status, payload)
	})

	if api := deps.API; api != nil {
		mux.HandleFunc("GET /movies", api.listMovies)
		mux.HandleFunc("GET /movies/rated", api.requireUser(api.listRatedMovies))
		mux.HandleFunc("GET /movies/recommended", api.requireUser(api.listRecommendedMovies))
		mux.HandleFunc("GET /movies/{id}", api.getMovie)
		mux.HandleFunc("GET /movies/genre/{id}", api.listMoviesByGenre)
		mux.HandleFunc("GET /movies/daterange/{start}/{end}", api.listMoviesByDateRange)
		mux.HandleFunc("GET /movies/directed_by/{id}", api.listMoviesByDirector)
		mux.HandleFunc("GET /movies/acted_in_by/{id}", api.listMoviesByActor)
		mux.HandleFunc("GET /movies/written_by/{id}", api.listMoviesByWriter)
		mux.HandleFunc("POST /movies/{id}/rate", api.requireUser(api.rateMovie))
		mux.HandleFunc("DELETE /movies/{id}/rate", api.requireUser(api.deleteMovieRating))

		mux.HandleFunc("GET /people", api.listPeople)
		mux.HandleFunc("GET /people/bacon", api.getBaconPath)
		mux.HandleFunc("GET /people/{id}", api.getPerson)

		mux.HandleFunc("GET /genres", api.listGenres)

		mux.HandleFunc("POST /register", api.register)
		mux.HandleFunc("POST /login", api.login)
		mux.HandleFunc("GET /users/me", api.requireUser(api.me))

		mux.HandleFunc("POST /import/genres", api.importGenres)
		mux.HandleFunc("POST /import/movies", api.importMovies)
	}

	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}

	handler := deps.Metrics.Middleware(mux)
	handler = loggingMiddleware(logger, handler)
	if len(deps.AllowedOrigins) > 0 {
		handler = corsMiddleware(deps.AllowedOrigins, deps.AllowCredentials)(handler)
	}
	return handler
}
