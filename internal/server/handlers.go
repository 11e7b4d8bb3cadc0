package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/dataset"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

// Catalog is the slice of the query catalog the HTTP layer depends on.
type Catalog interface {
	AllMovies(ctx context.Context) ([]domain.Movie, error)
	MovieByID(ctx context.Context, movieID, userID string) (domain.MovieDetails, error)
	MoviesByDateRange(ctx context.Context, start, end string) ([]domain.Movie, error)
	MoviesByGenre(ctx context.Context, genreID string) ([]domain.Movie, error)
	MoviesByDirector(ctx context.Context, personID string) ([]domain.Movie, error)
	MoviesByWriter(ctx context.Context, personID string) ([]domain.Movie, error)
	MoviesByActor(ctx context.Context, personID string) ([]domain.Movie, error)
	Rate(ctx context.Context, movieID, userID string, rating int) (domain.Movie, error)
	DeleteRating(ctx context.Context, movieID, userID string) error
	RatedByUser(ctx context.Context, userID string) ([]domain.Movie, error)
	Recommended(ctx context.Context, userID string) ([]domain.Movie, error)
	AllPeople(ctx context.Context) ([]domain.Person, error)
	PersonByID(ctx context.Context, personID string) (domain.PersonDetails, error)
	BaconPath(ctx context.Context, name1, name2 string) ([]domain.Person, error)
	AllGenres(ctx context.Context) ([]domain.Genre, error)
	CreateGenre(ctx context.Context, name string) error
	CreateMovie(ctx context.Context, movie dataset.Movie) error
}

// Authenticator is the access control gate plus account operations.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (domain.AuthToken, error)
	Login(ctx context.Context, username, password string) (domain.AuthToken, error)
	Authenticate(ctx context.Context, authorization string) (domain.User, error)
}

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	catalog Catalog
	auth    Authenticator
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, catalog Catalog, auth Authenticator) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		catalog: catalog,
		auth:    auth,
	}
}

// requireUser guards routes that read or write per-user state. The resolved
// identity is injected into the request context.
func (h *APIHandlers) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeFailure(h.logger, w, r, err)
			return
		}
		next(w, r.WithContext(withUser(r.Context(), user)))
	}
}

// optionalUserID resolves the viewer identity when an Authorization header is
// present but never fails the request: catalog browsing stays anonymous.
func (h *APIHandlers) optionalUserID(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	user, err := h.auth.Authenticate(r.Context(), header)
	if err != nil {
		return ""
	}
	return user.ID
}

// --- movies ---

func (h *APIHandlers) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.AllMovies(r.Context())
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *APIHandlers) getMovie(w http.ResponseWriter, r *http.Request) {
	movieID := r.PathValue("id")
	if movieID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("movie id is required"))
		return
	}

	movie, err := h.catalog.MovieByID(r.Context(), movieID, h.optionalUserID(r))
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *APIHandlers) listMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genreID := r.PathValue("id")
	if genreID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("genre id is required"))
		return
	}

	movies, err := h.catalog.MoviesByGenre(r.Context(), genreID)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *APIHandlers) listMoviesByDateRange(w http.ResponseWriter, r *http.Request) {
	start, end := r.PathValue("start"), r.PathValue("end")
	if start == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("start year is required"))
		return
	}
	if end == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("end year is required"))
		return
	}

	movies, err := h.catalog.MoviesByDateRange(r.Context(), start, end)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *APIHandlers) listMoviesByDirector(w http.ResponseWriter, r *http.Request) {
	h.listMoviesByPerson(w, r, h.catalog.MoviesByDirector)
}

func (h *APIHandlers) listMoviesByActor(w http.ResponseWriter, r *http.Request) {
	h.listMoviesByPerson(w, r, h.catalog.MoviesByActor)
}

func (h *APIHandlers) listMoviesByWriter(w http.ResponseWriter, r *http.Request) {
	h.listMoviesByPerson(w, r, h.catalog.MoviesByWriter)
}

func (h *APIHandlers) listMoviesByPerson(w http.ResponseWriter, r *http.Request, query func(context.Context, string) ([]domain.Movie, error)) {
	personID := r.PathValue("id")
	if personID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("person id is required"))
		return
	}

	movies, err := query(r.Context(), personID)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

type rateRequest struct {
	Rating int `json:"rating"`
}

func (h *APIHandlers) rateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := r.PathValue("id")
	if movieID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("movie id is required"))
		return
	}

	var payload rateRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeFailure(h.logger, w, r, apperr.Invalid("invalid request body: %v", err))
		return
	}

	user, _ := userFrom(r.Context())
	movie, err := h.catalog.Rate(r.Context(), movieID, user.ID, payload.Rating)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *APIHandlers) deleteMovieRating(w http.ResponseWriter, r *http.Request) {
	movieID := r.PathValue("id")
	if movieID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("movie id is required"))
		return
	}

	user, _ := userFrom(r.Context())
	if err := h.catalog.DeleteRating(r.Context(), movieID, user.ID); err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *APIHandlers) listRatedMovies(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	movies, err := h.catalog.RatedByUser(r.Context(), user.ID)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *APIHandlers) listRecommendedMovies(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	movies, err := h.catalog.Recommended(r.Context(), user.ID)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

// --- people ---

func (h *APIHandlers) listPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.catalog.AllPeople(r.Context())
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, people)
}

func (h *APIHandlers) getPerson(w http.ResponseWriter, r *http.Request) {
	personID := r.PathValue("id")
	if personID == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("person id is required"))
		return
	}

	person, err := h.catalog.PersonByID(r.Context(), personID)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, person)
}

func (h *APIHandlers) getBaconPath(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name1, name2 := query.Get("name1"), query.Get("name2")
	if name1 == "" || name2 == "" {
		writeFailure(h.logger, w, r, apperr.Invalid("name1 and name2 are required"))
		return
	}

	people, err := h.catalog.BaconPath(r.Context(), name1, name2)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, people)
}

// --- genres ---

func (h *APIHandlers) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.AllGenres(r.Context())
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, genres)
}

// --- users ---

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *APIHandlers) register(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeFailure(h.logger, w, r, apperr.Invalid("invalid request body: %v", err))
		return
	}

	token, err := h.auth.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, token)
}

func (h *APIHandlers) login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeFailure(h.logger, w, r, apperr.Invalid("invalid request body: %v", err))
		return
	}

	token, err := h.auth.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeFailure(h.logger, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, token)
}

func (h *APIHandlers) me(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	respondJSON(w, http.StatusOK, user)
}

// --- ingestion ---

// importGenres bulk-creates the seed genres. Each record is fire-and-forget:
// a failing insert is logged and counted but never halts the batch, and the
// response reports the full attempted count regardless of per-record outcome.
func (h *APIHandlers) importGenres(w http.ResponseWriter, r *http.Request) {
	var failed int
	for _, genre := range dataset.Genres {
		if err := h.catalog.CreateGenre(r.Context(), genre.Name); err != nil {
			h.logger.Error("genre insert failed", "genre", genre.Name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		h.logger.Warn("genre ingestion finished with failures", "attempted", len(dataset.Genres), "failed", failed)
	}
	respondJSON(w, http.StatusOK, fmt.Sprintf("added %d genres", len(dataset.Genres)))
}

// importMovies bulk-creates the seed movies with the same fire-and-forget
// per-record semantics as importGenres.
func (h *APIHandlers) importMovies(w http.ResponseWriter, r *http.Request) {
	var failed int
	for _, movie := range dataset.Movies {
		if err := h.catalog.CreateMovie(r.Context(), movie); err != nil {
			h.logger.Error("movie insert failed", "title", movie.Title, "error", err)
			failed++
		}
	}
	if failed > 0 {
		h.logger.Warn("movie ingestion finished with failures", "attempted", len(dataset.Movies), "failed", failed)
	}
	respondJSON(w, http.StatusOK, fmt.Sprintf("added %d movies", len(dataset.Movies)))
}
