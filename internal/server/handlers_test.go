package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/dataset"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

type stubCatalog struct {
	movies      []domain.Movie
	details     domain.MovieDetails
	rated       []domain.Movie
	recommended []domain.Movie
	people      []domain.Person
	person      domain.PersonDetails
	bacon       []domain.Person
	genres      []domain.Genre

	err          error // returned by every read operation when set
	rateErr      error
	genreInserts int
	movieInserts int
	ingestErr    error
	lastRating   int
}

func (s *stubCatalog) AllMovies(context.Context) ([]domain.Movie, error) { return s.movies, s.err }
func (s *stubCatalog) MovieByID(_ context.Context, movieID, userID string) (domain.MovieDetails, error) {
	return s.details, s.err
}
func (s *stubCatalog) MoviesByDateRange(_ context.Context, start, end string) ([]domain.Movie, error) {
	return s.movies, s.err
}
func (s *stubCatalog) MoviesByGenre(context.Context, string) ([]domain.Movie, error) {
	return s.movies, s.err
}
func (s *stubCatalog) MoviesByDirector(context.Context, string) ([]domain.Movie, error) {
	return s.movies, s.err
}
func (s *stubCatalog) MoviesByWriter(context.Context, string) ([]domain.Movie, error) {
	return s.movies, s.err
}
func (s *stubCatalog) MoviesByActor(context.Context, string) ([]domain.Movie, error) {
	return s.movies, s.err
}
func (s *stubCatalog) Rate(_ context.Context, movieID, userID string, rating int) (domain.Movie, error) {
	if s.rateErr != nil {
		return domain.Movie{}, s.rateErr
	}
	s.lastRating = rating
	m := domain.Movie{TmdbID: movieID, Title: "The Matrix", MyRating: &rating}
	return m, nil
}
func (s *stubCatalog) DeleteRating(context.Context, string, string) error { return s.err }
func (s *stubCatalog) RatedByUser(context.Context, string) ([]domain.Movie, error) {
	return s.rated, s.err
}
func (s *stubCatalog) Recommended(context.Context, string) ([]domain.Movie, error) {
	return s.recommended, s.err
}
func (s *stubCatalog) AllPeople(context.Context) ([]domain.Person, error) { return s.people, s.err }
func (s *stubCatalog) PersonByID(context.Context, string) (domain.PersonDetails, error) {
	return s.person, s.err
}
func (s *stubCatalog) BaconPath(context.Context, string, string) ([]domain.Person, error) {
	return s.bacon, s.err
}
func (s *stubCatalog) AllGenres(context.Context) ([]domain.Genre, error) { return s.genres, s.err }
func (s *stubCatalog) CreateGenre(context.Context, string) error {
	s.genreInserts++
	return s.ingestErr
}
func (s *stubCatalog) CreateMovie(context.Context, dataset.Movie) error {
	s.movieInserts++
	return s.ingestErr
}

type stubAuth struct {
	user  domain.User
	token domain.AuthToken
	err   error
}

func (s *stubAuth) Register(context.Context, string, string) (domain.AuthToken, error) {
	return s.token, s.err
}
func (s *stubAuth) Login(context.Context, string, string) (domain.AuthToken, error) {
	return s.token, s.err
}
func (s *stubAuth) Authenticate(context.Context, string) (domain.User, error) {
	return s.user, s.err
}

func newTestRouter(catalog *stubCatalog, auth *stubAuth) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, RouterDependencies{
		API: NewAPIHandlers(logger, catalog, auth),
	})
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body
}

func TestListMovies(t *testing.T) {
	catalog := &stubCatalog{movies: []domain.Movie{{TmdbID: "603", Title: "The Matrix"}}}
	router := newTestRouter(catalog, &stubAuth{err: apperr.Unauthorized("authorization required")})

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload []domain.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload) != 1 || payload[0].Title != "The Matrix" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestGetMovie_AnonymousViewer(t *testing.T) {
	catalog := &stubCatalog{details: domain.MovieDetails{Movie: domain.Movie{TmdbID: "603", Title: "The Matrix"}}}
	// Authentication failing must not fail anonymous browsing.
	router := newTestRouter(catalog, &stubAuth{err: apperr.Unauthorized("invalid token")})

	req := httptest.NewRequest(http.MethodGet, "/movies/603", nil)
	req.Header.Set("Authorization", "Token stale-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestGetMovie_NotFoundEnvelope(t *testing.T) {
	catalog := &stubCatalog{err: apperr.NotFound("movie not found")}
	router := newTestRouter(catalog, &stubAuth{})

	req := httptest.NewRequest(http.MethodGet, "/movies/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body.Status != http.StatusNotFound || body.Message != "movie not found" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestGetMovie_StoreErrorStaysGeneric(t *testing.T) {
	catalog := &stubCatalog{err: apperr.Store("get movie by id", io.ErrUnexpectedEOF)}
	router := newTestRouter(catalog, &stubAuth{})

	req := httptest.NewRequest(http.MethodGet, "/movies/603", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body.Message != "internal server error" {
		t.Fatalf("expected the engine error masked, got %q", body.Message)
	}
}

func TestListRatedMovies_LiteralRouteWins(t *testing.T) {
	catalog := &stubCatalog{rated: []domain.Movie{{TmdbID: "603", Title: "The Matrix"}}}
	router := newTestRouter(catalog, &stubAuth{user: domain.User{ID: "user-1"}})

	// "rated" must resolve to the per-user listing, not the {id} wildcard.
	req := httptest.NewRequest(http.MethodGet, "/movies/rated", nil)
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var payload []domain.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected the rated listing, got %+v", payload)
	}
}

func TestRateMovie(t *testing.T) {
	catalog := &stubCatalog{}
	router := newTestRouter(catalog, &stubAuth{user: domain.User{ID: "user-1"}})

	req := httptest.NewRequest(http.MethodPost, "/movies/603/rate", strings.NewReader(`{"rating": 4}`))
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if catalog.lastRating != 4 {
		t.Errorf("expected rating 4 forwarded to the catalog, got %d", catalog.lastRating)
	}

	var payload domain.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.MyRating == nil || *payload.MyRating != 4 {
		t.Errorf("expected my_rating 4 on the response, got %v", payload.MyRating)
	}
}

func TestRateMovie_RequiresAuth(t *testing.T) {
	catalog := &stubCatalog{}
	router := newTestRouter(catalog, &stubAuth{err: apperr.Unauthorized("authorization required")})

	req := httptest.NewRequest(http.MethodPost, "/movies/603/rate", strings.NewReader(`{"rating": 4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestRateMovie_OutOfRange(t *testing.T) {
	catalog := &stubCatalog{rateErr: apperr.Invalid("rating must be between 0 and 5")}
	router := newTestRouter(catalog, &stubAuth{user: domain.User{ID: "user-1"}})

	req := httptest.NewRequest(http.MethodPost, "/movies/603/rate", strings.NewReader(`{"rating": 11}`))
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRateMovie_MalformedBody(t *testing.T) {
	catalog := &stubCatalog{}
	router := newTestRouter(catalog, &stubAuth{user: domain.User{ID: "user-1"}})

	req := httptest.NewRequest(http.MethodPost, "/movies/603/rate", strings.NewReader(`{"rating": `))
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestDeleteMovieRating(t *testing.T) {
	catalog := &stubCatalog{}
	router := newTestRouter(catalog, &stubAuth{user: domain.User{ID: "user-1"}})

	req := httptest.NewRequest(http.MethodDelete, "/movies/603/rate", nil)
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestGetBaconPath(t *testing.T) {
	catalog := &stubCatalog{bacon: []domain.Person{{ID: "6384", Name: "Keanu Reeves"}}}
	router := newTestRouter(catalog, &stubAuth{})

	req := httptest.NewRequest(http.MethodGet, "/people/bacon?name1=Keanu%20Reeves&name2=Kevin%20Bacon", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestGetBaconPath_MissingParams(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubAuth{})

	req := httptest.NewRequest(http.MethodGet, "/people/bacon?name1=Keanu%20Reeves", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRegister(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubAuth{token: domain.AuthToken{Token: "key-1"}})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username": "jane", "password": "secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var payload domain.AuthToken
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Token != "key-1" {
		t.Fatalf("unexpected token payload: %+v", payload)
	}
}

func TestRegister_UnknownFieldRejected(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubAuth{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username": "jane", "password": "secret", "admin": true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestMe_HidesCredentials(t *testing.T) {
	user := domain.User{ID: "user-1", Username: "jane", PasswordHash: "$2a$10$hash", APIKey: "key-1"}
	router := newTestRouter(&stubCatalog{}, &stubAuth{user: user})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Token key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "$2a$10$hash") || strings.Contains(body, "key-1") {
		t.Fatalf("credentials leaked into the response: %s", body)
	}
}

func TestImportGenres_ReportsAttemptedCount(t *testing.T) {
	catalog := &stubCatalog{ingestErr: io.ErrUnexpectedEOF}
	router := newTestRouter(catalog, &stubAuth{})

	req := httptest.NewRequest(http.MethodPost, "/import/genres", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if catalog.genreInserts != len(dataset.Genres) {
		t.Fatalf("expected every record attempted, got %d of %d", catalog.genreInserts, len(dataset.Genres))
	}

	var message string
	if err := json.Unmarshal(rec.Body.Bytes(), &message); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Fire-and-forget ingestion reports the attempted count even when every
	// insert failed.
	want := "added " + strconv.Itoa(len(dataset.Genres)) + " genres"
	if message != want {
		t.Fatalf("expected %q, got %q", want, message)
	}
}

func TestImportMovies(t *testing.T) {
	catalog := &stubCatalog{}
	router := newTestRouter(catalog, &stubAuth{})

	req := httptest.NewRequest(http.MethodPost, "/import/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if catalog.movieInserts != len(dataset.Movies) {
		t.Fatalf("expected %d inserts, got %d", len(dataset.Movies), catalog.movieInserts)
	}
}
