package repository

import (
	"context"
	"strconv"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
	"github.com/VladyslavHaiko/moviegraph/internal/graph"
)

// manyMovies projects the "movie" alias of each record, attaching my_rating
// when the record carries one.
func manyMovies(res graph.Result) []domain.Movie {
	movies := make([]domain.Movie, 0, len(res.Records))
	for _, record := range res.Records {
		props, ok := asProps(record["movie"])
		if !ok {
			continue
		}
		movies = append(movies, projectMovie(props, record["my_rating"]))
	}
	return movies
}

// AllMovies returns every movie node.
func (r *Repository) AllMovies(ctx context.Context) ([]domain.Movie, error) {
	res, err := r.client.ExecuteRead(ctx, allMoviesCypher, nil)
	if err != nil {
		return nil, apperr.Store("list movies", err)
	}
	return manyMovies(res), nil
}

// MovieByID returns the full detail view for one movie: cast, crew, genres
// and related movies ranked by shared-actor count. userID is optional; when
// the viewer has rated the movie the projection carries my_rating.
func (r *Repository) MovieByID(ctx context.Context, movieID, userID string) (domain.MovieDetails, error) {
	res, err := r.client.ExecuteRead(ctx, movieByIDCypher, map[string]any{
		"movieId": movieID,
		"userId":  userID,
	})
	if err != nil {
		return domain.MovieDetails{}, apperr.Store("get movie by id", err)
	}
	if len(res.Records) == 0 {
		return domain.MovieDetails{}, apperr.NotFound("movie not found")
	}

	record := res.Records[0]
	props, ok := asProps(record["movie"])
	if !ok {
		return domain.MovieDetails{}, apperr.NotFound("movie not found")
	}

	details := domain.MovieDetails{
		Movie:     projectMovie(props, record["my_rating"]),
		Directors: make([]domain.Person, 0),
		Producers: make([]domain.Person, 0),
		Writers:   make([]domain.Person, 0),
		Actors:    make([]domain.CastMember, 0),
		Genres:    make([]domain.Genre, 0),
		Related:   make([]domain.Movie, 0),
	}

	for _, p := range asPropsSlice(record["directors"]) {
		details.Directors = append(details.Directors, projectPerson(p))
	}
	for _, p := range asPropsSlice(record["producers"]) {
		details.Producers = append(details.Producers, projectPerson(p))
	}
	for _, p := range asPropsSlice(record["writers"]) {
		details.Writers = append(details.Writers, projectPerson(p))
	}
	for _, p := range asPropsSlice(record["actors"]) {
		if member := projectCastMember(p); !emptyCastMember(member) {
			details.Actors = append(details.Actors, member)
		}
	}
	for _, p := range asPropsSlice(record["genres"]) {
		details.Genres = append(details.Genres, projectGenre(p))
	}
	for _, p := range asPropsSlice(record["related"]) {
		details.Related = append(details.Related, projectMovie(p, nil))
	}

	return details, nil
}

// MoviesByDateRange returns movies released strictly between start and end.
// Non-numeric bounds coerce to zero, matching the legacy surface.
func (r *Repository) MoviesByDateRange(ctx context.Context, start, end string) ([]domain.Movie, error) {
	startYear, _ := strconv.Atoi(start)
	endYear, _ := strconv.Atoi(end)

	res, err := r.client.ExecuteRead(ctx, moviesByDateRangeCypher, map[string]any{
		"start": startYear,
		"end":   endYear,
	})
	if err != nil {
		return nil, apperr.Store("list movies by date range", err)
	}
	return manyMovies(res), nil
}

// MoviesByGenre returns movies linked to a genre matched by case-insensitive
// name or, as a legacy fallback, by internal engine id.
func (r *Repository) MoviesByGenre(ctx context.Context, genreID string) ([]domain.Movie, error) {
	res, err := r.client.ExecuteRead(ctx, moviesByGenreCypher, map[string]any{
		"genreId": genreID,
	})
	if err != nil {
		return nil, apperr.Store("list movies by genre", err)
	}
	return manyMovies(res), nil
}

// MoviesByDirector returns movies a person directed.
func (r *Repository) MoviesByDirector(ctx context.Context, personID string) ([]domain.Movie, error) {
	return r.moviesByPerson(ctx, moviesByDirectorCypher, personID, "list movies by director")
}

// MoviesByWriter returns movies a person wrote.
func (r *Repository) MoviesByWriter(ctx context.Context, personID string) ([]domain.Movie, error) {
	return r.moviesByPerson(ctx, moviesByWriterCypher, personID, "list movies by writer")
}

// MoviesByActor returns movies a person acted in.
func (r *Repository) MoviesByActor(ctx context.Context, personID string) ([]domain.Movie, error) {
	return r.moviesByPerson(ctx, moviesByActorCypher, personID, "list movies by actor")
}

func (r *Repository) moviesByPerson(ctx context.Context, cypher, personID, op string) ([]domain.Movie, error) {
	res, err := r.client.ExecuteRead(ctx, cypher, map[string]any{
		"personId": personID,
	})
	if err != nil {
		return nil, apperr.Store(op, err)
	}
	return manyMovies(res), nil
}

// Rate upserts the single RATED edge between the user and the movie. The
// rating range is validated before anything reaches the store; out-of-range
// values cause zero store calls.
func (r *Repository) Rate(ctx context.Context, movieID, userID string, rating int) (domain.Movie, error) {
	if rating < 0 || rating > 5 {
		return domain.Movie{}, apperr.Invalid("rating must be between 0 and 5")
	}

	res, err := r.client.ExecuteWrite(ctx, rateMovieCypher, map[string]any{
		"movieId": movieID,
		"userId":  userID,
		"rating":  rating,
	})
	if err != nil {
		return domain.Movie{}, apperr.Store("rate movie", err)
	}
	if len(res.Records) == 0 {
		return domain.Movie{}, apperr.NotFound("movie not found")
	}

	props, _ := asProps(res.Records[0]["movie"])
	return projectMovie(props, rating), nil
}

// DeleteRating removes the RATED edge between the user and the movie. Deleting
// a rating that does not exist is not an error.
func (r *Repository) DeleteRating(ctx context.Context, movieID, userID string) error {
	_, err := r.client.ExecuteWrite(ctx, deleteRatingCypher, map[string]any{
		"movieId": movieID,
		"userId":  userID,
	})
	if err != nil {
		return apperr.Store("delete movie rating", err)
	}
	return nil
}

// RatedByUser returns the movies the user has rated, each carrying my_rating.
func (r *Repository) RatedByUser(ctx context.Context, userID string) ([]domain.Movie, error) {
	res, err := r.client.ExecuteRead(ctx, ratedByUserCypher, map[string]any{
		"userId": userID,
	})
	if err != nil {
		return nil, apperr.Store("list rated movies", err)
	}
	return manyMovies(res), nil
}

// Recommended runs the collaborative filter: users whose ratings sit within
// one point of the target user's are treated as similar, their ratings on
// other movies are averaged, and the top 25 by descending average come back.
// Movies the target user already rated are excluded.
func (r *Repository) Recommended(ctx context.Context, userID string) ([]domain.Movie, error) {
	res, err := r.client.ExecuteRead(ctx, recommendedCypher, map[string]any{
		"userId": userID,
	})
	if err != nil {
		return nil, apperr.Store("list recommended movies", err)
	}
	return manyMovies(res), nil
}

const allMoviesCypher = `
MATCH (movie:Movie)
RETURN movie
`

const movieByIDCypher = `
MATCH (movie:Movie {tmdbId: $movieId})
OPTIONAL MATCH (movie)<-[my_rated:RATED]-(me:User {id: $userId})
OPTIONAL MATCH (movie)<-[r:ACTED_IN]-(a:Person)
OPTIONAL MATCH (related:Movie)<-[:ACTED_IN]-(a:Person) WHERE related <> movie
OPTIONAL MATCH (movie)-[:IN_GENRE]->(genre:Genre)
OPTIONAL MATCH (movie)<-[:DIRECTED]-(d:Person)
OPTIONAL MATCH (movie)<-[:PRODUCED]-(p:Person)
OPTIONAL MATCH (movie)<-[:WRITER_OF]-(w:Person)
WITH DISTINCT movie,
     my_rated,
     genre, d, p, w, a, r, related, count(related) AS countRelated
ORDER BY countRelated DESC
RETURN DISTINCT movie,
       my_rated.rating AS my_rating,
       collect(DISTINCT d) AS directors,
       collect(DISTINCT p) AS producers,
       collect(DISTINCT w) AS writers,
       collect(DISTINCT {name: a.name, id: a.tmdbId, poster_image: a.poster, role: r.role}) AS actors,
       collect(DISTINCT related) AS related,
       collect(DISTINCT genre) AS genres
`

const moviesByDateRangeCypher = `
MATCH (movie:Movie)
WHERE movie.released > $start AND movie.released < $end
RETURN movie
`

const moviesByGenreCypher = `
MATCH (movie:Movie)-[:IN_GENRE]->(genre)
WHERE toLower(genre.name) = toLower($genreId) OR id(genre) = toInteger($genreId)
RETURN movie
`

const moviesByDirectorCypher = `
MATCH (:Person {tmdbId: $personId})-[:DIRECTED]->(movie:Movie)
RETURN DISTINCT movie
`

const moviesByWriterCypher = `
MATCH (:Person {tmdbId: $personId})-[:WRITER_OF]->(movie:Movie)
RETURN DISTINCT movie
`

const moviesByActorCypher = `
MATCH (:Person {tmdbId: $personId})-[:ACTED_IN]->(movie:Movie)
RETURN DISTINCT movie
`

const rateMovieCypher = `
MATCH (u:User {id: $userId}), (m:Movie {tmdbId: $movieId})
MERGE (u)-[r:RATED]->(m)
SET r.rating = $rating
RETURN m AS movie
`

const deleteRatingCypher = `
MATCH (u:User {id: $userId})-[r:RATED]->(m:Movie {tmdbId: $movieId})
DELETE r
`

const ratedByUserCypher = `
MATCH (:User {id: $userId})-[rated:RATED]->(movie:Movie)
RETURN DISTINCT movie, rated.rating AS my_rating
`

const recommendedCypher = `
MATCH (me:User {id: $userId})-[my:RATED]->(m:Movie)
MATCH (other:User)-[their:RATED]->(m)
WHERE me <> other
  AND abs(my.rating - their.rating) < 2
WITH me, other, m
MATCH (other)-[otherRating:RATED]->(movie:Movie)
WHERE movie <> m
  AND NOT (me)-[:RATED]->(movie)
WITH movie, avg(otherRating.rating) AS avgRating
RETURN movie
ORDER BY avgRating DESC
LIMIT 25
`
