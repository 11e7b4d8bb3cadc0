package repository

import (
	"context"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/dataset"
)

// CreateGenre inserts one genre node. Ingestion is at-least-once: there is no
// MERGE here, so re-ingesting against a non-empty store duplicates nodes
// unless EnsureConstraints has been applied first.
func (r *Repository) CreateGenre(ctx context.Context, name string) error {
	_, err := r.client.ExecuteWrite(ctx, createGenreCypher, map[string]any{
		"name": name,
	})
	if err != nil {
		return apperr.Store("create genre", err)
	}
	return nil
}

// CreateMovie inserts one movie node with the full seed property set.
func (r *Repository) CreateMovie(ctx context.Context, movie dataset.Movie) error {
	_, err := r.client.ExecuteWrite(ctx, createMovieCypher, map[string]any{
		"url":          movie.URL,
		"id":           movie.ID,
		"languages":    movie.Languages,
		"title":        movie.Title,
		"countries":    movie.Countries,
		"budget":       movie.Budget,
		"duration":     movie.Duration,
		"imdbId":       movie.IMDBID,
		"imdbRating":   movie.IMDBRating,
		"imdbVotes":    movie.IMDBVotes,
		"movieId":      movie.MovieID,
		"plot":         movie.Plot,
		"poster":       movie.Poster,
		"poster_image": movie.PosterImage,
		"released":     movie.Released,
		"revenue":      movie.Revenue,
		"runtime":      movie.Runtime,
		"tagline":      movie.Tagline,
		"tmdbId":       movie.TmdbID,
		"year":         movie.Year,
	})
	if err != nil {
		return apperr.Store("create movie", err)
	}
	return nil
}

// EnsureConstraints creates the uniqueness constraints that make re-ingestion
// idempotent. This is opt-in: the default ingestion path documents
// at-least-once semantics instead of enforcing uniqueness.
func (r *Repository) EnsureConstraints(ctx context.Context) error {
	for _, cypher := range constraintCyphers {
		if _, err := r.client.ExecuteWrite(ctx, cypher, nil); err != nil {
			return apperr.Store("ensure constraints", err)
		}
	}
	return nil
}

const createGenreCypher = `
CREATE (g:Genre {name: $name})
`

const createMovieCypher = `
CREATE (m:Movie {url: $url, id: $id, languages: $languages, title: $title,
  countries: $countries, budget: $budget, duration: $duration, imdbId: $imdbId,
  imdbRating: $imdbRating, imdbVotes: $imdbVotes, movieId: $movieId,
  plot: $plot, poster: $poster, poster_image: $poster_image,
  released: $released, revenue: $revenue, runtime: $runtime,
  tagline: $tagline, tmdbId: $tmdbId, year: $year})
`

var constraintCyphers = []string{
	`CREATE CONSTRAINT movie_tmdb_id IF NOT EXISTS FOR (m:Movie) REQUIRE m.tmdbId IS UNIQUE`,
	`CREATE CONSTRAINT person_tmdb_id IF NOT EXISTS FOR (p:Person) REQUIRE p.tmdbId IS UNIQUE`,
	`CREATE CONSTRAINT genre_name IF NOT EXISTS FOR (g:Genre) REQUIRE g.name IS UNIQUE`,
	`CREATE CONSTRAINT user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT user_username IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE`,
}
