package repository

import (
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

// Projectors: pure transformations from normalized node property maps into
// typed domain entities. Unknown properties are dropped, absent optional
// properties are simply omitted, and projection never fails.

// projectMovie shapes a Movie from node properties. Duration prefers the
// duration property and falls back to runtime. myRating attaches my_rating
// only when an explicit rating, including zero, was supplied.
func projectMovie(props map[string]any, myRating any) domain.Movie {
	m := domain.Movie{
		TmdbID:     toString(props["tmdbId"]),
		MovieID:    toString(props["movieId"]),
		Title:      toString(props["title"]),
		Released:   toInt(props["released"]),
		Year:       toInt(props["year"]),
		Rated:      toString(props["rated"]),
		Tagline:    toString(props["tagline"]),
		Plot:       toString(props["plot"]),
		Poster:     toString(props["poster"]),
		PosterImg:  toString(props["poster_image"]),
		URL:        toString(props["url"]),
		IMDBID:     toString(props["imdbId"]),
		IMDBRating: toFloat64(props["imdbRating"]),
		IMDBVotes:  toInt(props["imdbVotes"]),
		Budget:     toInt64(props["budget"]),
		Revenue:    toInt64(props["revenue"]),
		Languages:  toStrings(props["languages"]),
		Countries:  toStrings(props["countries"]),
	}

	if d, ok := props["duration"]; ok && d != nil {
		m.Duration = toInt(d)
	} else if r, ok := props["runtime"]; ok && r != nil {
		m.Duration = toInt(r)
	}

	if myRating != nil {
		rating := toInt(myRating)
		m.MyRating = &rating
	}

	return m
}

// projectPerson shapes a Person from node properties, deriving id from tmdbId
// and poster_image from poster.
func projectPerson(props map[string]any) domain.Person {
	tmdbID := toString(props["tmdbId"])
	return domain.Person{
		ID:        tmdbID,
		TmdbID:    tmdbID,
		Name:      toString(props["name"]),
		Born:      toInt(props["born"]),
		Died:      toInt(props["died"]),
		BornIn:    toString(props["bornIn"]),
		Bio:       toString(props["bio"]),
		Poster:    toString(props["poster"]),
		PosterImg: toString(props["poster"]),
		URL:       toString(props["url"]),
		IMDBID:    toString(props["imdbId"]),
	}
}

// projectGenre shapes a Genre, keeping the internal engine id as a legacy
// lookup key.
func projectGenre(props map[string]any) domain.Genre {
	return domain.Genre{
		ID:   toInt64(props["_id"]),
		Name: toString(props["name"]),
	}
}

// projectCastMember shapes an actor entry built by the movie detail query's
// collect() map. Entries with neither id nor name come from unmatched
// OPTIONAL rows and are dropped by the caller.
func projectCastMember(props map[string]any) domain.CastMember {
	return domain.CastMember{
		ID:        toString(props["id"]),
		Name:      toString(props["name"]),
		PosterImg: toString(props["poster_image"]),
		Role:      toString(props["role"]),
	}
}

// projectMovieSummary shapes a filmography entry built by the person detail
// query's collect() map.
func projectMovieSummary(props map[string]any) domain.MovieSummary {
	return domain.MovieSummary{
		ID:        toString(props["id"]),
		Name:      toString(props["name"]),
		PosterImg: toString(props["poster_image"]),
		Role:      toString(props["role"]),
	}
}

// projectUser shapes a User from node properties. Credentials stay internal.
func projectUser(props map[string]any) domain.User {
	return domain.User{
		ID:           toString(props["id"]),
		Username:     toString(props["username"]),
		PasswordHash: toString(props["password"]),
		APIKey:       toString(props["api_key"]),
	}
}

func emptySummary(s domain.MovieSummary) bool {
	return s.ID == "" && s.Name == ""
}

func emptyCastMember(c domain.CastMember) bool {
	return c.ID == "" && c.Name == ""
}
