package domain

// Movie is the typed projection of a Movie node. Unknown graph properties are
// dropped rather than propagated dynamically; absent optional fields are
// omitted from serialized output.
type Movie struct {
	TmdbID     string   `json:"tmdbId,omitempty"`
	MovieID    string   `json:"movieId,omitempty"`
	Title      string   `json:"title,omitempty"`
	Released   int      `json:"released,omitempty"`
	Year       int      `json:"year,omitempty"`
	Duration   int      `json:"duration,omitempty"`
	Rated      string   `json:"rated,omitempty"`
	Tagline    string   `json:"tagline,omitempty"`
	Plot       string   `json:"plot,omitempty"`
	Poster     string   `json:"poster,omitempty"`
	PosterImg  string   `json:"poster_image,omitempty"`
	URL        string   `json:"url,omitempty"`
	IMDBID     string   `json:"imdbId,omitempty"`
	IMDBRating float64  `json:"imdbRating,omitempty"`
	IMDBVotes  int      `json:"imdbVotes,omitempty"`
	Budget     int64    `json:"budget,omitempty"`
	Revenue    int64    `json:"revenue,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Countries  []string `json:"countries,omitempty"`

	// MyRating is the viewer-specific rating, attached per query rather than
	// stored on the movie node. A zero rating is still a rating, hence the
	// pointer.
	MyRating *int `json:"my_rating,omitempty"`
}

// CastMember is an actor entry on a movie detail view, carrying the role
// attribute from the ACTED_IN relationship.
type CastMember struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	PosterImg string `json:"poster_image,omitempty"`
	Role      string `json:"role,omitempty"`
}

// MovieDetails is the full single-movie view with nested cast, crew, genres
// and related movies.
type MovieDetails struct {
	Movie

	Directors []Person     `json:"directors"`
	Producers []Person     `json:"producers"`
	Writers   []Person     `json:"writers"`
	Actors    []CastMember `json:"actors"`
	Genres    []Genre      `json:"genres"`
	Related   []Movie      `json:"related"`
}
