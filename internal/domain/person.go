package domain

// Person is the typed projection of a Person node. ID and PosterImg are
// derived aliases of tmdbId and poster.
type Person struct {
	ID        string `json:"id,omitempty"`
	TmdbID    string `json:"tmdbId,omitempty"`
	Name      string `json:"name,omitempty"`
	Born      int    `json:"born,omitempty"`
	Died      int    `json:"died,omitempty"`
	BornIn    string `json:"bornIn,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Poster    string `json:"poster,omitempty"`
	PosterImg string `json:"poster_image,omitempty"`
	URL       string `json:"url,omitempty"`
	IMDBID    string `json:"imdbId,omitempty"`
}

// MovieSummary is a lightweight movie reference used in person detail
// collections (directed, produced, wrote, acted in).
type MovieSummary struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	PosterImg string `json:"poster_image,omitempty"`
	Role      string `json:"role,omitempty"`
}

// RelatedPerson is a co-actor reference on a person detail view.
type RelatedPerson struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	PosterImg string `json:"poster_image,omitempty"`
	Role      string `json:"role,omitempty"`
}

// PersonDetails is the full single-person view with filmography and
// co-actors.
type PersonDetails struct {
	Person

	Directed []MovieSummary  `json:"directed"`
	Produced []MovieSummary  `json:"produced"`
	Wrote    []MovieSummary  `json:"wrote"`
	ActedIn  []MovieSummary  `json:"actedIn"`
	Related  []RelatedPerson `json:"related"`
}
