// Package dataset holds the fixed seed data used by the ingestion operations
// and the ingest CLI. The set is intentionally small; it exists to bootstrap
// demo environments, not to mirror a full catalog.
package dataset

// Movie is a seed record with the full property set the ingestion statement
// writes onto a Movie node.
type Movie struct {
	URL         string
	ID          int
	Languages   []string
	Title       string
	Countries   []string
	Budget      int64
	Duration    int
	IMDBID      string
	IMDBRating  float64
	IMDBVotes   int
	MovieID     string
	Plot        string
	Poster      string
	PosterImage string
	Released    int
	Revenue     int64
	Runtime     int
	Tagline     string
	TmdbID      string
	Year        int
}

// Genre is a seed record for a Genre node.
type Genre struct {
	Name string
}

// Genres is the seed genre list.
var Genres = []Genre{
	{Name: "Action"},
	{Name: "Adventure"},
	{Name: "Comedy"},
	{Name: "Drama"},
	{Name: "Sci-Fi"},
	{Name: "Thriller"},
}

// Movies is the seed movie list.
var Movies = []Movie{
	{
		URL:        "https://themoviedb.org/movie/862",
		ID:         862,
		Languages:  []string{"English"},
		Title:      "Toy Story",
		Countries:  []string{"USA"},
		Budget:     30000000,
		Duration:   81,
		IMDBID:     "0114709",
		IMDBRating: 8.3,
		IMDBVotes:  591836,
		MovieID:    "1",
		Plot:       "A cowboy doll is profoundly threatened and jealous when a new spaceman figure supplants him as top toy in a boy's room.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/uXDfjJbdP4ijW5hWSBrPrlKpxab.jpg",
		Released:   1995,
		Revenue:    373554033,
		Runtime:    81,
		Tagline:    "The adventure takes off!",
		TmdbID:     "862",
		Year:       1995,
	},
	{
		URL:        "https://themoviedb.org/movie/603",
		ID:         603,
		Languages:  []string{"English"},
		Title:      "The Matrix",
		Countries:  []string{"USA", "Australia"},
		Budget:     63000000,
		Duration:   136,
		IMDBID:     "0133093",
		IMDBRating: 8.7,
		IMDBVotes:  1496538,
		MovieID:    "2571",
		Plot:       "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		Released:   1999,
		Revenue:    463517383,
		Runtime:    136,
		Tagline:    "Welcome to the Real World.",
		TmdbID:     "603",
		Year:       1999,
	},
	{
		URL:        "https://themoviedb.org/movie/13",
		ID:         13,
		Languages:  []string{"English"},
		Title:      "Forrest Gump",
		Countries:  []string{"USA"},
		Budget:     55000000,
		Duration:   142,
		IMDBID:     "0109830",
		IMDBRating: 8.8,
		IMDBVotes:  1631549,
		MovieID:    "356",
		Plot:       "The presidencies of Kennedy and Johnson, the Vietnam War, and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/h5J4W4veyxMXDMjeNxZI46TsHOb.jpg",
		Released:   1994,
		Revenue:    677387716,
		Runtime:    142,
		Tagline:    "Life is like a box of chocolates... you never know what you're gonna get.",
		TmdbID:     "13",
		Year:       1994,
	},
	{
		URL:        "https://themoviedb.org/movie/680",
		ID:         680,
		Languages:  []string{"English", "Spanish", "French"},
		Title:      "Pulp Fiction",
		Countries:  []string{"USA"},
		Budget:     8000000,
		Duration:   154,
		IMDBID:     "0110912",
		IMDBRating: 8.9,
		IMDBVotes:  1583857,
		MovieID:    "296",
		Plot:       "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/dM2w364MScsjFf8pfMbaWUcWrR.jpg",
		Released:   1994,
		Revenue:    213928762,
		Runtime:    154,
		Tagline:    "Just because you are a character doesn't mean you have character.",
		TmdbID:     "680",
		Year:       1994,
	},
	{
		URL:        "https://themoviedb.org/movie/27205",
		ID:         27205,
		Languages:  []string{"English", "Japanese", "French"},
		Title:      "Inception",
		Countries:  []string{"USA", "UK"},
		Budget:     160000000,
		Duration:   148,
		IMDBID:     "1375666",
		IMDBRating: 8.8,
		IMDBVotes:  1871691,
		MovieID:    "79132",
		Plot:       "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		Released:   2010,
		Revenue:    825532764,
		Runtime:    148,
		Tagline:    "Your mind is the scene of the crime.",
		TmdbID:     "27205",
		Year:       2010,
	},
	{
		URL:        "https://themoviedb.org/movie/105",
		ID:         105,
		Languages:  []string{"English"},
		Title:      "Back to the Future",
		Countries:  []string{"USA"},
		Budget:     19000000,
		Duration:   116,
		IMDBID:     "0088763",
		IMDBRating: 8.5,
		IMDBVotes:  940007,
		MovieID:    "1270",
		Plot:       "Marty McFly, a 17-year-old high school student, is accidentally sent thirty years into the past in a time-traveling DeLorean.",
		Poster:     "https://image.tmdb.org/t/p/w440_and_h660_face/fNOH9f1aA7XRTzl1sAOx9iF553Q.jpg",
		Released:   1985,
		Revenue:    381109762,
		Runtime:    116,
		Tagline:    "He's the only kid ever to get into trouble before he was born.",
		TmdbID:     "105",
		Year:       1985,
	},
}
