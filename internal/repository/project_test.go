package repository

import (
	"testing"
)

func TestProjectMovie_DurationPrefersDuration(t *testing.T) {
	m := projectMovie(map[string]any{
		"title":    "The Matrix",
		"duration": int64(136),
		"runtime":  int64(999),
	}, nil)
	if m.Duration != 136 {
		t.Fatalf("expected duration 136, got %d", m.Duration)
	}
}

func TestProjectMovie_DurationFallsBackToRuntime(t *testing.T) {
	m := projectMovie(map[string]any{
		"title":   "The Matrix",
		"runtime": int64(136),
	}, nil)
	if m.Duration != 136 {
		t.Fatalf("expected runtime fallback 136, got %d", m.Duration)
	}
}

func TestProjectMovie_MyRating(t *testing.T) {
	if m := projectMovie(map[string]any{"title": "x"}, nil); m.MyRating != nil {
		t.Fatalf("expected no my_rating without a supplied rating, got %v", *m.MyRating)
	}
	if m := projectMovie(map[string]any{"title": "x"}, int64(0)); m.MyRating == nil || *m.MyRating != 0 {
		t.Fatalf("expected an explicit zero rating to survive projection, got %v", m.MyRating)
	}
}

func TestProjectMovie_Coercion(t *testing.T) {
	m := projectMovie(map[string]any{
		"tmdbId":     "603",
		"released":   int64(1999),
		"imdbRating": 8.7,
		"imdbVotes":  int64(1700000),
		"budget":     int64(63000000),
		"languages":  []any{"English", ""},
	}, nil)

	if m.TmdbID != "603" || m.Released != 1999 {
		t.Errorf("unexpected identity fields: %+v", m)
	}
	if m.IMDBRating != 8.7 {
		t.Errorf("expected imdbRating 8.7, got %v", m.IMDBRating)
	}
	if m.Budget != 63000000 {
		t.Errorf("expected budget 63000000, got %d", m.Budget)
	}
	if len(m.Languages) != 1 || m.Languages[0] != "English" {
		t.Errorf("expected empty language entries dropped, got %v", m.Languages)
	}
}

func TestProjectPerson_DerivedFields(t *testing.T) {
	p := projectPerson(map[string]any{
		"tmdbId": "6384",
		"name":   "Keanu Reeves",
		"poster": "https://image.tmdb.org/6384.jpg",
	})
	if p.ID != "6384" {
		t.Errorf("expected id derived from tmdbId, got %s", p.ID)
	}
	if p.PosterImg != p.Poster {
		t.Errorf("expected poster_image mirrored from poster, got %s", p.PosterImg)
	}
}

func TestProjectGenre_UsesEngineID(t *testing.T) {
	g := projectGenre(map[string]any{"_id": int64(14), "name": "Sci-Fi"})
	if g.ID != 14 || g.Name != "Sci-Fi" {
		t.Fatalf("unexpected genre: %+v", g)
	}
}
