package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/graph"
)

func personProps(tmdbID, name string) map[string]any {
	return map[string]any{
		"tmdbId": tmdbID,
		"name":   name,
		"born":   int64(1964),
	}
}

func TestRepository_AllPeople(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"person": personProps("6384", "Keanu Reeves")},
		{"person": personProps("2975", "Laurence Fishburne")},
	}})

	people, err := repo.AllPeople(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("expected 2 people, got %d", len(people))
	}
	if people[0].Name != "Keanu Reeves" || people[0].ID != "6384" {
		t.Errorf("unexpected first person: %+v", people[0])
	}
}

func TestRepository_PersonByID(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{
			"person": personProps("6384", "Keanu Reeves"),
			"directed": []any{
				map[string]any{"id": nil, "name": nil},
			},
			"produced": []any{},
			"wrote":    []any{},
			"actedIn": []any{
				map[string]any{"id": "603", "name": "The Matrix", "role": "Neo"},
			},
			"related": []any{
				map[string]any{"id": "2975", "name": "Laurence Fishburne", "role": "Morpheus"},
			},
		},
	}})

	details, err := repo.PersonByID(context.Background(), "6384")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if details.Name != "Keanu Reeves" {
		t.Errorf("expected name Keanu Reeves, got %s", details.Name)
	}
	if len(details.Directed) != 0 {
		t.Errorf("expected the empty directed entry dropped, got %+v", details.Directed)
	}
	if len(details.ActedIn) != 1 || details.ActedIn[0].Role != "Neo" {
		t.Errorf("unexpected actedIn: %+v", details.ActedIn)
	}
	if len(details.Related) != 1 || details.Related[0].Name != "Laurence Fishburne" {
		t.Errorf("unexpected related people: %+v", details.Related)
	}

	calls := mem.ReadCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 read query, got %d", len(calls))
	}
	if calls[0].Params["id"] != "6384" {
		t.Errorf("unexpected params: %+v", calls[0].Params)
	}
	if !strings.Contains(calls[0].Query, "relatedPerson <> person") {
		t.Errorf("expected the person excluded from their own related list, got %s", calls[0].Query)
	}
}

func TestRepository_PersonByID_NotFound(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	_, err := repo.PersonByID(context.Background(), "missing")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

func TestRepository_BaconPath(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"person": personProps("6384", "Keanu Reeves")},
		{"person": personProps("4724", "Kevin Bacon")},
	}})

	people, err := repo.BaconPath(context.Background(), "Keanu Reeves", "Kevin Bacon")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("expected 2 people on the path, got %d", len(people))
	}

	calls := mem.ReadCalls()
	if !strings.Contains(calls[0].Query, "shortestPath") {
		t.Errorf("expected a shortestPath traversal, got %s", calls[0].Query)
	}
	if calls[0].Params["name1"] != "Keanu Reeves" || calls[0].Params["name2"] != "Kevin Bacon" {
		t.Errorf("unexpected params: %+v", calls[0].Params)
	}
}

func TestRepository_BaconPath_NoPath(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	people, err := repo.BaconPath(context.Background(), "Keanu Reeves", "Nobody")
	if err != nil {
		t.Fatalf("expected no error when no path exists, got %v", err)
	}
	if len(people) != 0 {
		t.Fatalf("expected empty path, got %d people", len(people))
	}
}
