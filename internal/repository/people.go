package repository

import (
	"context"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
	"github.com/VladyslavHaiko/moviegraph/internal/graph"
)

func manyPeople(res graph.Result) []domain.Person {
	people := make([]domain.Person, 0, len(res.Records))
	for _, record := range res.Records {
		props, ok := asProps(record["person"])
		if !ok {
			continue
		}
		people = append(people, projectPerson(props))
	}
	return people
}

// AllPeople returns every person node.
func (r *Repository) AllPeople(ctx context.Context) ([]domain.Person, error) {
	res, err := r.client.ExecuteRead(ctx, allPeopleCypher, nil)
	if err != nil {
		return nil, apperr.Store("list people", err)
	}
	return manyPeople(res), nil
}

// PersonByID returns the full detail view for one person: filmography per
// role plus co-actors from shared movies.
func (r *Repository) PersonByID(ctx context.Context, personID string) (domain.PersonDetails, error) {
	res, err := r.client.ExecuteRead(ctx, personByIDCypher, map[string]any{
		"id": personID,
	})
	if err != nil {
		return domain.PersonDetails{}, apperr.Store("get person by id", err)
	}
	if len(res.Records) == 0 {
		return domain.PersonDetails{}, apperr.NotFound("person not found")
	}

	record := res.Records[0]
	props, ok := asProps(record["person"])
	if !ok {
		return domain.PersonDetails{}, apperr.NotFound("person not found")
	}

	details := domain.PersonDetails{
		Person:   projectPerson(props),
		Directed: make([]domain.MovieSummary, 0),
		Produced: make([]domain.MovieSummary, 0),
		Wrote:    make([]domain.MovieSummary, 0),
		ActedIn:  make([]domain.MovieSummary, 0),
		Related:  make([]domain.RelatedPerson, 0),
	}

	collectInto := func(alias string, dst *[]domain.MovieSummary) {
		for _, p := range asPropsSlice(record[alias]) {
			if summary := projectMovieSummary(p); !emptySummary(summary) {
				*dst = append(*dst, summary)
			}
		}
	}
	collectInto("directed", &details.Directed)
	collectInto("produced", &details.Produced)
	collectInto("wrote", &details.Wrote)
	collectInto("actedIn", &details.ActedIn)

	for _, p := range asPropsSlice(record["related"]) {
		rp := domain.RelatedPerson{
			ID:        toString(p["id"]),
			Name:      toString(p["name"]),
			PosterImg: toString(p["poster_image"]),
			Role:      toString(p["role"]),
		}
		if rp.ID == "" && rp.Name == "" {
			continue
		}
		details.Related = append(details.Related, rp)
	}

	return details, nil
}

// BaconPath returns every person on the shortest ACTED_IN path between two
// named people. No path yields an empty list, not an error.
func (r *Repository) BaconPath(ctx context.Context, name1, name2 string) ([]domain.Person, error) {
	res, err := r.client.ExecuteRead(ctx, baconPathCypher, map[string]any{
		"name1": name1,
		"name2": name2,
	})
	if err != nil {
		return nil, apperr.Store("bacon path", err)
	}
	return manyPeople(res), nil
}

const allPeopleCypher = `
MATCH (person:Person)
RETURN person
`

const personByIDCypher = `
MATCH (person:Person {tmdbId: $id})
OPTIONAL MATCH (person)-[:DIRECTED]->(d:Movie)
OPTIONAL MATCH (person)-[:PRODUCED]->(p:Movie)
OPTIONAL MATCH (person)-[:WRITER_OF]->(w:Movie)
OPTIONAL MATCH (person)-[r:ACTED_IN]->(a:Movie)
OPTIONAL MATCH (person)-->(movies:Movie)<-[relatedRole:ACTED_IN]-(relatedPerson:Person)
WHERE relatedPerson <> person
RETURN DISTINCT person,
       collect(DISTINCT {name: d.title, id: d.tmdbId, poster_image: d.poster}) AS directed,
       collect(DISTINCT {name: p.title, id: p.tmdbId, poster_image: p.poster}) AS produced,
       collect(DISTINCT {name: w.title, id: w.tmdbId, poster_image: w.poster}) AS wrote,
       collect(DISTINCT {name: a.title, id: a.tmdbId, poster_image: a.poster, role: r.role}) AS actedIn,
       collect(DISTINCT {name: relatedPerson.name, id: relatedPerson.tmdbId, poster_image: relatedPerson.poster, role: relatedRole.role}) AS related
`

const baconPathCypher = `
MATCH p = shortestPath((p1:Person {name: $name1})-[:ACTED_IN*]-(target:Person {name: $name2}))
WITH [n IN nodes(p) WHERE n:Person | n] AS bacon
UNWIND bacon AS person
RETURN DISTINCT person
`
