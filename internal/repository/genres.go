package repository

import (
	"context"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

// AllGenres returns every genre node.
func (r *Repository) AllGenres(ctx context.Context) ([]domain.Genre, error) {
	res, err := r.client.ExecuteRead(ctx, allGenresCypher, nil)
	if err != nil {
		return nil, apperr.Store("list genres", err)
	}

	genres := make([]domain.Genre, 0, len(res.Records))
	for _, record := range res.Records {
		props, ok := asProps(record["genre"])
		if !ok {
			continue
		}
		genres = append(genres, projectGenre(props))
	}
	return genres, nil
}

const allGenresCypher = `
MATCH (genre:Genre)
RETURN genre
`
