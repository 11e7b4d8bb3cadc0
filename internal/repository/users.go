package repository

import (
	"context"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

// CreateUser persists a new user node. Callers are expected to have checked
// username availability first; without a uniqueness constraint the check and
// the create are two statements and can race, which EnsureConstraints closes.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	_, err := r.client.ExecuteWrite(ctx, createUserCypher, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"password": user.PasswordHash,
		"apiKey":   user.APIKey,
	})
	if err != nil {
		return apperr.Store("create user", err)
	}
	return nil
}

// UserByUsername looks a user up by username.
func (r *Repository) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.oneUser(ctx, userByUsernameCypher, map[string]any{"username": username})
}

// UserByAPIKey looks a user up by the opaque API key attached to requests.
func (r *Repository) UserByAPIKey(ctx context.Context, apiKey string) (domain.User, error) {
	return r.oneUser(ctx, userByAPIKeyCypher, map[string]any{"apiKey": apiKey})
}

// UserByID looks a user up by id.
func (r *Repository) UserByID(ctx context.Context, id string) (domain.User, error) {
	return r.oneUser(ctx, userByIDCypher, map[string]any{"id": id})
}

func (r *Repository) oneUser(ctx context.Context, cypher string, params map[string]any) (domain.User, error) {
	res, err := r.client.ExecuteRead(ctx, cypher, params)
	if err != nil {
		return domain.User{}, apperr.Store("get user", err)
	}
	if len(res.Records) == 0 {
		return domain.User{}, apperr.NotFound("user not found")
	}
	props, ok := asProps(res.Records[0]["user"])
	if !ok {
		return domain.User{}, apperr.NotFound("user not found")
	}
	return projectUser(props), nil
}

const createUserCypher = `
CREATE (user:User {id: $id, username: $username, password: $password, api_key: $apiKey})
RETURN user
`

const userByUsernameCypher = `
MATCH (user:User {username: $username})
RETURN user
`

const userByAPIKeyCypher = `
MATCH (user:User {api_key: $apiKey})
RETURN user
`

const userByIDCypher = `
MATCH (user:User {id: $id})
RETURN user
`
