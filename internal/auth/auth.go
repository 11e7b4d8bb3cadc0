// Package auth implements user accounts and the access control gate: opaque
// API tokens stored on user nodes, bcrypt credential hashing, and identity
// resolution from the Authorization header.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
	"github.com/VladyslavHaiko/moviegraph/internal/domain"
)

// Store is the slice of the repository the auth service needs.
type Store interface {
	CreateUser(ctx context.Context, user domain.User) error
	UserByUsername(ctx context.Context, username string) (domain.User, error)
	UserByAPIKey(ctx context.Context, apiKey string) (domain.User, error)
}

// Service issues and verifies opaque API tokens. Token issuance stays this
// thin on purpose: the token is a random key persisted on the user node, not
// a signed claim.
type Service struct {
	store      Store
	bcryptCost int
}

// NewService constructs an auth Service. cost <= 0 falls back to the bcrypt
// default.
func NewService(store Store, cost int) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{store: store, bcryptCost: cost}
}

// Register creates a new account and returns its API token. The username must
// be unused.
func (s *Service) Register(ctx context.Context, username, password string) (domain.AuthToken, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.AuthToken{}, apperr.Invalid("username is required")
	}
	if password == "" {
		return domain.AuthToken{}, apperr.Invalid("password is required")
	}

	if _, err := s.store.UserByUsername(ctx, username); err == nil {
		return domain.AuthToken{}, apperr.Conflict("username already in use")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return domain.AuthToken{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.AuthToken{}, apperr.Store("hash password", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		APIKey:       uuid.NewString(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return domain.AuthToken{}, err
	}

	return domain.AuthToken{Token: user.APIKey}, nil
}

// Login verifies the credentials and returns the account's API token.
func (s *Service) Login(ctx context.Context, username, password string) (domain.AuthToken, error) {
	user, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return domain.AuthToken{}, apperr.Unauthorized("invalid username or password")
		}
		return domain.AuthToken{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.AuthToken{}, apperr.Unauthorized("invalid username or password")
	}

	return domain.AuthToken{Token: user.APIKey}, nil
}

// Authenticate resolves the identity attached to an Authorization header
// value. It accepts "Token <key>", "Bearer <key>" or the bare key; anything
// unresolvable is Unauthorized.
func (s *Service) Authenticate(ctx context.Context, authorization string) (domain.User, error) {
	key := ParseToken(authorization)
	if key == "" {
		return domain.User{}, apperr.Unauthorized("authorization required")
	}

	user, err := s.store.UserByAPIKey(ctx, key)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return domain.User{}, apperr.Unauthorized("invalid token")
		}
		return domain.User{}, err
	}
	return user, nil
}

// ParseToken extracts the opaque key from an Authorization header value.
func ParseToken(authorization string) string {
	value := strings.TrimSpace(authorization)
	for _, scheme := range []string{"Token ", "Bearer "} {
		if len(value) > len(scheme) && strings.EqualFold(value[:len(scheme)], scheme) {
			return strings.TrimSpace(value[len(scheme):])
		}
	}
	return value
}
