package domain

// User aggregates the canonical user node data. Credentials never leave the
// server: the password hash and API key are excluded from serialization and
// exposed only through the auth service.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	APIKey       string `json:"-"`
}

// AuthToken is the login/register response body.
type AuthToken struct {
	Token string `json:"token"`
}
