package ports

import (
	"time"
)

// TokenPair is an access token and its paired refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and verifies the signed tokens used by the HTTP layer.
// Access tokens authorize requests; refresh tokens mint new pairs.
type TokenService interface {
	// IssuePair issues a fresh access/refresh pair for the account.
	IssuePair(accountID int64, email string) (TokenPair, error)

	// VerifyAccess checks an access token and returns the account id it
	// was issued for.
	VerifyAccess(token string) (int64, error)

	// VerifyRefresh checks a refresh token and returns the account id it
	// was issued for.
	VerifyRefresh(token string) (int64, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}
