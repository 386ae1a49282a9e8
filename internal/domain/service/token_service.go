package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Validate for any unusable token: bad
// signature, elapsed expiry, or malformed payload. Callers cannot distinguish
// the cases; there is no revocation list and logout is client-side only.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless capabilities carrying the user identity and an expiry.
type TokenService interface {
	// Issue creates a signed token for the given user, valid for ttl.
	Issue(userID uuid.UUID, ttl time.Duration) (string, error)

	// Validate checks a token and returns the user ID it was issued for,
	// or ErrInvalidToken.
	Validate(token string) (uuid.UUID, error)

	// AccessTokenTTL returns the configured lifetime for access tokens.
	AccessTokenTTL() time.Duration
}
