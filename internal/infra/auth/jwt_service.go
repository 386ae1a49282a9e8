// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"scribe/config"
	"scribe/internal/domain/service"
	"scribe/internal/errors"
)

const minSecretLength = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It holds the process-wide signing secret, loaded once at startup and read-only thereafter.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// The secret must be at least 32 characters; the access token TTL comes from config.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.SecretKey.Access) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: cfg.AccessTokenTTL(),
	}, nil
}

// Issue creates a signed HS256 token with the user ID as subject and the
// given time-to-live.
func (s *jwtService) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and extracts the subject.
// Every failure mode collapses into ErrInvalidToken.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but HMAC to prevent algorithm confusion.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
