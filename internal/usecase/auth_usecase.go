// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // minutes until the access token expires
	User        *entity.User
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and issues an access token.
	// Unknown email and wrong password fail identically so that the API
	// cannot be used to probe which addresses are registered.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves the authenticated user behind a validated token subject.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
