package usecase

import (
	"context"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput defines the mutable user fields. Nil pointers leave the
// corresponding field untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// ListUsersInput defines offset pagination for user listings.
type ListUsersInput struct {
	Skip  int
	Limit int
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates a new user account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Get retrieves a single user by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetWithBlogs retrieves a user together with all of their blog posts.
	GetWithBlogs(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List retrieves users with offset pagination.
	List(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// Update modifies a user's own profile fields.
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// Delete removes a user account together with all of their blog posts.
	Delete(ctx context.Context, id uuid.UUID) error
}
