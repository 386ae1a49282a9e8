// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email. The lookup is
	// case-insensitive; implementations compare against the lowercased column.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindWithBlogs retrieves a user together with all of their blog posts,
	// ordered newest-first.
	FindWithBlogs(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List retrieves users with offset pagination, ordered newest-first.
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user row. Owned blogs are the caller's responsibility
	// (the user service cascades them in the same transaction).
	Delete(ctx context.Context, id uuid.UUID) error
}
