package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is a domain-specific error returned when a blog is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogListFilter narrows List queries.
type BlogListFilter struct {
	Skip          int
	Limit         int
	PublishedOnly bool
	CreatorID     *uuid.UUID // restrict to one author when set
	Query         string     // case-insensitive substring over title/content when set
}

// BlogRepository defines the standard operations for blog persistence.
// All list-style reads are ordered newest-first and return the total match
// count alongside the page so callers can derive pagination metadata.
type BlogRepository interface {
	// FindByID retrieves a single blog by its unique ID, preloading the creator.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// List retrieves blogs matching the filter plus the total match count.
	List(ctx context.Context, filter BlogListFilter) ([]*entity.Blog, int64, error)

	// Create persists a new blog entity to the storage.
	Create(ctx context.Context, blog *entity.Blog) error

	// Update modifies an existing blog entity in the storage.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a blog row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByCreator removes every blog owned by the given user. Used by the
	// user service's cascade delete.
	DeleteByCreator(ctx context.Context, creatorID uuid.UUID) error
}
