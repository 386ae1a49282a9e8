package usecase

import (
	"context"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBlogInput defines the data required to create a new blog post.
type CreateBlogInput struct {
	Title       string
	Content     string
	Summary     string
	IsPublished bool
}

// UpdateBlogInput defines the mutable blog fields. Nil pointers leave the
// corresponding field untouched.
type UpdateBlogInput struct {
	Title       *string
	Content     *string
	Summary     *string
	IsPublished *bool
}

// ListBlogsInput defines offset pagination for blog listings.
type ListBlogsInput struct {
	Skip  int
	Limit int
}

// SearchBlogsInput defines a paginated search over published blog posts.
type SearchBlogsInput struct {
	Query string
	Skip  int
	Limit int
}

// --- Output DTOs ---

// BlogPage is one page of blog results together with pagination metadata.
type BlogPage struct {
	Items   []*entity.Blog
	Total   int64
	Page    int
	Size    int
	HasNext bool
	HasPrev bool
}

// BlogUsecase defines the interface for blog-related business operations.
type BlogUsecase interface {
	// Create persists a new blog post owned by the given creator.
	Create(ctx context.Context, creatorID uuid.UUID, input *CreateBlogInput) (*entity.Blog, error)

	// Get retrieves a single blog post. Unpublished posts are only visible
	// to their creator; requesterID is uuid.Nil for anonymous access.
	Get(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*entity.Blog, error)

	// List retrieves one page of published blog posts, newest first.
	List(ctx context.Context, input *ListBlogsInput) (*BlogPage, error)

	// Search retrieves one page of published blog posts whose title or
	// content contains the query, case-insensitively.
	Search(ctx context.Context, input *SearchBlogsInput) (*BlogPage, error)

	// ListByCreator retrieves one page of the creator's own posts,
	// published or not.
	ListByCreator(ctx context.Context, creatorID uuid.UUID, input *ListBlogsInput) (*BlogPage, error)

	// Update modifies a blog post. Only the creator may update their post.
	Update(ctx context.Context, id, requesterID uuid.UUID, input *UpdateBlogInput) (*entity.Blog, error)

	// Delete removes a blog post. Only the creator may delete their post.
	Delete(ctx context.Context, id, requesterID uuid.UUID) error

	// Publish marks a blog post as published. Publishing an already
	// published post is a no-op.
	Publish(ctx context.Context, id, requesterID uuid.UUID) (*entity.Blog, error)
}
