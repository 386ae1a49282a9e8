// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// excerptLength is the number of content characters shown in list views
// when a blog has no summary.
const excerptLength = 150

// Blog represents a single blog post. CreatorID is immutable after creation;
// only the creator may mutate or delete the post.
type Blog struct {
	ID          uuid.UUID // The unique identifier for the post.
	Title       string
	Content     string
	Summary     string    // Optional author-provided summary.
	IsPublished bool      // Draft (false) or published (true). Drafts are hidden from public listings.
	CreatorID   uuid.UUID // Foreign key to the owning User. Never set from client input.
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Creator *User // Populated on single-post reads for the creator summary.
}

// Excerpt returns the short form of the post for list views: the summary when
// one was provided, otherwise a truncated prefix of the content. It is derived
// at read time and never stored.
func (b *Blog) Excerpt() string {
	if b.Summary != "" {
		return b.Summary
	}

	runes := []rune(b.Content)
	if len(runes) <= excerptLength {
		return b.Content
	}

	return string(runes[:excerptLength]) + "..."
}
