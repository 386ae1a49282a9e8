// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account on the platform.
// PasswordHash is internal state and must never reach an API response.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // Login identifier, stored lowercased; uniqueness is case-insensitive.
	PasswordHash string    // bcrypt hash of the user's password.
	IsActive     bool      // Inactive accounts cannot log in.
	IsVerified   bool      // Email verification flag. New accounts are created verified.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.

	Blogs []*Blog // Owned blog posts. Populated only by FindWithBlogs-style reads.
}
