// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"time"

	"scribe/internal/delivery/http/response"
	"scribe/internal/domain/entity"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserWithBlogsResponse extends UserResponse with the user's posts.
type UserWithBlogsResponse struct {
	UserResponse
	Blogs []*BlogResponse `json:"blogs"`
}

// CreatorResponse is the condensed author view embedded in blog reads.
type CreatorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BlogResponse is the public view of a blog post.
type BlogResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Summary     string           `json:"summary,omitempty"`
	Excerpt     string           `json:"excerpt"`
	IsPublished bool             `json:"is_published"`
	CreatorID   uuid.UUID        `json:"creator_id"`
	Creator     *CreatorResponse `json:"creator,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TokenResponse is the login payload.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func newUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

func newUserWithBlogsResponse(user *entity.User) UserWithBlogsResponse {
	return UserWithBlogsResponse{
		UserResponse: newUserResponse(user),
		Blogs:        newBlogResponses(user.Blogs),
	}
}

func newBlogResponse(blog *entity.Blog) *BlogResponse {
	resp := &BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Content:     blog.Content,
		Summary:     blog.Summary,
		Excerpt:     blog.Excerpt(),
		IsPublished: blog.IsPublished,
		CreatorID:   blog.CreatorID,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}

	if blog.Creator != nil {
		resp.Creator = &CreatorResponse{
			ID:    blog.Creator.ID,
			Name:  blog.Creator.Name,
			Email: blog.Creator.Email,
		}
	}

	return resp
}

func newBlogResponses(blogs []*entity.Blog) []*BlogResponse {
	out := make([]*BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, newBlogResponse(blog))
	}

	return out
}

func newBlogPageResponse(page *usecase.BlogPage) response.Page {
	return response.Page{
		Items:   newBlogResponses(page.Items),
		Total:   page.Total,
		Page:    page.Page,
		Size:    page.Size,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
}

// queryInt parses an integer query parameter, falling back on a default
// for missing or malformed values.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
