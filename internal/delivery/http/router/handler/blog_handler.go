package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/delivery/http/response"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBlogRequest is the blog creation body.
type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	Summary     string `json:"summary" validate:"omitempty,max=500"`
	IsPublished bool   `json:"is_published"`
}

// UpdateBlogRequest is the blog update body. Omitted fields stay unchanged.
type UpdateBlogRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Content     *string `json:"content"`
	Summary     *string `json:"summary" validate:"omitempty,max=500"`
	IsPublished *bool   `json:"is_published"`
}

// Create handles the blog creation request.
func (h *BlogHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input CreateBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	blog, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBlogInput{
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		IsPublished: input.IsPublished,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, newBlogResponse(blog))
}

// List handles the public listing of published blogs.
func (h *BlogHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), &usecase.ListBlogsInput{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogPageResponse(page))
}

// Search handles the public search over published blogs.
func (h *BlogHandler) Search(c echo.Context) error {
	page, err := h.uc.Search(c.Request().Context(), &usecase.SearchBlogsInput{
		Query: c.QueryParam("q"),
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogPageResponse(page))
}

// MyBlogs lists the caller's own posts, drafts included.
func (h *BlogHandler) MyBlogs(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	page, err := h.uc.ListByCreator(c.Request().Context(), userID, &usecase.ListBlogsInput{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogPageResponse(page))
}

// Get returns a single blog post with its creator summary.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid blog id")
	}

	// Anonymous readers pass uuid.Nil; creators can still see their drafts.
	requesterID, _ := deliverycontext.GetUserID(c)

	blog, err := h.uc.Get(c.Request().Context(), id, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogResponse(blog))
}

// Update handles the owner-only blog update request.
func (h *BlogHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid blog id")
	}

	var input UpdateBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	blog, err := h.uc.Update(c.Request().Context(), id, userID, &usecase.UpdateBlogInput{
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		IsPublished: input.IsPublished,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogResponse(blog))
}

// Delete handles the owner-only blog deletion request.
func (h *BlogHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid blog id")
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Publish marks a blog post as published. Re-publishing succeeds.
func (h *BlogHandler) Publish(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid blog id")
	}

	blog, err := h.uc.Publish(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newBlogResponse(blog))
}
