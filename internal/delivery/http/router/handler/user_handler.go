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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest is the registration body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the self-update body. Omitted fields stay unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input RegisterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, newUserResponse(output.User))
}

// List handles the public user directory request.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context(), &usecase.ListUsersInput{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponses(users))
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe handles the self-update request.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input UpdateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), userID, &usecase.UpdateUserInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteMe deletes the authenticated user's account and all of their posts.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	if err := h.uc.Delete(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MeBlogs returns the authenticated user together with all of their posts.
func (h *UserHandler) MeBlogs(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.uc.GetWithBlogs(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserWithBlogsResponse(user))
}

// Get returns the public view of a single user.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user id")
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
