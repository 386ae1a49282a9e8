package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/delivery/http/response"
	"scribe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// LoginRequest is the JSON login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the JSON login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	return h.login(c, input.Email, input.Password)
}

// LoginForm handles the OAuth2-style form login (username/password fields).
func (h *AuthHandler) LoginForm(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return response.BindingError(c, "username and password are required")
	}

	return h.login(c, email, password)
}

func (h *AuthHandler) login(c echo.Context, email, password string) error {
	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
		User:        newUserResponse(output.User),
	})
}

// Logout acknowledges the logout. Tokens are stateless, so discarding the
// token client-side is the whole operation.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
