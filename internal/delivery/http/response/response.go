// Package response defines the wire shapes shared by all HTTP handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload for every failed request.
type ErrorBody struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Page is the envelope for every paginated listing.
type Page struct {
	Items   any   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Error writes the unified error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Error:      true,
		Message:    message,
		StatusCode: statusCode,
	})
}

// BindingError reports a malformed request body.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
