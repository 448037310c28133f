package rest

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "folio/utils/errors"
	"folio/validation"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// handleError converts application errors into HTTP responses. AppError
// carries its own status mapping; sentinel errors are translated here so
// drivers do not need to know about HTTP.
func handleError(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPStatusCode(), ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Context: appErr.Context,
		})
	}

	switch {
	case apperrors.IsRecordNotFound(err):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case apperrors.IsUnauthorized(err):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case apperrors.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
	case apperrors.IsStoreUnavailable(err):
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store unavailable"})
	}

	slog.Default().Error("unhandled error", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// handleValidationError renders a failed validation result as 400.
func handleValidationError(c echo.Context, result validation.ValidationResult) error {
	message := "invalid request"
	if len(result.Errors) > 0 {
		message = result.Errors[0].Message
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  string(apperrors.ErrCodeValidation),
	})
}
