package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "tomatoes/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), appErrorResponse(appErr))

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, errorResponse(httpErr.Code, "HTTP_ERROR", message, message))

		return
	}

	// Default to internal error: log the cause, return a generic body.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	_ = c.JSON(internal.HTTPCode(), appErrorResponse(internal))
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type errorBody struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *errorInfo `json:"error"`
}

func appErrorResponse(appErr domainerrors.AppError) errorBody {
	return errorResponse(appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

func errorResponse(code int, errorCode, message, details string) errorBody {
	return errorBody{
		Success: false,
		Code:    code,
		Message: message,
		Error: &errorInfo{
			Code:    errorCode,
			Details: details,
		},
	}
}
