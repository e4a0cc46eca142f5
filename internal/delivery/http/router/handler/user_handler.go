package handler

import (
	"log/slog"
	"net/http"

	"tomatoes/internal/delivery/http/response"
	"tomatoes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user directory handlers.
type UserHandler struct {
	uc     usecase.UserDirectoryUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserDirectoryUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// ListUsers handles GET /users. The projection returned by the usecase has
// no hash field, so this route cannot disclose credential material.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}
