package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tomatoes/internal/delivery/context"
	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// admin authorization. A request moves through it as a small state machine:
// token presented -> identity resolved -> authorized or denied.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the bearer token and resolves its subject against
// the user store. The stored record is re-read on every request; the admin
// decision is never trusted from token claims.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrInvalidUser, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.Wrap(domainerrors.ErrInvalidUser, "authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Expired and forged tokens answer identically; the distinction
			// only reaches the logs.
			reason := "token invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				reason = "token expired"
			}
			m.logger.Warn("Rejected token", slog.String("reason", reason), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrInvalidUser, reason)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				m.logger.Warn("Token subject does not resolve to a user", slog.Any("userID", claims.UserID))

				return errors.Wrap(domainerrors.ErrInvalidUser, "token subject unknown")
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		c.Set(deliverycontext.KeyUser, user)

		return next(c)
	}
}

// RequireAdmin gates admin-only mutations. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(deliverycontext.KeyUser).(*entity.User)
		if !ok {
			return errors.Wrap(domainerrors.ErrInvalidUser, "no authenticated user on context")
		}

		if !user.Admin {
			return errors.Wrap(domainerrors.ErrUnauthorisedUser, "admin capability required")
		}

		return next(c)
	}
}
