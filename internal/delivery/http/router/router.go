// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tomatoes/internal/delivery/http/middleware"
	"tomatoes/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalog reads
	e.GET("/movies", r.catalogHandler.ListMovies)
	e.GET("/actors", r.catalogHandler.ListActors)
	e.GET("/users", r.userHandler.ListUsers)

	// Admin-gated mutations: authenticate first, then check the admin flag.
	e.DELETE("/movies/:id", r.catalogHandler.DeleteMovie,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireAdmin,
	)
}
