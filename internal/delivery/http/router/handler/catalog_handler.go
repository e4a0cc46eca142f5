// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tomatoes/internal/delivery/http/response"
	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MovieResponse is the fixed output projection for a movie.
type MovieResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Length      int     `json:"length"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
}

// ActorResponse is the fixed output projection for an actor.
type ActorResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Country     string `json:"country"`
	DateOfBirth string `json:"date_of_birth"`
}

// CatalogHandler holds dependencies for movie and actor handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListMovies handles GET /movies.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	movies, err := h.uc.ListMovies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, toMovieResponse(movie))
	}

	return response.Success(c, http.StatusOK, out, "Movies retrieved successfully")
}

// ListActors handles GET /actors.
func (h *CatalogHandler) ListActors(c echo.Context) error {
	actors, err := h.uc.ListActors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ActorResponse, 0, len(actors))
	for _, actor := range actors {
		out = append(out, ActorResponse{
			ID:          actor.ID,
			FirstName:   actor.FirstName,
			LastName:    actor.LastName,
			Gender:      actor.Gender,
			Country:     actor.Country,
			DateOfBirth: actor.DateOfBirth,
		})
	}

	return response.Success(c, http.StatusOK, out, "Actors retrieved successfully")
}

// DeleteMovie handles DELETE /movies/:id. Authentication and the admin gate
// run as route middleware before this handler is reached.
func (h *CatalogHandler) DeleteMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return errors.Wrap(domainerrors.ErrMovieNotFound, "movie id is not numeric")
	}

	deleted, err := h.uc.DeleteMovie(c.Request().Context(), uint(id))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMovieResponse(deleted), "Movie deleted successfully")
}

func toMovieResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Length:      movie.Length,
		ReleaseYear: movie.ReleaseYear,
		Rating:      movie.Rating,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
