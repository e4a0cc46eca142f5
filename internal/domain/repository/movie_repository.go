package repository

import (
	"context"
	"errors"

	"tomatoes/internal/domain/entity"
)

// ErrMovieNotFound is a domain-specific error returned when a movie is not found.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines the standard operations for movie persistence.
type MovieRepository interface {
	// List retrieves every movie in the catalog.
	List(ctx context.Context) ([]*entity.Movie, error)

	// FindByID retrieves a single movie by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Movie, error)

	// Delete removes a movie by its ID.
	Delete(ctx context.Context, id uint) error
}
