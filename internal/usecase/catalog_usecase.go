package usecase

import (
	"context"

	"tomatoes/internal/domain/entity"
)

// CatalogUsecase defines the interface for movie and actor catalog operations.
type CatalogUsecase interface {
	// ListMovies returns every movie in the catalog.
	ListMovies(ctx context.Context) ([]*entity.Movie, error)

	// ListActors returns every actor in the catalog.
	ListActors(ctx context.Context) ([]*entity.Actor, error)

	// DeleteMovie removes a movie and returns the deleted record.
	// Callers must have passed the admin gate before reaching this.
	DeleteMovie(ctx context.Context, id uint) (*entity.Movie, error)
}
