package repository

import (
	"context"

	"tomatoes/internal/domain/entity"
)

// ActorRepository defines the standard operations for actor persistence.
type ActorRepository interface {
	// List retrieves every actor in the catalog.
	List(ctx context.Context) ([]*entity.Actor, error)
}
