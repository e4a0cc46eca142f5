package postgres

import (
	"context"

	"tomatoes/internal/domain/entity"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// actorRepository implements the repository.ActorRepository interface using GORM.
type actorRepository struct {
	db *gorm.DB
}

// NewActorRepository is the constructor for actorRepository.
func NewActorRepository(db *gorm.DB) repository.ActorRepository {
	return &actorRepository{db: db}
}

// List retrieves every actor in the catalog, ordered by ID.
func (repo *actorRepository) List(ctx context.Context) ([]*entity.Actor, error) {
	var actorMs []model.ActorModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&actorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	actors := make([]*entity.Actor, 0, len(actorMs))
	for i := range actorMs {
		actors = append(actors, toActorDomain(&actorMs[i]))
	}

	return actors, nil
}

// toActorDomain converts a GORM ActorModel to a domain Actor entity.
func toActorDomain(data *model.ActorModel) *entity.Actor {
	if data == nil {
		return nil
	}

	return &entity.Actor{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Gender:      data.Gender,
		Country:     data.Country,
		DateOfBirth: data.DateOfBirth,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
