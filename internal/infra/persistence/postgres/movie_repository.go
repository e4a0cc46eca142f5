package postgres

import (
	"context"

	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// movieRepository implements the repository.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// List retrieves every movie in the catalog, ordered by ID.
func (repo *movieRepository) List(ctx context.Context) ([]*entity.Movie, error) {
	var movieMs []model.MovieModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&movieMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(movieMs))
	for i := range movieMs {
		movies = append(movies, toMovieDomain(&movieMs[i]))
	}

	return movies, nil
}

// FindByID retrieves a single movie by its ID.
func (repo *movieRepository) FindByID(ctx context.Context, id uint) (*entity.Movie, error) {
	var movieM model.MovieModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&movieM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM), nil
}

// Delete removes a movie by its ID.
func (repo *movieRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MovieModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// toMovieDomain converts a GORM MovieModel to a domain Movie entity.
func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:          data.ID,
		Title:       data.Title,
		Genre:       data.Genre,
		Length:      data.Length,
		ReleaseYear: data.ReleaseYear,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
