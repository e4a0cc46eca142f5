package impl

import (
	"context"
	"log/slog"

	deliverycontext "tomatoes/internal/delivery/context"
	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	movieRepo repository.MovieRepository
	actorRepo repository.ActorRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MovieRepo repository.MovieRepository
	ActorRepo repository.ActorRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		movieRepo: params.MovieRepo,
		actorRepo: params.ActorRepo,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMovies returns every movie in the catalog.
func (srv *catalogService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := srv.movieRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list movies", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list movies")
	}

	return movies, nil
}

// ListActors returns every actor in the catalog.
func (srv *catalogService) ListActors(ctx context.Context) ([]*entity.Actor, error) {
	actors, err := srv.actorRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list actors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list actors")
	}

	return actors, nil
}

// DeleteMovie removes a movie in a single all-or-nothing transaction and
// returns the deleted record's fields.
func (srv *catalogService) DeleteMovie(ctx context.Context, id uint) (*entity.Movie, error) {
	srv.log(ctx).Info("Deleting movie", slog.Uint64("movieID", uint64(id)))

	var deleted *entity.Movie
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movieRepo := repoFactory.MovieRepo()

		movie, findErr := movieRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrMovieNotFound) {
				return errors.Wrap(domainerrors.ErrMovieNotFound, "delete failed")
			}

			return errors.Wrap(findErr, "failed to find movie for deletion")
		}

		if delErr := movieRepo.Delete(ctx, id); delErr != nil {
			return errors.Wrap(delErr, "failed to delete movie")
		}

		deleted = movie

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete movie", slog.Uint64("movieID", uint64(id)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Movie deleted", slog.Uint64("movieID", uint64(id)))

	return deleted, nil
}
