package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/domain/service"

	"github.com/google/uuid"
)

// newTestLogger returns a logger that discards all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepository is an in-memory UserRepository.
type fakeUserRepository struct {
	users     []*entity.User
	listErr   error
	createErr error
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepository) List(_ context.Context) ([]*entity.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	return r.users, nil
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
	}
	user.ID = uuid.New()
	r.users = append(r.users, user)

	return nil
}

// fakeMovieRepository is an in-memory MovieRepository.
type fakeMovieRepository struct {
	movies  []*entity.Movie
	listErr error
	delErr  error
}

func (r *fakeMovieRepository) List(_ context.Context) ([]*entity.Movie, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	return r.movies, nil
}

func (r *fakeMovieRepository) FindByID(_ context.Context, id uint) (*entity.Movie, error) {
	for _, movie := range r.movies {
		if movie.ID == id {
			return movie, nil
		}
	}

	return nil, repository.ErrMovieNotFound
}

func (r *fakeMovieRepository) Delete(_ context.Context, id uint) error {
	if r.delErr != nil {
		return r.delErr
	}
	for i, movie := range r.movies {
		if movie.ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)

			return nil
		}
	}

	return repository.ErrMovieNotFound
}

// fakeActorRepository is an in-memory ActorRepository.
type fakeActorRepository struct {
	actors  []*entity.Actor
	listErr error
}

func (r *fakeActorRepository) List(_ context.Context) ([]*entity.Actor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	return r.actors, nil
}

// fakeRepositoryFactory hands out the fakes above as transaction-bound repositories.
type fakeRepositoryFactory struct {
	userRepo  *fakeUserRepository
	movieRepo *fakeMovieRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) MovieRepo() repository.MovieRepository {
	return f.movieRepo
}

// fakeTransactionManager runs the callback against the shared fakes without a
// real transaction. The callback's error is passed through unchanged.
type fakeTransactionManager struct {
	factory  *fakeRepositoryFactory
	beginErr error
}

func (tm *fakeTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return tm.beginErr
	}

	return fn(tm.factory)
}

// fakePasswordHasher hashes by prefixing, which keeps assertions readable.
type fakePasswordHasher struct {
	hashErr error
}

func (h *fakePasswordHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakePasswordHasher) ValidatePassword(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordTooShort.WrapMessage("validate password")
	}

	return nil
}

// fakeTokenService mints deterministic tokens derived from the user ID.
type fakeTokenService struct {
	generateErr error
}

func (s *fakeTokenService) Generate(userID uuid.UUID) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}

	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	panic("not used in usecase tests")
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return 24 * time.Hour
}
