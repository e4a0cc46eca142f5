package impl

import (
	"context"
	"log/slog"

	deliverycontext "tomatoes/internal/delivery/context"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserDirectoryUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserDirectoryUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns the directory projected onto UserSummary. The projection
// carries no hash field, so credential material cannot appear in the output.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &usecase.UserSummary{
			Email: user.Email,
			Admin: user.Admin,
		})
	}

	return summaries, nil
}
