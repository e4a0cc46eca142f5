package impl

import (
	"context"
	"testing"

	"tomatoes/internal/domain/entity"
	"tomatoes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserDirectoryUsecase, *fakeUserRepository) {
	t.Helper()

	userRepo := &fakeUserRepository{}
	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newTestLogger(),
	})

	return service, userRepo
}

func TestUserService_ListUsers(t *testing.T) {
	service, userRepo := createTestUserService(t)
	userRepo.users = []*entity.User{
		{ID: uuid.New(), Email: "admin@test.com", PasswordHash: "hashed:secret", Admin: true},
		{ID: uuid.New(), Email: "member@test.com", PasswordHash: "hashed:other", Admin: false},
	}

	summaries, err := service.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "admin@test.com", summaries[0].Email)
	assert.True(t, summaries[0].Admin)
	assert.Equal(t, "member@test.com", summaries[1].Email)
	assert.False(t, summaries[1].Admin)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	service, _ := createTestUserService(t)

	summaries, err := service.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestUserService_ListUsers_RepositoryError(t *testing.T) {
	service, userRepo := createTestUserService(t)
	userRepo.listErr = errors.New("connection refused")

	summaries, err := service.ListUsers(context.Background())

	require.Error(t, err)
	assert.Nil(t, summaries)
}
