package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "tomatoes/internal/delivery/context"
	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"
	"tomatoes/internal/domain/repository"
	"tomatoes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	claims      *service.Claims
	validateErr error
}

func (s *fakeTokenService) Generate(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) Validate(_ string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}

	return s.claims, nil
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return 24 * time.Hour
}

type fakeUserStore struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (r *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if user, ok := r.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserStore) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserStore) List(_ context.Context) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserStore) Create(_ context.Context, _ *entity.User) error {
	return nil
}

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *fakeTokenService
	userStore  *fakeUserStore
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	t.Helper()

	tokenSvc := &fakeTokenService{}
	userStore := &fakeUserStore{users: map[uuid.UUID]*entity.User{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userStore, logger),
		tokenSvc:   tokenSvc,
		userStore:  userStore,
	}
}

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/movies/1", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func noopNext(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(newAuthTestContext(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(newAuthTestContext("Basic dXNlcjpwYXNz"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.validateErr = errors.Wrap(jwt.ErrTokenSignatureInvalid, "validate token")

	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(newAuthTestContext("Bearer forged"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.validateErr = errors.Wrap(jwt.ErrTokenExpired, "validate token")

	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(newAuthTestContext("Bearer stale"))

	require.Error(t, err)
	// An expired token answers exactly like a forged one.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_UnknownSubject(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.claims = &service.Claims{UserID: uuid.New()}

	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(newAuthTestContext("Bearer valid"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "member@test.com"}
	fx.userStore.users[userID] = user
	fx.tokenSvc.claims = &service.Claims{UserID: userID}

	c := newAuthTestContext("Bearer valid")
	called := false
	err := fx.middleware.Authenticate(noopNext(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	resolved, ok := c.Get(deliverycontext.KeyUser).(*entity.User)
	require.True(t, ok)
	assert.Equal(t, user, resolved)
}

// The admin flag is read from the stored record on every request, so a
// freshly revoked admin is denied even if an old token is still valid.
func TestAuthMiddleware_AdminFlagReadFromStore(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()
	fx.userStore.users[userID] = &entity.User{ID: userID, Email: "ex-admin@test.com", Admin: false}
	fx.tokenSvc.claims = &service.Claims{UserID: userID}

	c := newAuthTestContext("Bearer valid")
	called := false
	chain := fx.middleware.Authenticate(fx.middleware.RequireAdmin(noopNext(&called)))
	err := chain(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorisedUser)
	assert.False(t, called)
}

func TestAuthMiddleware_RequireAdmin_NoUserOnContext(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	called := false
	err := fx.middleware.RequireAdmin(noopNext(&called))(newAuthTestContext(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
	assert.False(t, called)
}

func TestAuthMiddleware_RequireAdmin_NonAdminDenied(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext("")
	c.Set(deliverycontext.KeyUser, &entity.User{ID: uuid.New(), Admin: false})

	called := false
	err := fx.middleware.RequireAdmin(noopNext(&called))(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorisedUser)
	assert.False(t, called)
}

func TestAuthMiddleware_RequireAdmin_AdminAllowed(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext("")
	c.Set(deliverycontext.KeyUser, &entity.User{ID: uuid.New(), Admin: true})

	called := false
	err := fx.middleware.RequireAdmin(noopNext(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}
