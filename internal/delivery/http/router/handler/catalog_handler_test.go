package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tomatoes/internal/domain/entity"
	domainerrors "tomatoes/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogUsecase struct {
	movies    []*entity.Movie
	actors    []*entity.Actor
	deleted   *entity.Movie
	deleteErr error
	listErr   error
}

func (u *fakeCatalogUsecase) ListMovies(_ context.Context) ([]*entity.Movie, error) {
	if u.listErr != nil {
		return nil, u.listErr
	}

	return u.movies, nil
}

func (u *fakeCatalogUsecase) ListActors(_ context.Context) ([]*entity.Actor, error) {
	if u.listErr != nil {
		return nil, u.listErr
	}

	return u.actors, nil
}

func (u *fakeCatalogUsecase) DeleteMovie(_ context.Context, id uint) (*entity.Movie, error) {
	if u.deleteErr != nil {
		return nil, u.deleteErr
	}

	return u.deleted, nil
}

func newCatalogTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestCatalogHandler(uc *fakeCatalogUsecase) *CatalogHandler {
	return NewCatalogHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCatalogHandler_ListMovies(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{
		movies: []*entity.Movie{
			{ID: 1, Title: "Spider-Man: No Way Home", Genre: "Action", Length: 148, ReleaseYear: 2021, Rating: 8.2},
			{ID: 2, Title: "Dune", Genre: "Sci-fi", Length: 155, ReleaseYear: 2021, Rating: 8.0},
		},
	})

	c, rec := newCatalogTestContext(http.MethodGet, "/movies")
	err := handler.ListMovies(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, "Spider-Man: No Way Home")
	assert.Contains(t, body, `"release_year":2021`)
}

func TestCatalogHandler_ListMovies_Empty(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{})

	c, rec := newCatalogTestContext(http.MethodGet, "/movies")
	err := handler.ListMovies(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCatalogHandler_ListActors(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{
		actors: []*entity.Actor{
			{ID: 1, FirstName: "Tom", LastName: "Holland", Gender: "male", Country: "UK", DateOfBirth: "01/06/1996"},
		},
	})

	c, rec := newCatalogTestContext(http.MethodGet, "/actors")
	err := handler.ListActors(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"first_name":"Tom"`)
	assert.Contains(t, body, `"last_name":"Holland"`)
}

func TestCatalogHandler_DeleteMovie_Success(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{
		deleted: &entity.Movie{ID: 7, Title: "Dune", Genre: "Sci-fi", Length: 155, ReleaseYear: 2021},
	})

	c, rec := newCatalogTestContext(http.MethodDelete, "/movies/7")
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := handler.DeleteMovie(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Dune"`)
}

func TestCatalogHandler_DeleteMovie_NonNumericID(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{})

	c, _ := newCatalogTestContext(http.MethodDelete, "/movies/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.DeleteMovie(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestCatalogHandler_DeleteMovie_NotFound(t *testing.T) {
	handler := newTestCatalogHandler(&fakeCatalogUsecase{
		deleteErr: errors.Wrap(domainerrors.ErrMovieNotFound, "delete failed"),
	})

	c, _ := newCatalogTestContext(http.MethodDelete, "/movies/99")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.DeleteMovie(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newCatalogTestContext(http.MethodGet, "/health")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
