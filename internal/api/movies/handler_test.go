package moviesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-review-app/internal/domain/movies"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]movies.Movie, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]movies.Movie)
	return list, args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id uint64) (*movies.Movie, error) {
	args := m.Called(ctx, id)
	mv, _ := args.Get(0).(*movies.Movie)
	return mv, args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, in movies.NewMovie) (uint64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newRouter(store MovieStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store)
	r := gin.New()
	r.GET("/movies", h.ListMovies)
	r.POST("/movies", h.CreateMovie)
	r.DELETE("/movies/:id", h.DeleteMovie)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListMoviesEmpty(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return([]movies.Movie{}, nil)

	w := do(newRouter(store), http.MethodGet, "/movies", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListMoviesStorageFailure(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return(nil, &movies.StorageError{Op: "list movies", Err: errors.New("connection refused")})

	w := do(newRouter(store), http.MethodGet, "/movies", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestCreateMovieReturnsRefetchedRow(t *testing.T) {
	rating := 8.5
	year := 2021
	store := new(mockStore)
	store.On("Insert", mock.Anything, movies.NewMovie{
		Name:        "Dune",
		Detail:      "Epic.",
		Rating:      &rating,
		ReleaseYear: &year,
	}).Return(uint64(1), nil)
	store.On("Get", mock.Anything, uint64(1)).Return(&movies.Movie{
		ID: 1, Name: "Dune", Detail: "Epic.", Rating: &rating, ReleaseYear: &year,
	}, nil)

	w := do(newRouter(store), http.MethodPost, "/movies",
		`{"name":"  Dune ","detail":"Epic.","coverimage":"  ","rating":"8.5","release_year":"2021"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","detail":"Epic.","coverimage":null,"rating":8.5,"release_year":2021}`, w.Body.String())
	store.AssertExpectations(t)
}

func TestCreateMovieRequiresNameAndDetail(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"name":"Dune"}`,
		`{"detail":"Epic."}`,
		`{"name":"   ","detail":"Epic."}`,
		`{"name":"Dune","detail":""}`,
	}
	for _, body := range bodies {
		store := new(mockStore)
		w := do(newRouter(store), http.MethodPost, "/movies", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Name and detail are required", decodeError(t, w).Error, body)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	}
}

func TestCreateMovieRejectsBadInput(t *testing.T) {
	store := new(mockStore)
	r := newRouter(store)

	w := do(r, http.MethodPost, "/movies", `{"name":"Dune","detail":"Epic.","rating":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating and release year must be numbers", decodeError(t, w).Error)

	w = do(r, http.MethodPost, "/movies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w).Error)

	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateMovieStorageFailure(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, mock.Anything).
		Return(uint64(0), &movies.StorageError{Op: "insert movie", Err: errors.New("table is read only")})

	w := do(newRouter(store), http.MethodPost, "/movies", `{"name":"Dune","detail":"Epic."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Internal Server Error", resp.Error)
	assert.Equal(t, "insert movie: table is read only", resp.Message)
}

func TestCreateMovieVanishedAfterInsert(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, mock.Anything).Return(uint64(7), nil)
	store.On("Get", mock.Anything, uint64(7)).Return(nil, movies.ErrNotFound)

	w := do(newRouter(store), http.MethodPost, "/movies", `{"name":"Dune","detail":"Epic."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "movie 7 not found after insert", decodeError(t, w).Message)
}

func TestDeleteMovie(t *testing.T) {
	store := new(mockStore)
	store.On("Delete", mock.Anything, uint64(3)).Return(int64(1), nil).Once()
	store.On("Delete", mock.Anything, uint64(3)).Return(int64(0), nil).Once()
	r := newRouter(store)

	w := do(r, http.MethodDelete, "/movies/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(r, http.MethodDelete, "/movies/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie not found", decodeError(t, w).Error)
}

func TestDeleteMovieNonNumericID(t *testing.T) {
	store := new(mockStore)

	w := do(newRouter(store), http.MethodDelete, "/movies/abc", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteMovieStorageFailure(t *testing.T) {
	store := new(mockStore)
	store.On("Delete", mock.Anything, uint64(1)).
		Return(int64(0), &movies.StorageError{Op: "delete movie", Err: errors.New("lock wait timeout")})

	w := do(newRouter(store), http.MethodDelete, "/movies/1", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "delete movie: lock wait timeout", decodeError(t, w).Message)
}
