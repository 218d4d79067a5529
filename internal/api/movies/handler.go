package moviesapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"movie-review-app/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

// MovieStore is the slice of the data access layer the handlers need.
type MovieStore interface {
	List(ctx context.Context) ([]movies.Movie, error)
	Get(ctx context.Context, id uint64) (*movies.Movie, error)
	Insert(ctx context.Context, in movies.NewMovie) (uint64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

type Handler struct {
	store MovieStore
}

func NewHandler(store MovieStore) *Handler {
	return &Handler{store: store}
}

// ------------------------------
// GET /movies
// ------------------------------
func (h *Handler) ListMovies(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		slog.Error("list movies failed", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// POST /movies
// ------------------------------
func (h *Handler) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, movies.ErrInvalidNumber) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rating and release year must be numbers", Message: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	in, err := req.toNewMovie()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name and detail are required"})
		return
	}

	ctx := c.Request.Context()
	id, err := h.store.Insert(ctx, in)
	if err != nil {
		internalError(c, "insert movie failed", err)
		return
	}

	// read back instead of echoing the request; this also proves the row exists
	created, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			err = fmt.Errorf("movie %d not found after insert", id)
		}
		internalError(c, "reload created movie failed", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ------------------------------
// DELETE /movies/:id
// ------------------------------
func (h *Handler) DeleteMovie(c *gin.Context) {
	// a non-numeric id cannot match any row
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movie not found"})
		return
	}

	removed, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, "delete movie failed", err)
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, DeleteMovieResponse{Success: true})
}

func internalError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "err", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
}
