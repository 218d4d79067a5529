package routes

import (
	"net/http"

	healthapi "movie-review-app/internal/api/health"
	moviesapi "movie-review-app/internal/api/movies"
	"movie-review-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is everything the API needs from storage.
type Store interface {
	moviesapi.MovieStore
	healthapi.Pinger
}

// NewRouter builds the API engine with the global middleware chain.
func NewRouter(store Store, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.CORS(corsOrigin),
	)
	RegisterRoutes(r, store)
	return r
}

func RegisterRoutes(r *gin.Engine, store Store) {
	health := healthapi.NewHandler(store)
	movies := moviesapi.NewHandler(store)

	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/movies", movies.ListMovies)
	r.DELETE("/movies/:id", movies.DeleteMovie)

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/movies", movies.CreateMovie)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}
