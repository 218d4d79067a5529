package moviesapi

import "movie-review-app/internal/domain/movies"

// ---------- requests

// CreateMovieRequest is the POST /movies body. Numeric fields accept numbers,
// numeric strings, "" or null.
type CreateMovieRequest struct {
	Name        string               `json:"name"`
	Detail      string               `json:"detail"`
	CoverImage  *string              `json:"coverimage"`
	Rating      movies.OptionalFloat `json:"rating"`
	ReleaseYear movies.OptionalInt   `json:"release_year"`
}

// ---------- responses

type DeleteMovieResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
