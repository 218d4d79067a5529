package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"movie-review-app/internal/domain/movies"
)

var (
	ErrFetchFailed  = errors.New("Failed to fetch")
	ErrCreateFailed = errors.New("Failed to create movie review")
	ErrDeleteFailed = errors.New("Failed to delete movie")
)

// CreateMovieInput is the JSON body sent to POST /movies. Nil pointers are sent as null.
type CreateMovieInput struct {
	Name        string   `json:"name"`
	Detail      string   `json:"detail"`
	CoverImage  *string  `json:"coverimage"`
	Rating      *float64 `json:"rating"`
	ReleaseYear *int     `json:"release_year"`
}

// MovieAPI is what the page needs from the REST service.
type MovieAPI interface {
	List(ctx context.Context) ([]movies.Movie, error)
	Create(ctx context.Context, in CreateMovieInput) (*movies.Movie, error)
	Delete(ctx context.Context, id uint64) error
}

// APIClient talks to the movie API at baseURL.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{baseURL: baseURL, http: httpClient}
}

func (c *APIClient) List(ctx context.Context) ([]movies.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/movies", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	var out []movies.Movie
	if err := c.do(req, ErrFetchFailed, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []movies.Movie{}
	}
	return out, nil
}

func (c *APIClient) Create(ctx context.Context, in CreateMovieInput) (*movies.Movie, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/movies", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created movies.Movie
	if err := c.do(req, ErrCreateFailed, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *APIClient) Delete(ctx context.Context, id uint64) error {
	url := c.baseURL + "/movies/" + strconv.FormatUint(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, ErrDeleteFailed, nil)
}

// do sends req and decodes a 2xx body into out. Any other outcome is reported
// as failure, wrapping the underlying cause.
func (c *APIClient) do(req *http.Request, failure error, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", failure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s", failure, resp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", failure, err)
	}
	return nil
}
