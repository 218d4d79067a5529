package frontend

import (
	"context"
	"sync"

	"movie-review-app/internal/domain/movies"
)

// fakeAPI is an in-memory MovieAPI.
type fakeAPI struct {
	mu      sync.Mutex
	rows    []movies.Movie
	nextID  uint64
	creates []CreateMovieInput
	deletes []uint64

	listErr   error
	createErr error
	deleteErr error

	// when set, Create signals entered and waits for release
	entered chan struct{}
	release chan struct{}
}

func (f *fakeAPI) List(ctx context.Context) ([]movies.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]movies.Movie{}, f.rows...), nil
}

func (f *fakeAPI) Create(ctx context.Context, in CreateMovieInput) (*movies.Movie, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	m := movies.Movie{
		ID:          f.nextID,
		Name:        in.Name,
		Detail:      in.Detail,
		CoverImage:  in.CoverImage,
		Rating:      in.Rating,
		ReleaseYear: in.ReleaseYear,
	}
	f.rows = append(f.rows, m)
	return &m, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, m := range f.rows {
		if m.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return ErrDeleteFailed
}
