package movies

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the data access layer for the movie table. It holds a pooled
// handle; each call checks a connection out for one statement only.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns every row. The result is never nil.
func (s *Store) List(ctx context.Context) ([]Movie, error) {
	out := make([]Movie, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, &StorageError{Op: "list movies", Err: err}
	}
	return out, nil
}

// Get returns ErrNotFound when no row has the id.
func (s *Store) Get(ctx context.Context, id uint64) (*Movie, error) {
	var m Movie
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, &StorageError{Op: "get movie", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, in NewMovie) (uint64, error) {
	m := Movie{
		Name:        in.Name,
		Detail:      in.Detail,
		CoverImage:  in.CoverImage,
		Rating:      in.Rating,
		ReleaseYear: in.ReleaseYear,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, &StorageError{Op: "insert movie", Err: err}
	}
	return m.ID, nil
}

// Delete returns the number of rows removed; a missing id is 0, not an error.
func (s *Store) Delete(ctx context.Context, id uint64) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Movie{})
	if res.Error != nil {
		return 0, &StorageError{Op: "delete movie", Err: res.Error}
	}
	return res.RowsAffected, nil
}

// Ping runs a trivial query against the database.
func (s *Store) Ping(ctx context.Context) error {
	var ok int
	if err := s.db.WithContext(ctx).Raw("SELECT 1 AS ok").Scan(&ok).Error; err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	if ok != 1 {
		return &StorageError{Op: "ping", Err: errors.New("unexpected probe result")}
	}
	return nil
}
