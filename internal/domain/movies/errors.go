package movies

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("movie not found")
	ErrValidation = errors.New("validation failed")

	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ErrValidation)
)

// StorageError wraps any failure coming from the database driver.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
