package moviesapi

import (
	"fmt"
	"strings"

	"movie-review-app/internal/domain/movies"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// newMovieInput is what survives trimming; name and detail must not be blank.
type newMovieInput struct {
	Name   string `validate:"required"`
	Detail string `validate:"required"`
}

// toNewMovie trims the text fields and maps empty optionals to nil.
func (r CreateMovieRequest) toNewMovie() (movies.NewMovie, error) {
	in := newMovieInput{
		Name:   strings.TrimSpace(r.Name),
		Detail: strings.TrimSpace(r.Detail),
	}
	if err := validate.Struct(in); err != nil {
		return movies.NewMovie{}, fmt.Errorf("%w: %v", movies.ErrValidation, err)
	}

	var cover *string
	if r.CoverImage != nil {
		if v := strings.TrimSpace(*r.CoverImage); v != "" {
			cover = &v
		}
	}

	return movies.NewMovie{
		Name:        in.Name,
		Detail:      in.Detail,
		CoverImage:  cover,
		Rating:      r.Rating.Ptr(),
		ReleaseYear: r.ReleaseYear.Ptr(),
	}, nil
}
