package frontend

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"movie-review-app/internal/domain/movies"
)

var (
	ErrAlreadyMounted    = errors.New("page already mounted")
	ErrNotReady          = errors.New("page is not ready")
	ErrAlreadySubmitting = errors.New("a submission is already in flight")
)

const (
	msgRequired      = "Movie name and detail are required."
	msgRatingNumber  = "Rating must be a number."
	msgYearNumber    = "Release year must be a whole number."
	msgDeleteConfirm = "Are you sure you want to delete this review?"
)

// PageState is one of Idle, Loading, Ready or Failed.
type PageState interface {
	isPageState()
}

type Idle struct{}

type Loading struct{}

// Ready holds the local copy of the list and the create form. The form only
// exists while the page is ready.
type Ready struct {
	Movies []movies.Movie
	Form   FormState
}

// Failed replaces the whole view; there is no way back except a new page.
type Failed struct {
	Message string
}

func (Idle) isPageState()    {}
func (Loading) isPageState() {}
func (*Ready) isPageState()  {}
func (Failed) isPageState()  {}

// FormFields are the raw values typed into the create form.
type FormFields struct {
	Name        string
	Detail      string
	CoverImage  string
	Rating      string
	ReleaseYear string
}

type FormState struct {
	Fields     FormFields
	Error      string
	Submitting bool
}

// Page is one mounted instance of the review page.
type Page struct {
	api MovieAPI

	mu    sync.Mutex
	state PageState
	alert string
}

func NewPage(api MovieAPI) *Page {
	return &Page{api: api, state: Idle{}}
}

// State returns the current state. Ready is returned as a copy.
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.state.(*Ready); ok {
		cp := *r
		cp.Movies = append([]movies.Movie(nil), r.Movies...)
		return &cp
	}
	return p.state
}

// TakeAlert returns the pending alert once and clears it.
func (p *Page) TakeAlert() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	a := p.alert
	p.alert = ""
	return a
}

// Mount loads the list once: Idle -> Loading -> Ready | Failed.
func (p *Page) Mount(ctx context.Context) error {
	p.mu.Lock()
	if _, ok := p.state.(Idle); !ok {
		p.mu.Unlock()
		return ErrAlreadyMounted
	}
	p.state = Loading{}
	p.mu.Unlock()

	list, err := p.api.List(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = Failed{Message: err.Error()}
		return nil
	}
	p.state = &Ready{Movies: list}
	return nil
}

// Submit validates the form and creates the movie. Validation and API
// failures land in FormState.Error; the returned error is only for calls the
// current state does not allow.
func (p *Page) Submit(ctx context.Context, fields FormFields) error {
	p.mu.Lock()
	ready, ok := p.state.(*Ready)
	if !ok {
		p.mu.Unlock()
		return ErrNotReady
	}
	if ready.Form.Submitting {
		p.mu.Unlock()
		return ErrAlreadySubmitting
	}

	ready.Form.Fields = fields
	ready.Form.Error = ""
	in, msg := buildCreateInput(fields)
	if msg != "" {
		ready.Form.Error = msg
		p.mu.Unlock()
		return nil
	}
	ready.Form.Submitting = true
	p.mu.Unlock()

	created, err := p.api.Create(ctx, in)

	p.mu.Lock()
	defer p.mu.Unlock()
	ready.Form.Submitting = false
	if err != nil {
		ready.Form.Error = createErrorMessage(err)
		return nil
	}
	ready.Movies = append([]movies.Movie{*created}, ready.Movies...)
	ready.Form = FormState{}
	return nil
}

// Delete removes a movie after the user confirmed. Unconfirmed calls are
// no-ops. A failed request raises an alert and keeps the list as it was.
func (p *Page) Delete(ctx context.Context, id uint64, confirmed bool) error {
	p.mu.Lock()
	ready, ok := p.state.(*Ready)
	p.mu.Unlock()
	if !ok {
		return ErrNotReady
	}
	if !confirmed {
		return nil
	}

	err := p.api.Delete(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.alert = ErrDeleteFailed.Error() + "."
		return nil
	}
	kept := ready.Movies[:0:0]
	for _, m := range ready.Movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	ready.Movies = kept
	return nil
}

func buildCreateInput(f FormFields) (CreateMovieInput, string) {
	name := strings.TrimSpace(f.Name)
	detail := strings.TrimSpace(f.Detail)
	if name == "" || detail == "" {
		return CreateMovieInput{}, msgRequired
	}

	in := CreateMovieInput{Name: name, Detail: detail}
	if cover := strings.TrimSpace(f.CoverImage); cover != "" {
		in.CoverImage = &cover
	}
	if r := strings.TrimSpace(f.Rating); r != "" {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return CreateMovieInput{}, msgRatingNumber
		}
		in.Rating = &v
	}
	if y := strings.TrimSpace(f.ReleaseYear); y != "" {
		v, err := strconv.ParseFloat(y, 64)
		if err != nil || v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return CreateMovieInput{}, msgYearNumber
		}
		year := int(v)
		in.ReleaseYear = &year
	}
	return in, ""
}

func createErrorMessage(err error) string {
	if errors.Is(err, ErrCreateFailed) {
		return ErrCreateFailed.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return ErrCreateFailed.Error() + "."
}
