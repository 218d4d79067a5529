package frontend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"movie-review-app/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "movie_session"
	viewPath      = "/movies"
)

type Handler struct {
	sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{sessions: sessions}
}

// pageView is what page.html renders.
type pageView struct {
	Loading bool
	Error   string
	Ready   bool
	Movies  []movies.Movie
	Form    FormState
	Alert   string
	Confirm string
}

// GET /  mounts a fresh page for the browser, loading the list once.
func (h *Handler) Index(c *gin.Context) {
	cookie, _ := c.Cookie(sessionCookie)
	id, page := h.sessions.Start(cookie)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)

	if err := page.Mount(c.Request.Context()); err != nil {
		slog.Warn("mount page", "err", err)
	}
	h.render(c, page)
}

// GET /movies  renders the session's page as it stands, without reloading.
// Form posts redirect here, so a browser refresh never repeats them.
func (h *Handler) View(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}
	h.render(c, page)
}

// POST /movies
func (h *Handler) Create(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}

	err := page.Submit(c.Request.Context(), FormFields{
		Name:        c.PostForm("name"),
		Detail:      c.PostForm("detail"),
		CoverImage:  c.PostForm("coverimage"),
		Rating:      c.PostForm("rating"),
		ReleaseYear: c.PostForm("release_year"),
	})
	// a second submit lands on the view of the one still in flight
	if err != nil && !errors.Is(err, ErrAlreadySubmitting) {
		slog.Warn("submit from page", "err", err)
	}
	c.Redirect(http.StatusSeeOther, viewPath)
}

// POST /movies/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, viewPath)
		return
	}

	confirmed := c.PostForm("confirmed") == "true"
	if err := page.Delete(c.Request.Context(), id, confirmed); err != nil {
		slog.Warn("delete from page", "err", err, "id", id)
	}
	c.Redirect(http.StatusSeeOther, viewPath)
}

// page finds the session page or sends the browser back to mount one.
func (h *Handler) page(c *gin.Context) (*Page, bool) {
	id, err := c.Cookie(sessionCookie)
	if err == nil {
		if p, ok := h.sessions.Get(id); ok {
			return p, true
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
	return nil, false
}

func (h *Handler) render(c *gin.Context, page *Page) {
	view := pageView{Confirm: msgDeleteConfirm}
	switch s := page.State().(type) {
	case Idle, Loading:
		view.Loading = true
	case Failed:
		view.Error = s.Message
	case *Ready:
		view.Ready = true
		view.Movies = s.Movies
		view.Form = s.Form
		view.Alert = page.TakeAlert()
	}
	c.HTML(http.StatusOK, "page.html", view)
}
