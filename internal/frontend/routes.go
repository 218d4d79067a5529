package frontend

import (
	"embed"
	"html/template"
	"strconv"

	"movie-review-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"rating": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	},
	"year": func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	},
}

// NewRouter builds the web engine serving the review page.
func NewRouter(api MovieAPI) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
	)
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")))

	h := NewHandler(NewSessions(api))
	r.GET("/", h.Index)
	r.GET(viewPath, h.View)
	r.POST("/movies", h.Create)
	r.POST("/movies/:id/delete", h.Delete)
	return r
}
