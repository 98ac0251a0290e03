package web

import (
	"embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render writes one of the embedded pages. Render failures are logged and
// answered with a bare 500; there is no error page to fall back to.
func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.WithError(err).WithField("template", name).Error("Failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
