package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the dashboard page.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"num":    FormatNumber,
		"int":    FormatInt,
		"date":   FormatDate,
		"time":   formatTimePtr,
		"status": TranslateStatus,
		"badge":  badgeClass,
		"json":   toJSON,
		"asset":  assetURL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Page is the data handed to the dashboard template.
type Page struct {
	Dashboard *domain.Dashboard
	Year      int
}

func (r *Renderer) Dashboard(w io.Writer, d *domain.Dashboard) error {
	return r.templates.ExecuteTemplate(w, "dashboard.html", Page{Dashboard: d, Year: d.GeneratedAt.Year()})
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

func badgeClass(s domain.StepStatus) string {
	switch s {
	case domain.StepDone:
		return "ok"
	case domain.StepScheduled:
		return "warn"
	default:
		return "pending"
	}
}

// assetURL roots a relative asset path at the site root. Absolute URLs and
// root-relative paths are returned unchanged.
func assetURL(s string) string {
	if s == "" || strings.HasPrefix(s, "/") {
		return s
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		return s
	}
	return "/" + s
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
