package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/finsolar/investordash/internal/render"
	"github.com/finsolar/investordash/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageHandler serves the HTML dashboard. The page always shows the
// manifest's default tenant; any other slug in the path is redirected.
type PageHandler struct {
	svc      *service.DashboardService
	renderer *render.Renderer
	logger   *zap.Logger
}

func NewPageHandler(svc *service.DashboardService, renderer *render.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{svc: svc, renderer: renderer, logger: logger}
}

// Root redirects to the default tenant's page.
// GET /
func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Manifest(r.Context())
	if err != nil {
		http.Error(w, "No se pudo cargar el manifest. Verifica /data/manifest.json", http.StatusBadGateway)
		return
	}
	if m.DefaultTenant == "" {
		http.Error(w, "El manifest no define un tenant por defecto.", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, tenantPath(m.DefaultTenant), http.StatusFound)
}

// Tenant renders the dashboard page.
// GET /{slug}/
func (h *PageHandler) Tenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	m, err := h.svc.Manifest(ctx)
	if err != nil {
		http.Error(w, "No se pudo cargar el manifest. Verifica /data/manifest.json", http.StatusBadGateway)
		return
	}
	if m.DefaultTenant == "" {
		http.Error(w, "El manifest no define un tenant por defecto.", http.StatusNotFound)
		return
	}
	if slug != m.DefaultTenant {
		http.Redirect(w, r, tenantPath(m.DefaultTenant), http.StatusFound)
		return
	}

	t, err := h.svc.Tenant(ctx, slug)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrTenantNotFound) || errors.Is(err, service.ErrInvalidSlug) {
			status = http.StatusNotFound
		}
		http.Error(w, "No se pudo cargar /data/tenants/"+slug+".json. Añade el archivo mediante Admin o GitHub.", status)
		return
	}

	d := h.svc.Build(&service.LoadResult{Slug: slug, Manifest: m, Tenant: t}, h.svc.DefaultPolicy())

	var buf bytes.Buffer
	if err := h.renderer.Dashboard(&buf, d); err != nil {
		h.logger.Error("failed to render dashboard", zap.String("tenant", slug), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func tenantPath(slug string) string {
	return "/" + url.PathEscape(slug) + "/"
}
