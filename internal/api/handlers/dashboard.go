package handlers

import (
	"net/http"

	"github.com/finsolar/investordash/internal/service"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Manifest returns the tenant manifest.
// GET /v1/manifest
func (h *DashboardHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Manifest(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Tenant returns the tenant document as decoded, with each project tagged
// by kind.
// GET /v1/tenants/{slug}
func (h *DashboardHandler) Tenant(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Load(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Tenant)
}

// Summary returns the KPI block for the tenant's schema.
// GET /v1/tenants/{slug}/summary?policy=coarse|proportional
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	policy, err := h.svc.Policy(r.URL.Query().Get("policy"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	summary, err := h.svc.Summary(r.Context(), chi.URLParam(r, "slug"), policy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Dashboard returns the full view: KPIs, cards and map.
// GET /v1/tenants/{slug}/dashboard?policy=coarse|proportional
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	policy, err := h.svc.Policy(r.URL.Query().Get("policy"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	d, err := h.svc.Dashboard(r.Context(), chi.URLParam(r, "slug"), policy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
