package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/finsolar/investordash/internal/domain"
	"github.com/finsolar/investordash/internal/portfolio"
	"github.com/finsolar/investordash/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const acmeJSON = `{
  "name": "Acme Solar",
  "projects": [
    {
      "name": "Techo Norte",
      "location": "Monterrey, NL",
      "size_kwp": 11,
      "coordinates": {"lat": 25.6866, "lng": -100.3161},
      "site_secured_date": "2025-01-10",
      "ppa_secured_date": "2025-02-10",
      "installation_start_date": "2026-01-15"
    }
  ],
  "sociality": []
}`

func writeData(t *testing.T, manifest string, tenants map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tenants"), 0o755))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifest), 0o644))
	}
	for slug, body := range tenants {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tenants", slug+".json"), []byte(body), 0o644))
	}
	return dir
}

func newTestApp(t *testing.T, dir string) *App {
	t.Helper()
	app, err := NewApp(store.NewFileStore(dir), portfolio.CoarsePolicy(), zap.NewNop(), Options{
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	app.Dashboard.SetClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	return app
}

func do(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	rec := do(app, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "version")
}

func TestRouter_HealthDegradedAfterFailedProbe(t *testing.T) {
	app := newTestApp(t, writeData(t, "", nil))

	status := app.Probe.Run(context.Background())
	require.False(t, status.OK)

	rec := do(app, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "degraded", body["status"])
}

func TestRouter_Manifest(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme","tenants":["acme"]}`, nil))

	rec := do(app, "/v1/manifest")
	require.Equal(t, http.StatusOK, rec.Code)

	var m domain.Manifest
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	assert.Equal(t, "acme", m.DefaultTenant)
	assert.Equal(t, []string{"acme"}, m.Tenants)
}

func TestRouter_ManifestUnavailable(t *testing.T) {
	app := newTestApp(t, writeData(t, "", nil))

	rec := do(app, "/v1/manifest")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "manifest unavailable", errorBody(t, rec))
}

func TestRouter_Summary(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	tests := []struct {
		name     string
		query    string
		policy   string
		progress int
	}{
		// site and PPA reached, installation start still in the future
		{"default coarse policy", "", portfolio.PolicyCoarse, 50},
		{"proportional counts present dates", "?policy=proportional", portfolio.PolicyProportional, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(app, "/v1/tenants/acme/summary"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var s domain.Summary
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&s))
			assert.Equal(t, domain.SchemaSolar, s.Schema)
			assert.Equal(t, tt.policy, s.Policy)
			require.NotNil(t, s.Solar)
			assert.Equal(t, 11.0, s.Solar.TotalCapacityKWp)
			assert.Equal(t, 1, s.Solar.TotalProjects)
			assert.Equal(t, 20, s.Solar.EstimatedPanels)
			assert.Equal(t, tt.progress, s.Solar.AverageProgress)
		})
	}
}

func TestRouter_TenantErrors(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown tenant", "/v1/tenants/missing/summary", http.StatusNotFound},
		{"invalid slug", "/v1/tenants/ACME/dashboard", http.StatusBadRequest},
		{"unknown policy", "/v1/tenants/acme/summary?policy=nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(app, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, errorBody(t, rec))
		})
	}
}

func TestRouter_Dashboard(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	rec := do(app, "/v1/tenants/acme/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var d map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))

	tenant := d["tenant"].(map[string]any)
	assert.Equal(t, "acme", tenant["slug"])
	assert.Equal(t, domain.DefaultLogo, tenant["logo"])

	projects := d["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "Techo Norte", projects[0].(map[string]any)["title"])

	markers := d["map"].(map[string]any)["markers"].([]any)
	assert.Len(t, markers, 1)
}

func TestRouter_TenantDocument(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	rec := do(app, "/v1/tenants/acme")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	projects := body["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "solar", projects[0].(map[string]any)["kind"])
}

func TestRouter_Pages(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, map[string]string{"acme": acmeJSON}))

	t.Run("root redirects to default tenant", func(t *testing.T) {
		rec := do(app, "/")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/acme/", rec.Header().Get("Location"))
	})

	t.Run("other tenant redirects to default", func(t *testing.T) {
		rec := do(app, "/other/")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/acme/", rec.Header().Get("Location"))
	})

	t.Run("default tenant renders html", func(t *testing.T) {
		rec := do(app, "/acme/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), "Acme Solar")
		assert.Contains(t, rec.Body.String(), "Techo Norte")
	})
}

func TestRouter_PageWithoutManifest(t *testing.T) {
	app := newTestApp(t, writeData(t, "", nil))

	rec := do(app, "/")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRouter_MetricsEndpoints(t *testing.T) {
	app := newTestApp(t, writeData(t, `{"defaultTenant":"acme"}`, nil))

	do(app, "/v1/manifest")

	rec := do(app, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.GreaterOrEqual(t, stats["request_count"].(float64), 1.0)

	rec = do(app, "/metrics/prometheus")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "investordash_http_request_duration_seconds")
}
