package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/finsolar/investordash/internal/api/handlers"
	mw "github.com/finsolar/investordash/internal/api/middleware"
	"github.com/finsolar/investordash/internal/buildconfig"
	"github.com/finsolar/investordash/internal/config"
	"github.com/finsolar/investordash/internal/domain"
	"github.com/finsolar/investordash/internal/portfolio"
	"github.com/finsolar/investordash/internal/render"
	"github.com/finsolar/investordash/internal/service"
	"github.com/finsolar/investordash/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router       *chi.Mux
	Dashboard    *service.DashboardService
	Probe        *service.ProbeService
	limiter      *mw.RateLimiter
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// Options tune the router; zero values fall back to config.
type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	AssetsDir      string
}

func NewApp(source domain.DataSource, policy portfolio.StepPolicy, logger *zap.Logger, opts Options) (*App, error) {
	if opts.RateLimitRPS <= 0 {
		opts.RateLimitRPS = config.RateLimitRPS()
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = config.RateLimitBurst()
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	// Services
	dashboardSvc := service.NewDashboardService(source, policy, logger)
	probeSvc := service.NewProbeService(dashboardSvc, logger)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)
	pageHandler := handlers.NewPageHandler(dashboardSvc, renderer, logger)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Dashboard: dashboardSvc,
		Probe:     probeSvc,
		limiter:   mw.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		startTime: time.Now(),
	}
	app.limiter.StartCleanup(10 * time.Minute)

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(app.limiter.Middleware)

	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())
	r.Handle("/metrics/prometheus", promhttp.Handler())

	if opts.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir))))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/manifest", dashboardHandler.Manifest)
		r.Route("/tenants/{slug}", func(r chi.Router) {
			r.Get("/", dashboardHandler.Tenant)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/dashboard", dashboardHandler.Dashboard)
		})
	})

	// Browser pages
	r.Get("/", pageHandler.Root)
	r.Get("/{slug}", pageHandler.Tenant)
	r.Get("/{slug}/", pageHandler.Tenant)

	return app, nil
}

// NewAppFromConfig builds the source named by config and the app on top of it.
func NewAppFromConfig(opts store.Options, logger *zap.Logger) (*App, error) {
	source, err := store.NewSource(config.DataSource(), opts)
	if err != nil {
		return nil, err
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	logger.Info("scoring policy loaded",
		zap.String("policy", policy.Name),
		zap.String("mode", string(policy.Mode)),
		zap.Bool("require_past", policy.RequirePast))

	return NewApp(source, policy, logger, Options{AssetsDir: config.AssetsDir()})
}

// Close stops the router's background work. The probe is started and
// stopped separately by the caller.
func (app *App) Close() {
	app.limiter.Stop()
}

func loadPolicy() (portfolio.StepPolicy, error) {
	if path := config.ScoringPolicyPath(); path != "" {
		return portfolio.LoadPolicy(path)
	}
	return portfolio.PolicyByName(config.ScoringPolicy())
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"status":  "ok",
			"version": buildconfig.VersionInfo(),
		}

		status := http.StatusOK
		if probe := app.Probe.Status(); probe != nil {
			resp["source"] = probe
			if !probe.OK {
				resp["status"] = "degraded"
				status = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the data source interface at compile time.
var (
	_ domain.DataSource = (*store.FileStore)(nil)
	_ domain.DataSource = (*store.HTTPStore)(nil)
	_ domain.DataSource = (*store.PostgresStore)(nil)
)
