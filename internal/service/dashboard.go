package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finsolar/investordash/internal/domain"
	"github.com/finsolar/investordash/internal/metrics"
	"github.com/finsolar/investordash/internal/portfolio"
	"github.com/finsolar/investordash/internal/store"
	"go.uber.org/zap"
)

var (
	ErrManifestUnavailable = errors.New("manifest unavailable")
	ErrNoDefaultTenant     = errors.New("manifest has no default tenant")
	ErrInvalidSlug         = errors.New("invalid tenant slug")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantUnavailable   = errors.New("tenant data unavailable")
)

// DashboardService loads tenant documents and turns them into views. Each
// call fetches fresh documents; nothing is cached between calls.
type DashboardService struct {
	source domain.DataSource
	policy portfolio.StepPolicy
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(source domain.DataSource, policy portfolio.StepPolicy, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		source: source,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the clock used for milestone checks.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

// DefaultPolicy is the policy used when a request does not name one.
func (s *DashboardService) DefaultPolicy() portfolio.StepPolicy {
	return s.policy
}

// Policy resolves a preset by name; an empty name selects the default.
func (s *DashboardService) Policy(name string) (portfolio.StepPolicy, error) {
	if name == "" || name == s.policy.Name {
		return s.policy, nil
	}
	return portfolio.PolicyByName(name)
}

// LoadResult is one load cycle's immutable snapshot.
type LoadResult struct {
	Slug     string
	Manifest *domain.Manifest
	Tenant   *domain.Tenant
}

func (s *DashboardService) Manifest(ctx context.Context) (*domain.Manifest, error) {
	start := time.Now()
	m, err := s.source.Manifest(ctx)
	if err != nil {
		metrics.RecordDocumentLoad("manifest", outcome(err), time.Since(start))
		s.logger.Error("failed to load manifest", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrManifestUnavailable, err)
	}
	metrics.RecordDocumentLoad("manifest", "ok", time.Since(start))
	return m, nil
}

func (s *DashboardService) Tenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	start := time.Now()
	t, err := s.source.Tenant(ctx, slug)
	if err != nil {
		metrics.RecordDocumentLoad("tenant", outcome(err), time.Since(start))
		switch {
		case errors.Is(err, store.ErrInvalidSlug):
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
		case errors.Is(err, store.ErrNotFound):
			s.logger.Warn("tenant not found", zap.String("tenant", slug))
			return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, slug)
		default:
			s.logger.Error("failed to load tenant", zap.String("tenant", slug), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrTenantUnavailable, err)
		}
	}
	metrics.RecordDocumentLoad("tenant", "ok", time.Since(start))
	return t, nil
}

// Load fetches the manifest and then the tenant. An empty slug selects the
// manifest's default tenant. Either failure ends the cycle with no partial
// result.
func (s *DashboardService) Load(ctx context.Context, slug string) (*LoadResult, error) {
	m, err := s.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	if slug == "" {
		slug = m.DefaultTenant
	}
	if slug == "" {
		return nil, ErrNoDefaultTenant
	}

	t, err := s.Tenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Slug: slug, Manifest: m, Tenant: t}, nil
}

func (s *DashboardService) Summary(ctx context.Context, slug string, policy portfolio.StepPolicy) (*domain.Summary, error) {
	res, err := s.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	summary := portfolio.Summarize(res.Tenant, policy, s.now())
	s.record(res.Slug, summary)
	return &summary, nil
}

// Dashboard assembles the full page view for a tenant.
func (s *DashboardService) Dashboard(ctx context.Context, slug string, policy portfolio.StepPolicy) (*domain.Dashboard, error) {
	res, err := s.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.Build(res, policy), nil
}

// Build turns a loaded snapshot into a view. It does no I/O.
func (s *DashboardService) Build(res *LoadResult, policy portfolio.StepPolicy) *domain.Dashboard {
	now := s.now()
	t := res.Tenant
	wpp := t.WattPerPanel()

	summary := portfolio.Summarize(t, policy, now)
	s.record(res.Slug, summary)

	return &domain.Dashboard{
		Tenant: domain.TenantInfo{
			Slug: res.Slug,
			Name: t.Name,
			Logo: t.LogoOrDefault(),
		},
		Summary:     summary,
		Projects:    portfolio.BuildCards(t.Projects, wpp, policy, now),
		Sociality:   portfolio.BuildCards(t.Sociality, wpp, policy, now),
		Map:         portfolio.MapView(t.Combined()),
		GeneratedAt: now.UTC(),
	}
}

func (s *DashboardService) record(slug string, summary domain.Summary) {
	if summary.Solar != nil {
		metrics.RecordPortfolioProgress(slug, summary.Policy, summary.Solar.AverageProgress)
	}
}

func outcome(err error) string {
	if errors.Is(err, store.ErrNotFound) {
		return "not_found"
	}
	return "error"
}
