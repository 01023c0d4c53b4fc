package service

import (
	"context"
	"sync"
	"time"

	"github.com/finsolar/investordash/internal/metrics"
	"go.uber.org/zap"
)

const defaultProbeInterval = 1 * time.Minute

// ProbeStatus is the outcome of the most recent manifest probe.
type ProbeStatus struct {
	CheckedAt     time.Time `json:"checked_at"`
	OK            bool      `json:"ok"`
	Error         string    `json:"error,omitempty"`
	DefaultTenant string    `json:"default_tenant,omitempty"`
}

// ProbeService periodically loads the manifest so /health can report
// whether the data source is reachable.
type ProbeService struct {
	dashboard *DashboardService
	logger    *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup

	mu     sync.RWMutex
	status *ProbeStatus
}

func NewProbeService(ds *DashboardService, logger *zap.Logger) *ProbeService {
	return &ProbeService{
		dashboard: ds,
		logger:    logger,
		interval:  defaultProbeInterval,
		stopCh:    make(chan struct{}),
	}
}

func (s *ProbeService) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Start probes once, then on every tick in a background goroutine.
func (s *ProbeService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("source probe started", zap.Duration("interval", s.interval))
		s.probe()

		for {
			select {
			case <-ticker.C:
				s.probe()
			case <-s.stopCh:
				s.logger.Info("source probe stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the probe.
func (s *ProbeService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *ProbeService) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Run(ctx)
}

// Run performs a single probe and records its outcome.
func (s *ProbeService) Run(ctx context.Context) ProbeStatus {
	st := ProbeStatus{CheckedAt: time.Now().UTC()}
	m, err := s.dashboard.Manifest(ctx)
	if err != nil {
		st.Error = err.Error()
	} else {
		st.OK = true
		st.DefaultTenant = m.DefaultTenant
	}
	metrics.RecordProbe(st.OK)

	s.mu.Lock()
	s.status = &st
	s.mu.Unlock()
	return st
}

// Status returns the last probe outcome, or nil before the first probe.
func (s *ProbeService) Status() *ProbeStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status == nil {
		return nil
	}
	st := *s.status
	return &st
}
