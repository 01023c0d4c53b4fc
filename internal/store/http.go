package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

const maxDocumentBytes = 8 << 20

// HTTPStore fetches documents from a static site serving /data/manifest.json
// and /data/tenants/<slug>.json. Responses are never cached.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStore) Manifest(ctx context.Context) (*domain.Manifest, error) {
	data, err := s.get(ctx, "/data/manifest.json")
	if err != nil {
		return nil, err
	}
	return decodeManifest(data)
}

func (s *HTTPStore) Tenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	if err := checkSlug(slug); err != nil {
		return nil, err
	}
	data, err := s.get(ctx, "/data/tenants/"+url.PathEscape(slug)+".json")
	if err != nil {
		return nil, err
	}
	return decodeTenant(slug, data)
}

func (s *HTTPStore) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
