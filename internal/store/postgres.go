package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsolar/investordash/internal/domain"
	"github.com/jackc/pgx/v5"
)

const (
	ManifestKey     = "manifest"
	tenantKeyPrefix = "tenants/"
)

// Querier is the slice of pgxpool.Pool the store needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore reads documents from the dashboard_documents table. It never
// writes; documents are loaded by scripts/seed.go or by hand.
type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// TenantKey is the document key for a tenant slug.
func TenantKey(slug string) string {
	return tenantKeyPrefix + slug
}

func (s *PostgresStore) Manifest(ctx context.Context) (*domain.Manifest, error) {
	data, err := s.document(ctx, ManifestKey)
	if err != nil {
		return nil, err
	}
	return decodeManifest(data)
}

func (s *PostgresStore) Tenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	if err := checkSlug(slug); err != nil {
		return nil, err
	}
	data, err := s.document(ctx, TenantKey(slug))
	if err != nil {
		return nil, err
	}
	return decodeTenant(slug, data)
}

func (s *PostgresStore) document(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT document::text FROM dashboard_documents WHERE key = $1`,
		key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	return data, nil
}
