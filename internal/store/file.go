package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finsolar/investordash/internal/domain"
)

// FileStore reads documents from a data directory laid out as
// manifest.json and tenants/<slug>.json.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

func (s *FileStore) Manifest(ctx context.Context) (*domain.Manifest, error) {
	data, err := s.read(ctx, "manifest.json")
	if err != nil {
		return nil, err
	}
	return decodeManifest(data)
}

func (s *FileStore) Tenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	if err := checkSlug(slug); err != nil {
		return nil, err
	}
	data, err := s.read(ctx, filepath.Join("tenants", slug+".json"))
	if err != nil {
		return nil, err
	}
	return decodeTenant(slug, data)
}

func (s *FileStore) read(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", rel, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return data, nil
}
