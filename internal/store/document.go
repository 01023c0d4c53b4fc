package store

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/finsolar/investordash/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidSlug guards every path, URL and key built from a tenant slug.
func ValidSlug(slug string) bool {
	return len(slug) <= 64 && slugPattern.MatchString(slug)
}

func checkSlug(slug string) error {
	if !ValidSlug(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

func decodeManifest(data []byte) (*domain.Manifest, error) {
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

func decodeTenant(slug string, data []byte) (*domain.Tenant, error) {
	var t domain.Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tenant %s: %w", slug, err)
	}
	return &t, nil
}
