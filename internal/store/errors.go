package store

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidSlug = errors.New("invalid tenant slug")
)
