package store

import (
	"fmt"
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

// Source kinds
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Options struct {
	DataDir string
	BaseURL string
	Timeout time.Duration
	DB      Querier
}

// NewSource builds the data source named by kind.
// Returns an error if the kind is unknown or its required option is empty.
func NewSource(kind string, opts Options) (domain.DataSource, error) {
	switch kind {
	case SourceFile:
		if opts.DataDir == "" {
			return nil, fmt.Errorf("DATA_DIR is required for the file source")
		}
		return NewFileStore(opts.DataDir), nil

	case SourceHTTP:
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("DATA_BASE_URL is required for the http source")
		}
		return NewHTTPStore(opts.BaseURL, opts.Timeout), nil

	case SourcePostgres:
		if opts.DB == nil {
			return nil, fmt.Errorf("a database connection is required for the postgres source")
		}
		return NewPostgresStore(opts.DB), nil

	default:
		return nil, fmt.Errorf("unknown data source: %s (valid options: file, http, postgres)", kind)
	}
}
