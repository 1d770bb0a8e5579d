// Package warehouse opens credential-scoped connections to the external SQL
// warehouse and normalizes the rows it returns.
//
// Connections are never pooled: the forwarded access token identifies the end
// user, so each request dials its own connection and closes it when done.
package warehouse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/customer-journey/backend/internal/config"
)

const (
	DialectDatabricks = "databricks"
	DialectPostgres   = "postgres"
)

// PlaceholderHost is the hostname shipped in sample env files.
const PlaceholderHost = "your-workspace.cloud.databricks.com"

var (
	ErrNotConfigured = errors.New("warehouse target not configured")
	ErrInvalidTarget = errors.New("invalid warehouse target")
	ErrMissingToken  = errors.New("missing forwarded access token")
)

// Row is one result row keyed by column name.
type Row map[string]any

type Conn interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	Close() error
}

// Dialer opens a new connection authenticated with the caller's token.
type Dialer interface {
	Dial(ctx context.Context, token string) (Conn, error)
	Dialect() string
}

// NewDialer resolves the connection target once. ErrNotConfigured means the
// target variable is absent; an ErrInvalidTarget wrap means it is present but
// unusable.
func NewDialer(cfg config.Config) (Dialer, error) {
	switch cfg.WarehouseDriver {
	case DialectPostgres:
		dsn := strings.TrimSpace(cfg.WarehouseDSN)
		if dsn == "" {
			return nil, ErrNotConfigured
		}
		pg, err := NewPostgresDialer(dsn, cfg.DatabricksSchema)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case DialectDatabricks, "":
		host := strings.TrimSpace(cfg.DatabricksHost)
		if host == "" || host == PlaceholderHost {
			return nil, ErrNotConfigured
		}
		target := Target{
			Host:     host,
			HTTPPath: strings.TrimSpace(cfg.DatabricksHTTPPath),
			Port:     cfg.DatabricksPort,
			Catalog:  cfg.DatabricksCatalog,
			Schema:   cfg.DatabricksSchema,
		}
		if err := target.Validate(); err != nil {
			return nil, err
		}
		return DatabricksDialer{Target: target}, nil
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidTarget, cfg.WarehouseDriver)
	}
}
