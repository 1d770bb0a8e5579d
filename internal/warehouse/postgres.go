package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PostgresDialer talks to a Postgres-compatible warehouse. The forwarded token
// is sent as the connection password.
type PostgresDialer struct {
	config *pgx.ConnConfig
}

// NewPostgresDialer parses dsn once. A non-empty schema becomes the session
// search_path.
func NewPostgresDialer(dsn, schema string) (*PostgresDialer, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if schema != "" {
		cfg.RuntimeParams["search_path"] = schema
	}
	return &PostgresDialer{config: cfg}, nil
}

func (d *PostgresDialer) SearchPath() string {
	return d.config.RuntimeParams["search_path"]
}

func (d *PostgresDialer) Dialect() string {
	return DialectPostgres
}

func (d *PostgresDialer) Dial(ctx context.Context, token string) (Conn, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	cfg := d.config.Copy()
	cfg.Password = token
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return &pgConn{conn: conn}, nil
}

type pgConn struct {
	conn *pgx.Conn
}

func (c *pgConn) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(Row, len(fields))
		for i, f := range fields {
			row[f.Name] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (c *pgConn) Close() error {
	return c.conn.Close(context.Background())
}
