package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbsql "github.com/databricks/databricks-sql-go"
)

type DatabricksDialer struct {
	Target Target
}

func (d DatabricksDialer) Dialect() string {
	return DialectDatabricks
}

func (d DatabricksDialer) Dial(ctx context.Context, token string) (Conn, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	connector, err := dbsql.NewConnector(
		dbsql.WithServerHostname(d.Target.Host),
		dbsql.WithPort(d.Target.Port),
		dbsql.WithHTTPPath(d.Target.HTTPPath),
		dbsql.WithAccessToken(token),
		dbsql.WithInitialNamespace(d.Target.Catalog, d.Target.Schema),
	)
	if err != nil {
		return nil, fmt.Errorf("databricks connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("databricks connect: %w", err)
	}
	return &sqlConn{db: db, conn: conn}, nil
}

// sqlConn pins one database/sql connection for the lifetime of a request.
type sqlConn struct {
	db   *sql.DB
	conn *sql.Conn
}

func (c *sqlConn) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (c *sqlConn) Close() error {
	return errors.Join(c.conn.Close(), c.db.Close())
}
