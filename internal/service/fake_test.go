package service

import (
	"context"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/customer-journey/backend/internal/fixtures"
	"github.com/customer-journey/backend/internal/warehouse"
)

var fixedNow = time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)

// fakeDialer serves canned rows keyed by query text.
type fakeDialer struct {
	mu       sync.Mutex
	rows     map[string][]warehouse.Row
	dialErr  error
	queryErr error
	failOn   string
	block    chan struct{}

	dials    int
	closes   int
	inFlight int
	maxOpen  int
	tokens   []string
	args     [][]any
}

func (d *fakeDialer) Dialect() string {
	return warehouse.DialectDatabricks
}

func (d *fakeDialer) Dial(ctx context.Context, token string) (warehouse.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	d.tokens = append(d.tokens, token)
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	d.inFlight++
	if d.inFlight > d.maxOpen {
		d.maxOpen = d.inFlight
	}
	return &fakeConn{d: d}, nil
}

func (d *fakeDialer) stats() (dials, closes, maxOpen, inFlight int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials, d.closes, d.maxOpen, d.inFlight
}

type fakeConn struct {
	d *fakeDialer
}

func (c *fakeConn) Query(ctx context.Context, query string, args ...any) ([]warehouse.Row, error) {
	if c.d.block != nil {
		<-c.d.block
	}
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	c.d.args = append(c.d.args, args)
	if c.d.queryErr != nil && (c.d.failOn == "" || c.d.failOn == query) {
		return nil, c.d.queryErr
	}
	src := c.d.rows[query]
	out := make([]warehouse.Row, 0, len(src))
	for _, r := range src {
		out = append(out, maps.Clone(r))
	}
	return out, nil
}

func (c *fakeConn) Close() error {
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	c.d.closes++
	c.d.inFlight--
	return nil
}

func newFixtureService(t *testing.T) *Service {
	t.Helper()
	s := New(nil, fixtures.Default(fixedNow), 5, zerolog.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func newLiveService(t *testing.T, d *fakeDialer, workers int64) *Service {
	t.Helper()
	if d.rows == nil {
		d.rows = map[string][]warehouse.Row{}
	}
	s := New(d, fixtures.Default(fixedNow), workers, zerolog.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

const testToken = "dapi-test-token"
