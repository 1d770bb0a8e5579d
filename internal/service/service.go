package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/customer-journey/backend/internal/fixtures"
	"github.com/customer-journey/backend/internal/warehouse"
)

var ErrNotFound = errors.New("not found")

// Service answers every read either from the warehouse or from fixtures.
type Service struct {
	dialer   warehouse.Dialer
	queries  Queries
	fixtures *fixtures.Set
	slots    *semaphore.Weighted
	logger   zerolog.Logger
	now      func() time.Time
	mode     modeFlag
}

// New starts in LIVE mode when dialer is non-nil and in FIXTURE mode otherwise.
// workers bounds the number of warehouse connections open at once.
func New(dialer warehouse.Dialer, set *fixtures.Set, workers int64, logger zerolog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if set == nil {
		set = fixtures.Default(time.Now())
	}
	s := &Service{
		dialer:   dialer,
		fixtures: set,
		slots:    semaphore.NewWeighted(workers),
		logger:   logger,
		now:      time.Now,
	}
	if dialer != nil {
		s.queries = queriesFor(dialer.Dialect())
		s.mode.init(ModeLive)
	}
	return s
}

func (s *Service) Mode() Mode {
	return s.mode.load()
}

func (s *Service) fallback(op string, err error) {
	if s.mode.downgrade() {
		s.logger.Error().Err(err).Str("op", op).Msg("warehouse query failed, switching to fixture mode")
		return
	}
	s.logger.Warn().Err(err).Str("op", op).Msg("warehouse query failed")
}

// live runs fn on a fresh connection when the adapter is LIVE and the caller
// forwarded a token. ok reports whether fn produced the result; when it is
// false the caller serves fixtures. err is only set when ctx itself ended.
func (s *Service) live(ctx context.Context, token, op string, fn func(context.Context, warehouse.Conn) error) (ok bool, err error) {
	if s.Mode() != ModeLive {
		return false, nil
	}
	if token == "" {
		s.logger.Debug().Str("op", op).Msg("no forwarded access token, serving fixture data")
		return false, nil
	}

	if err := s.withConn(ctx, token, fn); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		s.fallback(op, fmt.Errorf("%s: %w", op, err))
		return false, nil
	}
	return true, nil
}

func (s *Service) withConn(ctx context.Context, token string, fn func(context.Context, warehouse.Conn) error) error {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.slots.Release(1)

	conn, err := s.dialer.Dial(ctx, token)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to close warehouse connection")
		}
	}()
	return fn(ctx, conn)
}

func (s *Service) query(ctx context.Context, conn warehouse.Conn, query string, args ...any) ([]warehouse.Row, error) {
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		warehouse.Normalize(r)
	}
	return rows, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
