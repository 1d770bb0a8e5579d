package service

import (
	"context"
	"slices"

	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/warehouse"
)

const hoursPerDay = 24

func (s *Service) GetDashboardStats(ctx context.Context, token string) (models.DashboardStats, error) {
	var out models.DashboardStats
	ok, err := s.live(ctx, token, "get_dashboard_stats", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.Stats)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			r := rows[0]
			out = models.DashboardStats{
				OpenCalls:       getInt(r, "open_calls"),
				LowCustomers:    getInt(r, "low_customers"),
				NormalCustomers: getInt(r, "normal_customers"),
				UrgentCustomers: getInt(r, "urgent_customers"),
			}
		}
		return nil
	})
	if err != nil {
		return models.DashboardStats{}, err
	}
	if !ok {
		out = s.fixtures.Stats
	}
	return out, nil
}

// GetHourlyTrends always returns 24 points, hours 0 through 23.
func (s *Service) GetHourlyTrends(ctx context.Context, token string) ([]models.HourlyTrend, error) {
	var points []models.HourlyTrend
	ok, err := s.live(ctx, token, "get_hourly_trends", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.HourlyTrends)
		if err != nil {
			return err
		}
		for _, r := range rows {
			h := getIntPtr(r, "call_hour")
			if h == nil {
				continue
			}
			points = append(points, models.HourlyTrend{Hour: int(*h), CallCount: getInt(r, "call_count")})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		points = s.fixtures.Hourly
	}
	return fillHours(points), nil
}

// GetDailyTrends returns only the days with at least one call.
func (s *Service) GetDailyTrends(ctx context.Context, token string) ([]models.DailyTrend, error) {
	var out []models.DailyTrend
	ok, err := s.live(ctx, token, "get_daily_trends", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.DailyTrends)
		if err != nil {
			return err
		}
		out = make([]models.DailyTrend, 0, len(rows))
		for _, r := range rows {
			out = append(out, models.DailyTrend{
				Date:      dateOnly(getString(r, "call_date")),
				CallCount: getInt(r, "call_count"),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		out = slices.Clone(s.fixtures.Daily)
	}
	return nonNil(out), nil
}

func fillHours(points []models.HourlyTrend) []models.HourlyTrend {
	var counts [hoursPerDay]int64
	for _, p := range points {
		if p.Hour < 0 || p.Hour >= hoursPerDay || p.CallCount < 0 {
			continue
		}
		counts[p.Hour] += p.CallCount
	}
	out := make([]models.HourlyTrend, hoursPerDay)
	for h := range out {
		out[h] = models.HourlyTrend{Hour: h, CallCount: counts[h]}
	}
	return out
}
