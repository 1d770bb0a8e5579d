package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/warehouse"
)

func TestFillHoursZeroFills(t *testing.T) {
	got := fillHours(nil)
	require.Len(t, got, 24)
	for h, p := range got {
		assert.Equal(t, h, p.Hour)
		assert.Zero(t, p.CallCount)
	}

	got = fillHours([]models.HourlyTrend{{Hour: 23, CallCount: 4}, {Hour: 2, CallCount: 1}, {Hour: 99, CallCount: 5}})
	require.Len(t, got, 24)
	assert.Equal(t, int64(1), got[2].CallCount)
	assert.Equal(t, int64(4), got[23].CallCount)
	assert.Zero(t, got[0].CallCount)
}

func TestGetHourlyTrendsLive(t *testing.T) {
	q := queriesFor(warehouse.DialectDatabricks)
	d := &fakeDialer{rows: map[string][]warehouse.Row{
		q.HourlyTrends: {
			{"call_hour": int32(3), "call_count": int64(7)},
			{"call_hour": int32(14), "call_count": int64(2)},
		},
	}}
	s := newLiveService(t, d, 5)

	got, err := s.GetHourlyTrends(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, got, 24)
	assert.Equal(t, int64(7), got[3].CallCount)
	assert.Equal(t, int64(2), got[14].CallCount)
	assert.Zero(t, got[4].CallCount)
}

func TestGetHourlyTrendsFixture(t *testing.T) {
	s := newFixtureService(t)

	got, err := s.GetHourlyTrends(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 24)
	for i, p := range got {
		assert.Equal(t, i, p.Hour)
		assert.GreaterOrEqual(t, p.CallCount, int64(0))
	}
}

func TestGetDailyTrendsLiveNoZeroFill(t *testing.T) {
	q := queriesFor(warehouse.DialectDatabricks)
	d := &fakeDialer{rows: map[string][]warehouse.Row{
		q.DailyTrends: {
			{"call_date": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "call_count": int64(5)},
			{"call_date": "2024-03-09", "call_count": int64(1)},
		},
	}}
	s := newLiveService(t, d, 5)

	got, err := s.GetDailyTrends(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, []models.DailyTrend{{Date: "2024-03-01", CallCount: 5}, {Date: "2024-03-09", CallCount: 1}}, got)
}

func TestGetDailyTrendsFixture(t *testing.T) {
	s := newFixtureService(t)

	got, err := s.GetDailyTrends(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 30)
}

func TestGetDashboardStatsLive(t *testing.T) {
	q := queriesFor(warehouse.DialectDatabricks)
	d := &fakeDialer{rows: map[string][]warehouse.Row{
		q.Stats: {{"open_calls": int64(12), "low_customers": int64(4), "normal_customers": int64(9), "urgent_customers": int64(1)}},
	}}
	s := newLiveService(t, d, 5)

	got, err := s.GetDashboardStats(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{OpenCalls: 12, LowCustomers: 4, NormalCustomers: 9, UrgentCustomers: 1}, got)
}
