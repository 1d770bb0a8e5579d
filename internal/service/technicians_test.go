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

func TestActiveVisitsFiltersAndSorts(t *testing.T) {
	visits := []models.TechnicianVisit{
		{VisitID: "v1", VisitStatus: "completed", VisitDate: "2024-03-01T00:00:00Z"},
		{VisitID: "v2", VisitStatus: "planned", VisitDate: "2024-03-05T00:00:00Z"},
		{VisitID: "v3", VisitStatus: "underway", VisitDate: "2024-03-02T00:00:00Z"},
		{VisitID: "v4", VisitStatus: "cancelled", VisitDate: "2024-03-03T00:00:00Z"},
	}
	got := activeVisits(visits)
	require.Len(t, got, 2)
	assert.Equal(t, "v3", got[0].VisitID)
	assert.Equal(t, "v2", got[1].VisitID)
}

func TestListTechnicianVisitsLive(t *testing.T) {
	q := queriesFor(warehouse.DialectDatabricks)
	d := &fakeDialer{rows: map[string][]warehouse.Row{
		q.TechnicianVisits: {
			{
				"visit_id":           "VISIT010",
				"customer_id":        "CUST010",
				"customer_name":      "Grace Hopper",
				"address":            "1 Navy Way",
				"technician_id":      "TECH003",
				"technician_name":    "Sam Lee",
				"visit_date":         time.Date(2024, 3, 30, 15, 0, 0, 0, time.UTC),
				"visit_status":       "planned",
				"visit_purpose":      "installation",
				"latitude":           "40.7128",
				"longitude":          nil,
				"estimated_duration": int32(60),
			},
			{"visit_id": "VISIT011", "visit_status": "completed"},
		},
	}}
	s := newLiveService(t, d, 5)

	visits, err := s.ListTechnicianVisits(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, visits, 1)

	v := visits[0]
	assert.Equal(t, "VISIT010", v.VisitID)
	assert.Equal(t, "2024-03-30T15:00:00Z", v.VisitDate)
	require.NotNil(t, v.Latitude)
	assert.InDelta(t, 40.7128, *v.Latitude, 1e-9)
	assert.Nil(t, v.Longitude)
	assert.Equal(t, int64(60), v.EstimatedDuration)
}
