package service

import (
	"context"
	"slices"
	"strings"

	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/warehouse"
)

func (s *Service) ListTechnicianVisits(ctx context.Context, token string) ([]models.TechnicianVisit, error) {
	var visits []models.TechnicianVisit
	ok, err := s.live(ctx, token, "list_technician_visits", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.TechnicianVisits)
		if err != nil {
			return err
		}
		visits = make([]models.TechnicianVisit, 0, len(rows))
		for _, r := range rows {
			visits = append(visits, models.TechnicianVisit{
				VisitID:           getString(r, "visit_id"),
				CustomerID:        getString(r, "customer_id"),
				CustomerName:      getString(r, "customer_name"),
				Address:           getString(r, "address"),
				TechnicianID:      getString(r, "technician_id"),
				TechnicianName:    getString(r, "technician_name"),
				VisitDate:         getString(r, "visit_date"),
				VisitStatus:       getString(r, "visit_status"),
				VisitPurpose:      getString(r, "visit_purpose"),
				Latitude:          getFloat(r, "latitude"),
				Longitude:         getFloat(r, "longitude"),
				EstimatedDuration: getInt(r, "estimated_duration"),
				Notes:             getString(r, "notes"),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		visits = s.fixtures.Visits
	}
	return activeVisits(visits), nil
}

// activeVisits keeps planned and underway visits ordered by visit date.
func activeVisits(visits []models.TechnicianVisit) []models.TechnicianVisit {
	out := []models.TechnicianVisit{}
	for _, v := range visits {
		switch v.VisitStatus {
		case "planned", "underway":
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b models.TechnicianVisit) int {
		return strings.Compare(a.VisitDate, b.VisitDate)
	})
	return out
}
