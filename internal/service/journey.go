package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/warehouse"
)

// eventKind carries the fixed presentation metadata of one event source and
// knows how to reshape its rows.
type eventKind struct {
	Kind          string
	Color         string
	Shape         string
	DefaultStatus string
	query         func(Queries) string
	build         func(r warehouse.Row, e *models.JourneyEvent)
}

var eventKinds = []eventKind{
	{
		Kind:          models.EventCall,
		Color:         "blue",
		Shape:         "circle",
		DefaultStatus: "open",
		query:         func(q Queries) string { return q.Calls },
		build: func(r warehouse.Row, e *models.JourneyEvent) {
			e.EventID = getString(r, "call_id")
			e.EventTime = getString(r, "call_time")
			e.EventTitle = "Call"
			e.Description = getString(r, "call_reason")
			e.CallDuration = getIntPtr(r, "call_duration")
			e.CallType = getString(r, "call_type")
			e.Status = getString(r, "call_status")
		},
	},
	{
		Kind:          models.EventInstallation,
		Color:         "green",
		Shape:         "square",
		DefaultStatus: "completed",
		query:         func(q Queries) string { return q.Installations },
		build: func(r warehouse.Row, e *models.JourneyEvent) {
			e.EventID = getString(r, "installation_id")
			e.EventTime = getString(r, "installation_date")
			e.EventTitle = "Installation"
			e.ProductName = getString(r, "product_name")
			e.Description = "Installation"
			if e.ProductName != "" {
				e.Description = "Installation of " + e.ProductName
			}
			e.Status = getString(r, "installation_status")
		},
	},
	{
		Kind:          models.EventVisit,
		Color:         "orange",
		Shape:         "triangle",
		DefaultStatus: "planned",
		query:         func(q Queries) string { return q.Visits },
		build: func(r warehouse.Row, e *models.JourneyEvent) {
			e.EventID = getString(r, "visit_id")
			e.EventTime = getString(r, "visit_date")
			e.VisitPurpose = getString(r, "visit_purpose")
			e.TechnicianName = getString(r, "technician_name")
			e.EventTitle = "Technician Visit"
			if e.VisitPurpose != "" {
				e.EventTitle += " - " + e.VisitPurpose
			}
			e.Description = strings.TrimSpace(e.VisitPurpose)
			if e.TechnicianName != "" {
				e.Description = strings.TrimSpace(e.Description + " by " + e.TechnicianName)
			}
			e.Status = getString(r, "visit_status")
		},
	},
	{
		Kind:          models.EventWebsite,
		Color:         "purple",
		Shape:         "diamond",
		DefaultStatus: "neutral",
		query:         func(q Queries) string { return q.WebsiteVisits },
		build: func(r warehouse.Row, e *models.JourneyEvent) {
			e.EventID = getString(r, "session_id")
			e.EventTime = getString(r, "visit_time")
			e.EventTitle = "Website Visit"
			e.PageURL = getString(r, "page_url")
			e.Description = orDefault(getString(r, "page_title"), e.PageURL)
			e.Sentiment = getString(r, "sentiment")
			e.Status = e.Sentiment
		},
	},
	{
		Kind:          models.EventDigital,
		Color:         "pink",
		Shape:         "star",
		DefaultStatus: "neutral",
		query:         func(q Queries) string { return q.DigitalInteractions },
		build: func(r warehouse.Row, e *models.JourneyEvent) {
			e.EventID = getString(r, "interaction_id")
			e.EventTime = getString(r, "interaction_time")
			e.Channel = getString(r, "channel")
			e.EventTitle = "Digital Interaction"
			if e.Channel != "" {
				e.EventTitle += " - " + e.Channel
			}
			e.Description = getString(r, "message_text")
			e.Sentiment = getString(r, "sentiment")
			e.Status = e.Sentiment
		},
	},
}

func (k eventKind) events(rows []warehouse.Row) []models.JourneyEvent {
	out := make([]models.JourneyEvent, 0, len(rows))
	for _, r := range rows {
		e := models.JourneyEvent{EventType: k.Kind, Color: k.Color, Shape: k.Shape}
		k.build(r, &e)
		e.Status = orDefault(e.Status, k.DefaultStatus)
		out = append(out, e)
	}
	return out
}

// GetJourney returns every event of the customer, newest first. An unknown
// customer has an empty journey.
func (s *Service) GetJourney(ctx context.Context, token, customerID string) ([]models.JourneyEvent, error) {
	var events []models.JourneyEvent
	ok, err := s.live(ctx, token, "get_journey", func(ctx context.Context, conn warehouse.Conn) error {
		sources := make([][]models.JourneyEvent, 0, len(eventKinds))
		for _, k := range eventKinds {
			rows, err := s.query(ctx, conn, k.query(s.queries), customerID)
			if err != nil {
				return fmt.Errorf("%s events: %w", k.Kind, err)
			}
			sources = append(sources, k.events(rows))
		}
		events = mergeJourney(sources...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		events = mergeJourney(s.fixtures.Journeys[customerID])
	}
	return events, nil
}

// mergeJourney concatenates the per-kind sources and sorts the result by
// event_time descending. Events without a time sort last.
func mergeJourney(sources ...[]models.JourneyEvent) []models.JourneyEvent {
	out := []models.JourneyEvent{}
	for _, src := range sources {
		out = append(out, src...)
	}
	slices.SortStableFunc(out, func(a, b models.JourneyEvent) int {
		return strings.Compare(b.EventTime, a.EventTime)
	})
	return out
}
