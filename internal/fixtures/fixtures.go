// Package fixtures holds the canned data served when no warehouse is reachable.
package fixtures

import (
	"time"

	"github.com/customer-journey/backend/internal/models"
)

const SummaryModelVersion = "v1.0"

type Set struct {
	Customers   []models.Customer
	Journeys    map[string][]models.JourneyEvent
	NextActions []models.NextBestAction
	Stats       models.DashboardStats
	Hourly      []models.HourlyTrend
	Daily       []models.DailyTrend
	Visits      []models.TechnicianVisit
}

// Customer returns the fixture customer with the given id.
func (s *Set) Customer(id string) (models.Customer, bool) {
	for _, c := range s.Customers {
		if c.CustomerID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Candidates returns every next-action row recorded for the customer,
// qualifying or not.
func (s *Set) Candidates(customerID string) []models.NextBestAction {
	var out []models.NextBestAction
	for _, a := range s.NextActions {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out
}

// Default builds the demo data set with times relative to now.
func Default(now time.Time) *Set {
	iso := func(t time.Time) string { return t.UTC().Format(time.RFC3339) }
	updated := iso(now)

	s := &Set{
		Customers: []models.Customer{
			{
				CustomerID:   "CUST001",
				Name:         "John Smith",
				Email:        "john.smith@email.com",
				Phone:        "+1234567890",
				Status:       models.StatusNormal,
				MainCategory: "refrigerator",
				AISummary:    "Customer has active refrigerator cooling issue. Recent installation completed successfully. Multiple support interactions via phone and WhatsApp. Requires follow-up call to ensure satisfaction with repair service.",
				UpdatedAt:    updated,
			},
			{
				CustomerID:   "CUST002",
				Name:         "Sarah Johnson",
				Email:        "sarah.j@email.com",
				Phone:        "+1234567891",
				Status:       models.StatusUrgent,
				MainCategory: "washing machine",
				AISummary:    "Urgent case with washing machine leak. Multiple channels used: phone call, email complaint, and Facebook message. Technician visit currently underway. Customer appears frustrated but appreciative of response speed.",
				UpdatedAt:    updated,
			},
			{
				CustomerID:   "CUST003",
				Name:         "Michael Brown",
				Email:        "m.brown@email.com",
				Phone:        "+1234567892",
				Status:       models.StatusLow,
				MainCategory: "washing machine",
				AISummary:    "Low priority customer with product inquiries. Minimal support interactions. Recent website visit showing interest in washers. Good candidate for product recommendations.",
				UpdatedAt:    updated,
			},
			{
				CustomerID:   "CUST004",
				Name:         "Emily Davis",
				Email:        "emily.davis@email.com",
				Phone:        "+1234567893",
				Status:       models.StatusNormal,
				MainCategory: "oven",
				AISummary:    "Normal status customer with oven heating issue. Scheduled installation upcoming. Positive service review received. Active engagement across multiple channels.",
				UpdatedAt:    updated,
			},
			{
				CustomerID:   "CUST005",
				Name:         "David Wilson",
				Email:        "d.wilson@email.com",
				Phone:        "+1234567894",
				Status:       models.StatusUrgent,
				MainCategory: "dishwasher",
				AISummary:    "Urgent case with dishwasher noise complaint. Recent WhatsApp message expressing urgency. Technician visit planned for today. Requires immediate attention.",
				UpdatedAt:    updated,
			},
		},
		Journeys: map[string][]models.JourneyEvent{
			"CUST001": {
				{
					EventType:    models.EventCall,
					EventID:      "CALL001",
					EventTitle:   "Call",
					EventTime:    iso(now.Add(-2 * time.Hour)),
					Description:  "Refrigerator not cooling",
					CallDuration: seconds(450),
					CallType:     "inbound",
					Status:       "open",
					Color:        "blue",
					Shape:        "circle",
				},
				{
					EventType:   models.EventInstallation,
					EventID:     "INST001",
					EventTitle:  "Installation",
					EventTime:   iso(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
					Description: "Installation of Smart Refrigerator",
					ProductName: "Smart Refrigerator",
					Status:      "completed",
					Color:       "green",
					Shape:       "square",
				},
				{
					EventType:   models.EventDigital,
					EventID:     "DIG001",
					EventTitle:  "Digital Interaction - WhatsApp",
					EventTime:   iso(now.Add(-72 * time.Hour)),
					Description: "Hi, I need help with my refrigerator",
					Channel:     "WhatsApp",
					Status:      "neutral",
					Color:       "pink",
					Shape:       "star",
				},
			},
			"CUST002": {
				{
					EventType:    models.EventCall,
					EventID:      "CALL002",
					EventTitle:   "Call",
					EventTime:    iso(now.Add(-5 * time.Hour)),
					Description:  "Washing machine leaking",
					CallDuration: seconds(600),
					CallType:     "inbound",
					Status:       "escalated",
					Color:        "blue",
					Shape:        "circle",
				},
				{
					EventType:      models.EventVisit,
					EventID:        "VISIT002",
					EventTitle:     "Technician Visit - repair",
					EventTime:      iso(now),
					Description:    "repair by Lisa Martinez",
					VisitPurpose:   "repair",
					TechnicianName: "Lisa Martinez",
					Status:         "underway",
					Color:          "orange",
					Shape:          "triangle",
				},
			},
			"CUST003": {},
			"CUST004": {},
			"CUST005": {},
		},
		NextActions: []models.NextBestAction{
			{
				CustomerID:        "CUST001",
				ActionType:        "follow_up",
				ActionDescription: "Schedule follow-up call to confirm refrigerator repair satisfaction",
				Priority:          "medium",
				RecommendedDate:   iso(now.Add(24 * time.Hour)),
				Status:            "pending",
			},
			{
				CustomerID:        "CUST002",
				ActionType:        "visit",
				ActionDescription: "Monitor ongoing technician visit for washing machine repair",
				Priority:          "high",
				RecommendedDate:   iso(now),
				Status:            "in_progress",
			},
			{
				CustomerID:        "CUST003",
				ActionType:        "offer",
				ActionDescription: "Send product recommendation email for washers based on website visit",
				Priority:          "low",
				RecommendedDate:   iso(now.Add(48 * time.Hour)),
				Status:            "pending",
			},
			{
				CustomerID:        "CUST004",
				ActionType:        "call",
				ActionDescription: "Confirm upcoming installation appointment details",
				Priority:          "medium",
				RecommendedDate:   iso(now.Add(24 * time.Hour)),
				Status:            "pending",
			},
			{
				CustomerID:        "CUST005",
				ActionType:        "visit",
				ActionDescription: "Ensure technician arrives on time for urgent dishwasher repair",
				Priority:          "high",
				RecommendedDate:   iso(now.Add(3 * time.Hour)),
				Status:            "pending",
			},
		},
		Stats: models.DashboardStats{
			OpenCalls:       3,
			LowCustomers:    1,
			NormalCustomers: 2,
			UrgentCustomers: 2,
		},
		Visits: []models.TechnicianVisit{
			{
				VisitID:           "VISIT002",
				CustomerID:        "CUST002",
				CustomerName:      "Sarah Johnson",
				Address:           "456 Oak Ave, Los Angeles",
				TechnicianID:      "TECH002",
				TechnicianName:    "Lisa Martinez",
				VisitDate:         iso(now),
				VisitStatus:       "underway",
				VisitPurpose:      "repair",
				Latitude:          coord(34.0522),
				Longitude:         coord(-118.2437),
				EstimatedDuration: 90,
			},
			{
				VisitID:           "VISIT004",
				CustomerID:        "CUST005",
				CustomerName:      "David Wilson",
				Address:           "654 Maple Dr, Phoenix",
				TechnicianID:      "TECH001",
				TechnicianName:    "Mike Anderson",
				VisitDate:         iso(now.Add(3 * time.Hour)),
				VisitStatus:       "planned",
				VisitPurpose:      "repair",
				Latitude:          coord(33.4484),
				Longitude:         coord(-112.0740),
				EstimatedDuration: 75,
			},
		},
	}

	for h := 0; h < 24; h++ {
		s.Hourly = append(s.Hourly, models.HourlyTrend{Hour: h, CallCount: int64(h%5 + 2)})
	}
	for i := 0; i < 30; i++ {
		day := now.AddDate(0, 0, i-29).UTC().Format(time.DateOnly)
		s.Daily = append(s.Daily, models.DailyTrend{Date: day, CallCount: int64(i%10 + 5)})
	}
	return s
}

func seconds(v int64) *int64 { return &v }

func coord(v float64) *float64 { return &v }
