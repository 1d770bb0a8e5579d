package service

import (
	"strconv"
	"strings"

	"github.com/customer-journey/backend/internal/warehouse"
)

// Queries holds one SQL template per read operation. Templates take at most
// one bound parameter, the customer id.
type Queries struct {
	ListCustomers       string
	GetCustomer         string
	GetSummary          string
	NextAction          string
	Calls               string
	Installations       string
	Visits              string
	WebsiteVisits       string
	DigitalInteractions string
	Stats               string
	HourlyTrends        string
	DailyTrends         string
	TechnicianVisits    string
}

const customerColumns = `c.customer_id, c.name, c.email, c.phone, c.status, c.main_category,
	s.summary_text AS ai_summary, c.updated_at`

var databricksQueries = Queries{
	ListCustomers: `SELECT ` + customerColumns + `
	FROM customers c
	LEFT JOIN customer_summaries s ON s.customer_id = c.customer_id
	ORDER BY c.customer_id ASC`,

	GetCustomer: `SELECT ` + customerColumns + `, s.generated_at AS summary_generated_at
	FROM customers c
	LEFT JOIN customer_summaries s ON s.customer_id = c.customer_id
	WHERE c.customer_id = ?`,

	GetSummary: `SELECT summary_text, generated_at, model_version
	FROM customer_summaries
	WHERE customer_id = ?
	ORDER BY generated_at DESC
	LIMIT 1`,

	NextAction: `SELECT customer_id, action_type, action_description, priority, recommended_date, status
	FROM next_best_actions
	WHERE customer_id = ? AND status IN ('pending', 'in_progress')
	ORDER BY CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END ASC,
		recommended_date ASC
	LIMIT 1`,

	Calls: `SELECT call_id, call_time, call_reason, call_duration, call_type, call_status
	FROM calls
	WHERE customer_id = ?
	ORDER BY call_time DESC`,

	Installations: `SELECT installation_id, installation_date, product_name, installation_status
	FROM installations
	WHERE customer_id = ?
	ORDER BY installation_date DESC`,

	Visits: `SELECT v.visit_id, v.visit_date, v.visit_purpose, v.visit_status, t.technician_name
	FROM technician_visits v
	LEFT JOIN technicians t ON t.technician_id = v.technician_id
	WHERE v.customer_id = ?
	ORDER BY v.visit_date DESC`,

	WebsiteVisits: `SELECT session_id, visit_time, page_url, page_title, sentiment
	FROM website_visits
	WHERE customer_id = ?
	ORDER BY visit_time DESC`,

	DigitalInteractions: `SELECT interaction_id, interaction_time, channel, message_text, sentiment
	FROM digital_interactions
	WHERE customer_id = ?
	ORDER BY interaction_time DESC`,

	Stats: `SELECT
		(SELECT COUNT(*) FROM calls WHERE call_status = 'open') AS open_calls,
		(SELECT COUNT(*) FROM customers WHERE status = 'low') AS low_customers,
		(SELECT COUNT(*) FROM customers WHERE status = 'normal') AS normal_customers,
		(SELECT COUNT(*) FROM customers WHERE status = 'urgent') AS urgent_customers`,

	HourlyTrends: `SELECT hour(call_time) AS call_hour, COUNT(*) AS call_count
	FROM calls
	WHERE call_time >= current_timestamp() - INTERVAL 24 HOURS
	GROUP BY hour(call_time)
	ORDER BY call_hour`,

	DailyTrends: `SELECT to_date(call_time) AS call_date, COUNT(*) AS call_count
	FROM calls
	WHERE call_time >= date_sub(current_date(), 30)
	GROUP BY to_date(call_time)
	ORDER BY call_date`,

	TechnicianVisits: `SELECT v.visit_id, v.customer_id, c.name AS customer_name, c.address,
		v.technician_id, t.technician_name, v.visit_date, v.visit_status, v.visit_purpose,
		v.latitude, v.longitude, v.estimated_duration, v.notes
	FROM technician_visits v
	JOIN customers c ON c.customer_id = v.customer_id
	LEFT JOIN technicians t ON t.technician_id = v.technician_id
	WHERE v.visit_status IN ('planned', 'underway')
	ORDER BY v.visit_date ASC`,
}

func postgresQueries() Queries {
	q := databricksQueries
	for _, p := range []*string{
		&q.ListCustomers, &q.GetCustomer, &q.GetSummary, &q.NextAction,
		&q.Calls, &q.Installations, &q.Visits, &q.WebsiteVisits, &q.DigitalInteractions,
		&q.Stats, &q.TechnicianVisits,
	} {
		*p = rebind(*p)
	}
	q.HourlyTrends = `SELECT EXTRACT(HOUR FROM call_time)::int AS call_hour, COUNT(*) AS call_count
	FROM calls
	WHERE call_time >= now() - INTERVAL '24 hours'
	GROUP BY 1
	ORDER BY 1`
	q.DailyTrends = `SELECT call_time::date AS call_date, COUNT(*) AS call_count
	FROM calls
	WHERE call_time >= current_date - 30
	GROUP BY 1
	ORDER BY 1`
	return q
}

func queriesFor(dialect string) Queries {
	if dialect == warehouse.DialectPostgres {
		return postgresQueries()
	}
	return databricksQueries
}

// rebind turns positional ? markers into $1, $2, ...
func rebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
