package models

// Customer statuses used for triage.
const (
	StatusLow    = "low"
	StatusNormal = "normal"
	StatusUrgent = "urgent"
)

// Journey event kinds.
const (
	EventCall         = "call"
	EventInstallation = "installation"
	EventVisit        = "visit"
	EventWebsite      = "website"
	EventDigital      = "digital"
)

type Customer struct {
	CustomerID         string  `json:"customer_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Status             string  `json:"status"`
	MainCategory       string  `json:"main_category"`
	AISummary          string  `json:"ai_summary"`
	UpdatedAt          string  `json:"updated_at"`
	SummaryGeneratedAt *string `json:"summary_generated_at,omitempty"`
}

type CustomerSummary struct {
	SummaryText  string `json:"summary_text"`
	GeneratedAt  string `json:"generated_at"`
	ModelVersion string `json:"model_version"`
}

type NextBestAction struct {
	CustomerID        string `json:"customer_id,omitempty"`
	ActionType        string `json:"action_type"`
	ActionDescription string `json:"action_description"`
	Priority          string `json:"priority"`
	RecommendedDate   string `json:"recommended_date"`
	Status            string `json:"status"`
}

// JourneyEvent is one entry of the merged timeline. Kind specific fields are
// omitted when the event kind does not carry them.
type JourneyEvent struct {
	EventType   string `json:"event_type"`
	EventID     string `json:"event_id"`
	EventTitle  string `json:"event_title"`
	EventTime   string `json:"event_time"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Color       string `json:"color"`
	Shape       string `json:"shape"`

	CallDuration   *int64 `json:"call_duration,omitempty"`
	CallType       string `json:"call_type,omitempty"`
	ProductName    string `json:"product_name,omitempty"`
	VisitPurpose   string `json:"visit_purpose,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
	PageURL        string `json:"page_url,omitempty"`
	Channel        string `json:"channel,omitempty"`
	Sentiment      string `json:"sentiment,omitempty"`
}

type DashboardStats struct {
	OpenCalls       int64 `json:"open_calls"`
	LowCustomers    int64 `json:"low_customers"`
	NormalCustomers int64 `json:"normal_customers"`
	UrgentCustomers int64 `json:"urgent_customers"`
}

type HourlyTrend struct {
	Hour      int   `json:"hour"`
	CallCount int64 `json:"call_count"`
}

type DailyTrend struct {
	Date      string `json:"date"`
	CallCount int64  `json:"call_count"`
}

type TechnicianVisit struct {
	VisitID           string   `json:"visit_id"`
	CustomerID        string   `json:"customer_id"`
	CustomerName      string   `json:"customer_name"`
	Address           string   `json:"address"`
	TechnicianID      string   `json:"technician_id"`
	TechnicianName    string   `json:"technician_name"`
	VisitDate         string   `json:"visit_date"`
	VisitStatus       string   `json:"visit_status"`
	VisitPurpose      string   `json:"visit_purpose"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	EstimatedDuration int64    `json:"estimated_duration"`
	Notes             string   `json:"notes,omitempty"`
}
