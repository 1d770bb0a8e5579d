package service

import (
	"context"
	"slices"
	"strings"

	"github.com/customer-journey/backend/internal/fixtures"
	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/warehouse"
)

var priorityRank = map[string]int{
	"high":   1,
	"medium": 2,
	"low":    3,
}

func (s *Service) ListCustomers(ctx context.Context, token string) ([]models.Customer, error) {
	var out []models.Customer
	ok, err := s.live(ctx, token, "list_customers", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.ListCustomers)
		if err != nil {
			return err
		}
		out = make([]models.Customer, 0, len(rows))
		for _, r := range rows {
			out = append(out, customerFromRow(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		out = slices.Clone(s.fixtures.Customers)
	}
	slices.SortStableFunc(out, func(a, b models.Customer) int {
		return strings.Compare(a.CustomerID, b.CustomerID)
	})
	return nonNil(out), nil
}

func (s *Service) GetCustomer(ctx context.Context, token, customerID string) (models.Customer, error) {
	var (
		out   models.Customer
		found bool
	)
	ok, err := s.live(ctx, token, "get_customer", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.GetCustomer, customerID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			out, found = customerFromRow(rows[0]), true
		}
		return nil
	})
	if err != nil {
		return models.Customer{}, err
	}
	if !ok {
		out, found = s.fixtures.Customer(customerID)
		if found {
			generated := warehouse.FormatTime(s.now())
			out.SummaryGeneratedAt = &generated
		}
	}
	if !found {
		return models.Customer{}, ErrNotFound
	}
	return out, nil
}

func (s *Service) GetCustomerSummary(ctx context.Context, token, customerID string) (models.CustomerSummary, error) {
	var (
		out   models.CustomerSummary
		found bool
	)
	ok, err := s.live(ctx, token, "get_customer_summary", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.GetSummary, customerID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			found = true
			out = models.CustomerSummary{
				SummaryText:  getString(rows[0], "summary_text"),
				GeneratedAt:  getString(rows[0], "generated_at"),
				ModelVersion: getString(rows[0], "model_version"),
			}
		}
		return nil
	})
	if err != nil {
		return models.CustomerSummary{}, err
	}
	if !ok {
		var c models.Customer
		if c, found = s.fixtures.Customer(customerID); found {
			out = models.CustomerSummary{
				SummaryText:  c.AISummary,
				GeneratedAt:  warehouse.FormatTime(s.now()),
				ModelVersion: fixtures.SummaryModelVersion,
			}
		}
	}
	if !found {
		return models.CustomerSummary{}, ErrNotFound
	}
	return out, nil
}

// GetNextBestAction returns nil without an error when no action qualifies.
func (s *Service) GetNextBestAction(ctx context.Context, token, customerID string) (*models.NextBestAction, error) {
	var candidates []models.NextBestAction
	ok, err := s.live(ctx, token, "get_next_best_action", func(ctx context.Context, conn warehouse.Conn) error {
		rows, err := s.query(ctx, conn, s.queries.NextAction, customerID)
		if err != nil {
			return err
		}
		for _, r := range rows {
			candidates = append(candidates, models.NextBestAction{
				CustomerID:        getString(r, "customer_id"),
				ActionType:        getString(r, "action_type"),
				ActionDescription: getString(r, "action_description"),
				Priority:          getString(r, "priority"),
				RecommendedDate:   getString(r, "recommended_date"),
				Status:            getString(r, "status"),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		candidates = s.fixtures.Candidates(customerID)
	}
	return selectNextAction(candidates), nil
}

// selectNextAction picks the pending or in-progress candidate with the best
// priority, breaking ties by the earliest recommended date.
func selectNextAction(candidates []models.NextBestAction) *models.NextBestAction {
	var best *models.NextBestAction
	for i := range candidates {
		c := &candidates[i]
		if c.Status != "pending" && c.Status != "in_progress" {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		cr, br := rankOf(c.Priority), rankOf(best.Priority)
		if cr < br || (cr == br && c.RecommendedDate < best.RecommendedDate) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

func rankOf(priority string) int {
	if r, ok := priorityRank[strings.ToLower(priority)]; ok {
		return r
	}
	return len(priorityRank) + 1
}

func customerFromRow(r warehouse.Row) models.Customer {
	c := models.Customer{
		CustomerID:   getString(r, "customer_id"),
		Name:         getString(r, "name"),
		Email:        getString(r, "email"),
		Phone:        getString(r, "phone"),
		Status:       getString(r, "status"),
		MainCategory: getString(r, "main_category"),
		AISummary:    getString(r, "ai_summary"),
		UpdatedAt:    getString(r, "updated_at"),
	}
	if generated := getString(r, "summary_generated_at"); generated != "" {
		c.SummaryGeneratedAt = &generated
	}
	return c
}
