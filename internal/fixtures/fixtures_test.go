package fixtures

import (
	"testing"
	"time"
)

func TestDefaultCustomersUnique(t *testing.T) {
	s := Default(time.Now())
	seen := map[string]bool{}
	for _, c := range s.Customers {
		if seen[c.CustomerID] {
			t.Fatalf("duplicate customer id %s", c.CustomerID)
		}
		seen[c.CustomerID] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 customers, got %d", len(seen))
	}
}

func TestCustomerLookup(t *testing.T) {
	s := Default(time.Now())
	c, ok := s.Customer("CUST001")
	if !ok || c.Status != "normal" || c.MainCategory != "refrigerator" {
		t.Fatalf("unexpected CUST001: %+v", c)
	}
	if _, ok := s.Customer("NOPE"); ok {
		t.Fatalf("expected NOPE to be missing")
	}
}

func TestDefaultTrends(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)
	s := Default(now)
	if len(s.Hourly) != 24 {
		t.Fatalf("expected 24 hourly points, got %d", len(s.Hourly))
	}
	if len(s.Daily) != 30 {
		t.Fatalf("expected 30 daily points, got %d", len(s.Daily))
	}
	if s.Daily[0].Date != "2024-03-01" || s.Daily[29].Date != "2024-03-30" {
		t.Fatalf("unexpected daily window %s..%s", s.Daily[0].Date, s.Daily[29].Date)
	}
}

func TestCandidates(t *testing.T) {
	s := Default(time.Now())
	if got := s.Candidates("CUST002"); len(got) != 1 || got[0].Priority != "high" {
		t.Fatalf("unexpected candidates: %+v", got)
	}
	if got := s.Candidates("NOPE"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}
