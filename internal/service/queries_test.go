package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/customer-journey/backend/internal/warehouse"
)

func TestRebind(t *testing.T) {
	got := rebind("SELECT 1 FROM t WHERE a = ? AND b = ?")
	if got != "SELECT 1 FROM t WHERE a = $1 AND b = $2" {
		t.Fatalf("unexpected rebind: %s", got)
	}
}

func TestQueriesBindCustomerID(t *testing.T) {
	for _, dialect := range []string{warehouse.DialectDatabricks, warehouse.DialectPostgres} {
		q := queriesFor(dialect)
		v := reflect.ValueOf(q)
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Name
			sql := v.Field(i).String()
			if sql == "" {
				t.Fatalf("%s/%s: empty template", dialect, name)
			}
			if dialect == warehouse.DialectPostgres && strings.Contains(sql, "?") {
				t.Fatalf("%s/%s: unbound ? marker left", dialect, name)
			}
			if strings.Count(sql, "?")+strings.Count(sql, "$1") > 1 {
				t.Fatalf("%s/%s: more than one placeholder", dialect, name)
			}
		}
		if dialect == warehouse.DialectPostgres && !strings.Contains(q.GetCustomer, "c.customer_id = $1") {
			t.Fatalf("postgres GetCustomer not rebound: %s", q.GetCustomer)
		}
	}
}
