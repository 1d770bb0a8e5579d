package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABRICKS_SERVER_HOSTNAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.WarehouseWorkers != 5 {
		t.Fatalf("expected 5 warehouse workers, got %d", cfg.WarehouseWorkers)
	}
	if cfg.WarehouseDriver != "databricks" {
		t.Fatalf("expected databricks driver, got %s", cfg.WarehouseDriver)
	}
	if cfg.DatabricksPort != 443 || cfg.DatabricksCatalog != "main" || cfg.DatabricksSchema != "customer_journey" {
		t.Fatalf("unexpected databricks defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WAREHOUSE_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for unknown driver")
	}
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WAREHOUSE_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for zero workers")
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowed: " http://a.test , http://b.test,"}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", got)
	}
	if (Config{CORSAllowed: "*"}).AllowedOrigins() != nil {
		t.Fatalf("expected nil origins for wildcard")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
