package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if e.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", e.AppAddr)
	}
	if e.TripCacheTTL != 5*time.Minute {
		t.Fatalf("TripCacheTTL = %v", e.TripCacheTTL)
	}
	if len(e.CORSAllowedOrigins) != 3 {
		t.Fatalf("CORSAllowedOrigins = %v", e.CORSAllowedOrigins)
	}
	if !strings.Contains(e.DSN(), "@tcp(127.0.0.1:3306)/tripmarket?") {
		t.Fatalf("unexpected DSN %q", e.DSN())
	}
}

func TestLoadEnvReleaseNeedsSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected error without JWT_SECRET in release mode")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LEADS_REQUIRE_COMPLETE_SELECTION", "true")
	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if !e.LeadsRequireCompleteSelection {
		t.Fatal("LeadsRequireCompleteSelection not parsed")
	}
}
