package app

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent here.
	t.Setenv("PORT", "")
	t.Setenv("ORIGIN", "")
	os.Unsetenv("PORT")
	os.Unsetenv("ORIGIN")

	cfg := LoadConfig(nil)
	if cfg.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.AllowOrigin != "http://127.0.0.1" {
		t.Fatalf("expected default origin, got %q", cfg.AllowOrigin)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ORIGIN", "https://rentals.example.com")

	cfg := LoadConfig(nil)
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.AllowOrigin != "https://rentals.example.com" {
		t.Fatalf("expected origin override, got %q", cfg.AllowOrigin)
	}
}

func TestLoadConfigRejectsNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig(nil)
	if cfg.Port != 3000 {
		t.Fatalf("expected fallback to default port, got %d", cfg.Port)
	}
}
