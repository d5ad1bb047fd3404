package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr())
	}
	if cfg.UsesPostgres() {
		t.Fatalf("expected memory store by default")
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: %v / %v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.AppName != "clinicals" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/clinicals")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if !cfg.UsesPostgres() {
		t.Fatalf("expected postgres when DB_DSN is set")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %q", cfg.LogFormat)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("expected 30s write timeout, got %v", cfg.WriteTimeout)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicals.yaml")
	if err := os.WriteFile(path, []byte("PORT: \"7070\"\nLOG_LEVEL: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "7070" || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %#v", cfg)
	}
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "http")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
