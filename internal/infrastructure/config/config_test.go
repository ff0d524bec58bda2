package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" || cfg.InvoiceDueDays != 30 || cfg.NotificationTransport != NotificationTransportHTTP {
			t.Fatalf("unexpected defaults %+v", cfg)
		}
		if cfg.HTTPClientTimeout != 5*time.Second {
			t.Fatalf("expected 5s client timeout, got %s", cfg.HTTPClientTimeout)
		}
		if cfg.InvoicesTable != "invoices" || cfg.CountersTable != "billing_counters" {
			t.Fatalf("unexpected table names %+v", cfg)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("AUTH_DISABLED", "true")
		t.Setenv("INVOICE_DUE_DAYS", "15")
		t.Setenv("NOTIFICATION_TRANSPORT", "NONE")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.AuthDisabled || cfg.InvoiceDueDays != 15 || cfg.NotificationTransport != NotificationTransportNone {
			t.Fatalf("unexpected config %+v", cfg)
		}
	})

	t.Run("reads .env from the working directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-file\nPORT=9090\n"), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		chdir(t, dir)
		t.Setenv("JWT_SECRET", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" || cfg.JWTSecret != "from-file" {
			t.Fatalf("expected values from .env, got %+v", cfg)
		}
	})

	t.Run("malformed .env fails", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=secret\nthis line has no separator\n"), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		chdir(t, dir)

		if _, err := Load(); err == nil {
			t.Fatalf("expected an error for a malformed .env")
		}
	})

	t.Run("missing .env is fine", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("JWT_SECRET", "secret")

		if _, err := Load(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{NotificationTransport: "http", JWTSecret: "s"}},
		{name: "auth disabled without secret", cfg: Config{NotificationTransport: "none", AuthDisabled: true}},
		{name: "missing secret", cfg: Config{NotificationTransport: "http"}, wantErr: true},
		{name: "unknown transport", cfg: Config{NotificationTransport: "smtp", JWTSecret: "s"}, wantErr: true},
		{name: "amqp without url", cfg: Config{NotificationTransport: "amqp", JWTSecret: "s"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
