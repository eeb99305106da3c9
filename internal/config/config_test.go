package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Port != "8000" {
		t.Errorf("default port = %q, want 8000", cfg.App.Port)
	}
	if cfg.App.EmailTopic != "EMAIL_DISPATCH" {
		t.Errorf("default email topic = %q, want EMAIL_DISPATCH", cfg.App.EmailTopic)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("default SMTP port = %d, want 587", cfg.SMTP.Port)
	}
	if cfg.Mail.AdminEmail != "admin@smartmess.com" {
		t.Errorf("default admin email = %q", cfg.Mail.AdminEmail)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/smartmess")

	cfg := Load()

	if cfg.App.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.App.Port)
	}
	if cfg.SMTP.Port != 2525 {
		t.Errorf("SMTP port = %d, want 2525", cfg.SMTP.Port)
	}
	if cfg.Auth.JWTSecret != "unit-test-secret" {
		t.Errorf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Connection != "postgres://localhost/smartmess" {
		t.Errorf("db connection = %q", cfg.Database.Connection)
	}
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := getEnvAsInt("SOME_INT", 42); got != 42 {
		t.Errorf("getEnvAsInt fallback = %d, want 42", got)
	}
}
