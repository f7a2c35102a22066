package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/baran_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("expected default JWT TTL 1h, got %v", cfg.JWTTTL)
	}
	if cfg.OTPCodeLength != 6 {
		t.Errorf("expected default OTP code length 6, got %d", cfg.OTPCodeLength)
	}
	if cfg.OTPTTL() != 5*time.Minute {
		t.Errorf("expected default OTP TTL 5m, got %v", cfg.OTPTTL())
	}
	if cfg.DefaultRole != "user" {
		t.Errorf("expected default role %q, got %q", "user", cfg.DefaultRole)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when required variables are missing")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"otp code too short", "OTP_CODE_LENGTH", "3"},
		{"otp expiry not positive", "OTP_EXPIRES_IN_MINUTES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("OTP_EXPIRES_IN_MINUTES", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.JWTTTL != 30*time.Minute {
		t.Errorf("expected JWT TTL 30m, got %v", cfg.JWTTTL)
	}
	if cfg.OTPTTL() != 10*time.Minute {
		t.Errorf("expected OTP TTL 10m, got %v", cfg.OTPTTL())
	}
}
