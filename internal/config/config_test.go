package config

import (
	"errors"
	"testing"
	"time"
)

func TestValidateRequiresBaseURL(t *testing.T) {
	cfg := Config{EncryptionKey: "k"}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}

	cfg.APIBaseURL = "http://localhost:8080"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HTTP_TIMEOUT", "")
	Load()

	if AppEnv.Port == "" {
		t.Fatal("expected a default port")
	}
	if AppEnv.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", AppEnv.HTTPTimeout)
	}
}
