package config

import (
	"errors"
	"testing"
)

// cmd/sitemap runs in frontend build environments with no auth secrets; Load
// must not fail on them.
func TestLoadWithoutJWTSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.JWT.AccessSecret != "" || cfg.JWT.RefreshSecret != "" {
		t.Fatalf("secrets should be empty, got %q / %q", cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)
	}
	if cfg.Site.BaseURL == "" {
		t.Fatalf("Site.BaseURL should default")
	}
}

func TestJWTConfigValidate(t *testing.T) {
	err := JWTConfig{}.Validate()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("Validate() = %v, want missing-env error", err)
	}

	both := JWTConfig{AccessSecret: "a", RefreshSecret: "r"}
	if err := both.Validate(); err != nil {
		t.Fatalf("Validate() with both secrets = %v, want nil", err)
	}

	one := JWTConfig{AccessSecret: "a"}
	if err := one.Validate(); err == nil {
		t.Fatalf("Validate() with one secret should fail")
	}
}
