package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_JSON", "MAX_INPUT_CELLS", "MATHML_CONFIG", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8093" {
		t.Errorf("Port = %q, want 8093", cfg.Port)
	}
	if cfg.LogLevel != "info" || !cfg.LogJSON {
		t.Errorf("unexpected logging defaults: %q %v", cfg.LogLevel, cfg.LogJSON)
	}
	if cfg.MaxInputCells != 4096 {
		t.Errorf("MaxInputCells = %d, want 4096", cfg.MaxInputCells)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_JSON", "false")
	t.Setenv("MAX_INPUT_CELLS", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "bogus")
	cfg := Load()
	if cfg.Port != "9000" || cfg.LogJSON {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxInputCells != 0 {
		t.Errorf("zero should disable the input limit, got %d", cfg.MaxInputCells)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unparseable duration should fall back, got %v", cfg.ShutdownTimeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: "http"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}
	cfg = Config{Port: "8093", MathMLConfig: "/nonexistent/mathml.yaml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing MATHML_CONFIG file")
	}
}
