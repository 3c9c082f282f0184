package config_test

import (
	"testing"

	"github.com/JaimeStill/loom/internal/config"
)

// setRequiredEnv provides the values config validation demands when no
// config.toml is present in the working directory.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("LOOM_DB_NAME", "loom")
	t.Setenv("LOOM_DB_USER", "loom")
	t.Setenv("LOOM_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.MaxUploadSizeBytes() != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 50MB", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.Generation.PulseLimit != 50 {
		t.Errorf("PulseLimit = %d, want 50", cfg.Generation.PulseLimit)
	}
	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOOM_SERVER_PORT", "9090")
	t.Setenv("LOOM_DB_NAME", "loom_test")
	t.Setenv("LOOM_GENERATION_PULSE_LIMIT", "25")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "loom_test" {
		t.Errorf("Database.Name = %q, want loom_test", cfg.Database.Name)
	}
	if cfg.Generation.PulseLimit != 25 {
		t.Errorf("PulseLimit = %d, want 25", cfg.Generation.PulseLimit)
	}
}

func TestEnvDefault(t *testing.T) {
	cfg := &config.Config{}
	if env := cfg.Env(); env != "local" {
		t.Errorf("Env() = %q, want local", env)
	}

	t.Setenv("LOOM_ENV", "production")
	if env := cfg.Env(); env != "production" {
		t.Errorf("Env() = %q, want production", env)
	}
}

func TestMergeOverlay(t *testing.T) {
	base := &config.Config{
		Version:         "0.1.0",
		ShutdownTimeout: "30s",
	}
	base.Server.Port = 8080
	base.API.BasePath = "/api"

	overlay := &config.Config{Version: "0.2.0"}
	overlay.Server.Port = 9000

	base.Merge(overlay)

	if base.Version != "0.2.0" {
		t.Errorf("Version = %q, want 0.2.0", base.Version)
	}
	if base.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", base.Server.Port)
	}
	if base.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, overlay should not clear it", base.ShutdownTimeout)
	}
	if base.API.BasePath != "/api" {
		t.Errorf("BasePath = %q, overlay should not clear it", base.API.BasePath)
	}
}
