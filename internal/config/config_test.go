package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all SOUNDINGS_ env vars to test pure defaults
	envVars := []string{
		"SOUNDINGS_PORT", "SOUNDINGS_METRICS_PORT", "SOUNDINGS_API_KEYS",
		"SOUNDINGS_RATE_LIMIT_PER_MINUTE", "SOUNDINGS_DATABASE_URL",
		"SOUNDINGS_NATS_URL", "SOUNDINGS_LONG_WORD_THRESHOLD",
		"SOUNDINGS_MIN_CAPS_WORD_LENGTH", "SOUNDINGS_INFERENCE_ENABLED",
		"SOUNDINGS_HISTORY_MAX_PER_USER", "SOUNDINGS_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if len(cfg.Server.APIKeys) != 0 {
		t.Errorf("expected no API keys by default, got %v", cfg.Server.APIKeys)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected empty database URL, got %s", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Extractor.LongWordThreshold != 6 {
		t.Errorf("expected long word threshold 6, got %d", cfg.Extractor.LongWordThreshold)
	}
	if cfg.Extractor.MinCapsWordLength != 2 {
		t.Errorf("expected min caps length 2, got %d", cfg.Extractor.MinCapsWordLength)
	}
	if !cfg.Inference.Enabled {
		t.Error("expected inference enabled by default")
	}
	if cfg.History.MaxPerUser != 100 {
		t.Errorf("expected history max 100, got %d", cfg.History.MaxPerUser)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SOUNDINGS_PORT", "9100")
	t.Setenv("SOUNDINGS_METRICS_PORT", "9101")
	t.Setenv("SOUNDINGS_API_KEYS", "key-a, key-b,,key-c")
	t.Setenv("SOUNDINGS_RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("SOUNDINGS_DATABASE_URL", "postgres://localhost/soundings_test")
	t.Setenv("SOUNDINGS_NATS_URL", "nats://nats:4222")
	t.Setenv("SOUNDINGS_LONG_WORD_THRESHOLD", "8")
	t.Setenv("SOUNDINGS_MIN_CAPS_WORD_LENGTH", "3")
	t.Setenv("SOUNDINGS_INFERENCE_ENABLED", "false")
	t.Setenv("SOUNDINGS_HISTORY_MAX_PER_USER", "50")
	t.Setenv("SOUNDINGS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	wantKeys := []string{"key-a", "key-b", "key-c"}
	if len(cfg.Server.APIKeys) != len(wantKeys) {
		t.Fatalf("expected %d API keys, got %v", len(wantKeys), cfg.Server.APIKeys)
	}
	for i, k := range wantKeys {
		if cfg.Server.APIKeys[i] != k {
			t.Errorf("API key %d: expected %q, got %q", i, k, cfg.Server.APIKeys[i])
		}
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Database.URL != "postgres://localhost/soundings_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected nats URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Extractor.LongWordThreshold != 8 {
		t.Errorf("expected long word threshold 8, got %d", cfg.Extractor.LongWordThreshold)
	}
	if cfg.Extractor.MinCapsWordLength != 3 {
		t.Errorf("expected min caps length 3, got %d", cfg.Extractor.MinCapsWordLength)
	}
	if cfg.Inference.Enabled {
		t.Error("expected inference disabled")
	}
	if cfg.History.MaxPerUser != 50 {
		t.Errorf("expected history max 50, got %d", cfg.History.MaxPerUser)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	for _, k := range []string{"SOUNDINGS_PORT", "SOUNDINGS_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9200
  api_keys: ["file-key"]
extractor:
  long_word_threshold: 7
logging:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200, got %d", cfg.Server.Port)
	}
	if len(cfg.Server.APIKeys) != 1 || cfg.Server.APIKeys[0] != "file-key" {
		t.Errorf("expected [file-key], got %v", cfg.Server.APIKeys)
	}
	if cfg.Extractor.LongWordThreshold != 7 {
		t.Errorf("expected long word threshold 7, got %d", cfg.Extractor.LongWordThreshold)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got '%s'", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
	if !cfg.Inference.Enabled {
		t.Error("expected inference enabled by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SOUNDINGS_PORT", "9300")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9300 {
		t.Errorf("env should override file: got %d", cfg.Server.Port)
	}
}
