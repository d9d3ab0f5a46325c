package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Events    EventsConfig    `yaml:"events"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Inference InferenceConfig `yaml:"inference"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port               int      `yaml:"port"`
	MetricsPort        int      `yaml:"metrics_port"`
	APIKeys            []string `yaml:"api_keys"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	// URL selects the Postgres backend; empty means in-memory.
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ExtractorConfig struct {
	LongWordThreshold int `yaml:"long_word_threshold"`
	MinCapsWordLength int `yaml:"min_caps_word_length"`
}

type InferenceConfig struct {
	Enabled bool `yaml:"enabled"`
}

type HistoryConfig struct {
	MaxPerUser int `yaml:"max_per_user"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Extractor: ExtractorConfig{
			LongWordThreshold: 6,
			MinCapsWordLength: 2,
		},
		Inference: InferenceConfig{
			Enabled: true,
		},
		History: HistoryConfig{
			MaxPerUser: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SOUNDINGS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SOUNDINGS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SOUNDINGS_API_KEYS"); v != "" {
		cfg.Server.APIKeys = splitNonEmpty(v)
	}
	if v := os.Getenv("SOUNDINGS_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("SOUNDINGS_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("SOUNDINGS_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SOUNDINGS_LONG_WORD_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Extractor.LongWordThreshold = n
		}
	}
	if v := os.Getenv("SOUNDINGS_MIN_CAPS_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Extractor.MinCapsWordLength = n
		}
	}
	if v := os.Getenv("SOUNDINGS_INFERENCE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Inference.Enabled = b
		}
	}
	if v := os.Getenv("SOUNDINGS_HISTORY_MAX_PER_USER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxPerUser = n
		}
	}
	if v := os.Getenv("SOUNDINGS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func splitNonEmpty(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
