package config

import (
	"testing"
	"time"

	"log/slog"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT",
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT_SECONDS",
		"SERVER_WRITE_TIMEOUT_SECONDS",
		"SERVER_SHUTDOWN_TIMEOUT_SECONDS",
		"FEED_REFRESH_SECONDS",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"DATABASE_URL",
		"DATA_DIR",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != defaultPort {
		t.Errorf("expected default port %q, got %q", defaultPort, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("expected default read timeout %v, got %v", defaultReadTimeout, cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != defaultWriteTimeout {
		t.Errorf("expected default write timeout %v, got %v", defaultWriteTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != slog.LevelInfo {
		t.Errorf("expected default log level %v, got %v", slog.LevelInfo, cfg.Logging.Level)
	}
	if cfg.Logging.Format != defaultLogFormat {
		t.Errorf("expected default log format %q, got %q", defaultLogFormat, cfg.Logging.Format)
	}
	if cfg.Feed.RefreshInterval != defaultFeedRefreshInterval {
		t.Errorf("expected default feed refresh %v, got %v", defaultFeedRefreshInterval, cfg.Feed.RefreshInterval)
	}
	if cfg.Data.Dir != defaultDataDir {
		t.Errorf("expected default data dir %q, got %q", defaultDataDir, cfg.Data.Dir)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected empty database URL, got %q", cfg.Database.URL)
	}
	if cfg.OpenAI.Model != defaultOpenAIModel {
		t.Errorf("expected default OpenAI model %q, got %q", defaultOpenAIModel, cfg.OpenAI.Model)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	clearConfigEnv(t)

	overrides := map[string]string{
		"SERVER_PORT":                     "9090",
		"SERVER_READ_TIMEOUT_SECONDS":     "30",
		"SERVER_WRITE_TIMEOUT_SECONDS":    "45",
		"SERVER_SHUTDOWN_TIMEOUT_SECONDS": "15",
		"FEED_REFRESH_SECONDS":            "60",
		"LOG_LEVEL":                       "debug",
		"LOG_FORMAT":                      "text",
		"DATABASE_URL":                    "postgres://localhost/cerberus",
		"DATA_DIR":                        "/var/lib/cerberus/data",
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected overridden port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 45*time.Second {
		t.Errorf("expected write timeout 45s, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected shutdown timeout 15s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Feed.RefreshInterval != time.Minute {
		t.Errorf("expected feed refresh 60s, got %v", cfg.Feed.RefreshInterval)
	}
	if cfg.Logging.Level != slog.LevelDebug {
		t.Errorf("expected log level debug, got %v", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format text, got %q", cfg.Logging.Format)
	}
	if cfg.Database.URL != "postgres://localhost/cerberus" {
		t.Errorf("unexpected database URL %q", cfg.Database.URL)
	}
	if cfg.Data.Dir != "/var/lib/cerberus/data" {
		t.Errorf("unexpected data dir %q", cfg.Data.Dir)
	}
}

func TestLoadPortFallback(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("PORT should take precedence, got %q", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative timeout", "SERVER_READ_TIMEOUT_SECONDS", "-5"},
		{"non-numeric timeout", "SERVER_WRITE_TIMEOUT_SECONDS", "abc"},
		{"zero feed refresh", "FEED_REFRESH_SECONDS", "0"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
