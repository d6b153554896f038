package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"
  max_body_bytes: 65536

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://sola.example"

rate_limit:
  enabled: true
  requests_per_minute: 30
  cleanup_interval: "2m"

cloze:
  default_language: "ja-JP"
  max_text_runes: 500
  max_batch_items: 50
  batch_workers: 4
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxBodyBytes != 65536 {
		t.Errorf("server.max_body_bytes = %d, want 65536", cfg.Server.MaxBodyBytes)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want debug/text", cfg.Log)
	}

	// CORS
	if cfg.CORS.AllowedOrigins != "https://sola.example" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedMethods != "GET,POST,OPTIONS" {
		t.Errorf("cors.allowed_methods = %q, want default", cfg.CORS.AllowedMethods)
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 30", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.CleanupInterval != 2*time.Minute {
		t.Errorf("rate_limit.cleanup_interval = %v, want 2m", cfg.RateLimit.CleanupInterval)
	}

	// Cloze
	if cfg.Cloze.MaxTextRunes != 500 {
		t.Errorf("cloze.max_text_runes = %d, want 500", cfg.Cloze.MaxTextRunes)
	}
	if cfg.Cloze.MaxBatchItems != 50 {
		t.Errorf("cloze.max_batch_items = %d, want 50", cfg.Cloze.MaxBatchItems)
	}
	if cfg.Cloze.BatchWorkers != 4 {
		t.Errorf("cloze.batch_workers = %d, want 4", cfg.Cloze.BatchWorkers)
	}

	pc := cfg.Cloze.PracticeConfig()
	if pc.DefaultLanguage != "ja" {
		t.Errorf("practice default language = %q, want ja", pc.DefaultLanguage)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CLOZE_BATCH_WORKERS", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Cloze.BatchWorkers != 16 {
		t.Errorf("cloze.batch_workers = %d, want 16 (ENV override)", cfg.Cloze.BatchWorkers)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Cloze.DefaultLanguage != "en" {
		t.Errorf("cloze.default_language = %q, want en (default)", cfg.Cloze.DefaultLanguage)
	}
	if cfg.Cloze.MaxTextRunes != 2000 {
		t.Errorf("cloze.max_text_runes = %d, want 2000 (default)", cfg.Cloze.MaxTextRunes)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate_limit.enabled should default to true")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadFrom_ExplicitPath(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "body limit zero", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "log format case insensitive", mutate: func(c *Config) { c.Log.Format = "JSON" }},
		{name: "rate limit zero when enabled", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, wantErr: true},
		{name: "rate limit zero when disabled", mutate: func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.RequestsPerMinute = 0
		}},
		{name: "cleanup interval zero", mutate: func(c *Config) { c.RateLimit.CleanupInterval = 0 }, wantErr: true},
		{name: "empty default language", mutate: func(c *Config) { c.Cloze.DefaultLanguage = "" }, wantErr: true},
		{name: "malformed default language", mutate: func(c *Config) { c.Cloze.DefaultLanguage = "english please" }, wantErr: true},
		{name: "regional default language", mutate: func(c *Config) { c.Cloze.DefaultLanguage = "pt-BR" }},
		{name: "unknown default language", mutate: func(c *Config) { c.Cloze.DefaultLanguage = "xx" }, wantErr: true},
		{name: "credentials with wildcard origin", mutate: func(c *Config) {
			c.CORS.AllowedOrigins = "https://app.example.com, *"
			c.CORS.AllowCredentials = true
		}, wantErr: true},
		{name: "credentials with explicit origins", mutate: func(c *Config) {
			c.CORS.AllowedOrigins = "https://app.example.com"
			c.CORS.AllowCredentials = true
		}},
		{name: "max text runes zero", mutate: func(c *Config) { c.Cloze.MaxTextRunes = 0 }, wantErr: true},
		{name: "max batch items negative", mutate: func(c *Config) { c.Cloze.MaxBatchItems = -1 }, wantErr: true},
		{name: "batch workers zero", mutate: func(c *Config) { c.Cloze.BatchWorkers = 0 }, wantErr: true},
		{name: "batch workers too many", mutate: func(c *Config) { c.Cloze.BatchWorkers = 1000 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080, MaxBodyBytes: 1 << 20},
		Log:    LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 120,
			CleanupInterval:   time.Minute,
		},
		Cloze: ClozeConfig{
			DefaultLanguage: "en",
			MaxTextRunes:    2000,
			MaxBatchItems:   200,
			BatchWorkers:    8,
		},
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	t.Parallel()

	c := CORSConfig{AllowedOrigins: " https://a.example.com ,, https://b.example.com "}
	if got := c.Origins(); len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("Origins() = %q", got)
	}
	if got := (CORSConfig{}).Origins(); len(got) != 0 {
		t.Errorf("empty Origins() = %q", got)
	}
}
