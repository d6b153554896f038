package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.CORS.AllowCredentials && slices.Contains(c.CORS.Origins(), "*") {
		return fmt.Errorf("cors.allow_credentials cannot be combined with a wildcard origin")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 when enabled (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when enabled (got %v)", c.RateLimit.CleanupInterval)
	}

	if err := c.Cloze.validate(); err != nil {
		return fmt.Errorf("cloze: %w", err)
	}

	return nil
}

func (c *ClozeConfig) validate() error {
	lang, err := domain.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("default_language %q: %w", c.DefaultLanguage, err)
	}
	if lang == domain.LanguageUnknown {
		return fmt.Errorf("default_language %q: unknown language", c.DefaultLanguage)
	}
	if c.MaxTextRunes <= 0 {
		return fmt.Errorf("max_text_runes must be > 0 (got %d)", c.MaxTextRunes)
	}
	if c.MaxBatchItems <= 0 {
		return fmt.Errorf("max_batch_items must be > 0 (got %d)", c.MaxBatchItems)
	}
	if c.BatchWorkers <= 0 || c.BatchWorkers > 256 {
		return fmt.Errorf("batch_workers must be between 1 and 256 (got %d)", c.BatchWorkers)
	}
	return nil
}

