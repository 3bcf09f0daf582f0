package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return fmt.Errorf("gemini.model must not be empty")
	}

	if err := c.Extraction.validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	if c.RateLimit.ExtractPerMinute < 0 {
		return fmt.Errorf("rate_limit.extract_per_minute must be >= 0, 0 disables (got %d)", c.RateLimit.ExtractPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (e *ExtractionConfig) validate() error {
	if e.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", e.MaxAttempts)
	}
	if e.AttemptTimeout <= 0 {
		return fmt.Errorf("attempt_timeout must be > 0 (got %s)", e.AttemptTimeout)
	}
	if e.BackoffBase <= 0 {
		return fmt.Errorf("backoff_base must be > 0 (got %s)", e.BackoffBase)
	}
	if e.ConnectivityProbe {
		if e.ProbeAddress == "" {
			return fmt.Errorf("probe_address is required when connectivity_probe is enabled")
		}
		if e.ProbeTimeout <= 0 {
			return fmt.Errorf("probe_timeout must be > 0 (got %s)", e.ProbeTimeout)
		}
	}
	return nil
}
