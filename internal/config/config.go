package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Extraction ExtractionConfig `yaml:"extraction"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"150s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"20971520"`
	UploadDir       string        `yaml:"upload_dir"       env:"SERVER_UPLOAD_DIR"`
}

// GeminiConfig holds the Gemini API settings. A missing APIKey is not a load
// error: every extraction then fails with a configuration outcome.
type GeminiConfig struct {
	APIKey     string `yaml:"api_key"     env:"GEMINI_API_KEY"`
	Model      string `yaml:"model"       env:"GEMINI_MODEL"       env-default:"gemini-2.5-flash"`
	BaseURL    string `yaml:"base_url"    env:"GEMINI_BASE_URL"    env-default:"https://generativelanguage.googleapis.com"`
	APIVersion string `yaml:"api_version" env:"GEMINI_API_VERSION" env-default:"v1"`
}

// ExtractionConfig holds retry tuning and the optional connectivity probe.
type ExtractionConfig struct {
	MaxAttempts       int           `yaml:"max_attempts"       env:"EXTRACTION_MAX_ATTEMPTS"       env-default:"3"`
	AttemptTimeout    time.Duration `yaml:"attempt_timeout"    env:"EXTRACTION_ATTEMPT_TIMEOUT"    env-default:"30s"`
	BackoffBase       time.Duration `yaml:"backoff_base"       env:"EXTRACTION_BACKOFF_BASE"       env-default:"2s"`
	ConnectivityProbe bool          `yaml:"connectivity_probe" env:"EXTRACTION_CONNECTIVITY_PROBE" env-default:"false"`
	ProbeAddress      string        `yaml:"probe_address"      env:"EXTRACTION_PROBE_ADDRESS"      env-default:"generativelanguage.googleapis.com:443"`
	ProbeTimeout      time.Duration `yaml:"probe_timeout"      env:"EXTRACTION_PROBE_TIMEOUT"      env-default:"3s"`
}

// RateLimitConfig holds per-IP limits of the HTTP surface. Zero disables the limit.
type RateLimitConfig struct {
	ExtractPerMinute int           `yaml:"extract_per_minute" env:"RATE_LIMIT_EXTRACT_PER_MINUTE" env-default:"10"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// CORSConfig holds CORS settings for browser clients. An empty
// AllowedOrigins disables CORS handling.
type CORSConfig struct {
	AllowedOrigins string        `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string        `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string        `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         time.Duration `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// HasAPIKey reports whether a Gemini API key is configured.
func (g GeminiConfig) HasAPIKey() bool {
	return g.APIKey != ""
}
