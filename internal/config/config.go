package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultCORSOrigins is used when CORS_ORIGIN is not set.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port       string `env:"PORT,default=3001"`
	LogLevel   string `env:"LOG_LEVEL,default=info"`
	CORSOrigin string `env:"CORS_ORIGIN"`

	// Optional infrastructure. Empty disables the integration.
	DatabaseURL string `env:"DATABASE_URL"`
	RabbitMQURL string `env:"RABBITMQ_URL"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE,default=10"`

	SMTP SMTPConfig
}

// SMTPConfig is the process-wide transport configuration. It is read-only
// once Load returns.
type SMTPConfig struct {
	Host          string `env:"SMTP_HOST"`
	Port          int    `env:"SMTP_PORT,default=587"`
	User          string `env:"SMTP_USER"`
	Password      string `env:"SMTP_PASS"`
	From          string `env:"SMTP_FROM"`
	Recipient     string `env:"RECIPIENT_EMAIL"`
	TLSSkipVerify bool   `env:"SMTP_TLS_SKIP_VERIFY,default=false"`
}

// to help with testing
var envProcess = envconfig.ProcessWith

// Load reads the dotenv file (ENV_PATH, default ".env") and decodes the
// environment. A missing dotenv file is not an error.
func Load(ctx context.Context) (*Config, error) {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envPath, err)
		}
		slog.Debug("env file not found, using process environment", "path", envPath)
	}

	return FromLookuper(ctx, envconfig.OsLookuper())
}

// FromLookuper decodes and validates the configuration from l.
func FromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envProcess(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.SMTP.Recipient == "" {
		cfg.SMTP.Recipient = cfg.SMTP.From
	}
	return &cfg, nil
}

// MissingError lists every required key that was absent.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Keys, ", ")
}

// Validate fails when any SMTP credential is absent or a numeric setting is
// out of range.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key, value string
	}{
		{"SMTP_HOST", c.SMTP.Host},
		{"SMTP_USER", c.SMTP.User},
		{"SMTP_PASS", c.SMTP.Password},
		{"SMTP_FROM", c.SMTP.From},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}

	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", c.SMTP.Port)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be non-negative")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGIN on commas, trimming blanks.
func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSOrigin) == "" {
		return DefaultCORSOrigins
	}

	var origins []string
	for _, o := range strings.Split(c.CORSOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
