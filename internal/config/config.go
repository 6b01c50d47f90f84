// Package config loads the console configuration from configs/.env and the process environment.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/listing"
)

const (
	DefaultEnvFile = "configs/.env"
	ReleaseMode    = "release"

	devJWTSecret = "default_super_secret_key"
)

type APIOptions struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

type ListOptions struct {
	PageSize         int    `env:"PAGE_SIZE" envDefault:"10"`
	BatchConcurrency int    `env:"BATCH_CONCURRENCY" envDefault:"8"`
	SelectionScope   string `env:"SELECTION_SCOPE" envDefault:"page"`
	DeriveCacheSize  int    `env:"DERIVE_CACHE_SIZE" envDefault:"64"`
	ExportDateLayout string `env:"EXPORT_DATE_LAYOUT" envDefault:"2006-01-02"`
}

type SessionOptions struct {
	TTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions int           `env:"MAX_SESSIONS" envDefault:"256"`
}

type Config struct {
	API     APIOptions
	List    ListOptions
	Session SessionOptions

	Port               string   `env:"PORT" envDefault:"8081"`
	GinMode            string   `env:"GIN_MODE" envDefault:"debug"`
	JWTSecret          string   `env:"JWT_SECRET"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173,http://localhost:5174"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string   `env:"LOG_FORMAT" envDefault:"text"`

	// Scope is SelectionScope parsed during validation.
	Scope listing.Scope `env:"-"`
}

// Load reads the given env files (configs/.env when none are named), then parses the
// environment. A missing env file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrap(err, "load env files")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Release() bool { return c.GinMode == ReleaseMode }

// Validate checks the parsed values and fills in derived fields.
func (c *Config) Validate() error {
	switch c.GinMode {
	case "debug", ReleaseMode, "test":
	default:
		return errors.Errorf("GIN_MODE must be 'debug', 'release' or 'test', got '%s'", c.GinMode)
	}
	if c.JWTSecret == "" {
		if c.Release() {
			return errors.New("JWT_SECRET is required in release mode")
		}
		c.JWTSecret = devJWTSecret
	}
	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}
	if c.API.Timeout <= 0 {
		return errors.Errorf("API_TIMEOUT must be positive, got %s", c.API.Timeout)
	}
	if c.List.PageSize < 1 {
		return errors.Errorf("PAGE_SIZE must be at least 1, got %d", c.List.PageSize)
	}
	if c.List.BatchConcurrency < 1 {
		return errors.Errorf("BATCH_CONCURRENCY must be at least 1, got %d", c.List.BatchConcurrency)
	}
	if c.List.DeriveCacheSize < 1 {
		return errors.Errorf("DERIVE_CACHE_SIZE must be at least 1, got %d", c.List.DeriveCacheSize)
	}
	if c.Session.MaxSessions < 1 {
		return errors.Errorf("MAX_SESSIONS must be at least 1, got %d", c.Session.MaxSessions)
	}
	if c.Session.TTL <= 0 {
		return errors.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	scope, err := listing.ParseScope(c.List.SelectionScope)
	if err != nil {
		return errors.Wrap(err, "SELECTION_SCOPE")
	}
	c.Scope = scope
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "LOG_LEVEL")
	}
	return nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
