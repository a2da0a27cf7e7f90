// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Feed      FeedConfig      `yaml:"feed"`
	Session   SessionConfig   `yaml:"session"`
	Alerts    AlertsConfig    `yaml:"alerts"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Auth      AuthConfig      `yaml:"auth"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the session state backend. When URL is empty the
// server falls back to the in-memory store (single replica only).
type RedisConfig struct {
	URL string `yaml:"url"`
}

// FeedConfig defines the affiliate product feed settings.
type FeedConfig struct {
	BaseURL          string          `yaml:"base_url"`
	APIKey           string          `yaml:"api_key"`
	Source           string          `yaml:"source"`
	PageSize         int             `yaml:"page_size"`
	MaxPagesPerCycle int             `yaml:"max_pages_per_cycle"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines feed API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SessionConfig defines session state retention.
type SessionConfig struct {
	TTL                time.Duration `yaml:"ttl"`
	RecentlyViewedSize int           `yaml:"recently_viewed_size"`
	RecentSearchesSize int           `yaml:"recent_searches_size"`
}

// AlertsConfig defines price alert behavior.
type AlertsConfig struct {
	Cooldown   time.Duration `yaml:"cooldown"`
	WebhookURL string        `yaml:"webhook_url"`
}

// ScheduleConfig defines cron intervals for background jobs.
type ScheduleConfig struct {
	IngestionInterval time.Duration `yaml:"ingestion_interval"`
	RescoreInterval   time.Duration `yaml:"rescore_interval"`
}

// AuthConfig defines admin API authentication.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// TelemetryConfig defines OpenTelemetry trace export settings. Tracing is
// disabled when the endpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyFeedDefaults(&cfg.Feed)
	applySessionDefaults(&cfg.Session)
	applyAlertsDefaults(&cfg.Alerts)
	applyScheduleDefaults(&cfg.Schedule)
	applyAuthDefaults(&cfg.Auth)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyFeedDefaults(f *FeedConfig) {
	if f.Source == "" {
		f.Source = "default"
	}
	if f.PageSize == 0 {
		f.PageSize = 100
	}
	if f.MaxPagesPerCycle == 0 {
		f.MaxPagesPerCycle = 20
	}
	applyRateLimitDefaults(&f.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applySessionDefaults(s *SessionConfig) {
	if s.TTL == 0 {
		s.TTL = 30 * 24 * time.Hour
	}
	if s.RecentlyViewedSize == 0 {
		s.RecentlyViewedSize = 10
	}
	if s.RecentSearchesSize == 0 {
		s.RecentSearchesSize = 5
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.Cooldown == 0 {
		a.Cooldown = 24 * time.Hour
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.IngestionInterval == 0 {
		s.IngestionInterval = time.Hour
	}
	if s.RescoreInterval == 0 {
		s.RescoreInterval = 6 * time.Hour
	}
}

func applyAuthDefaults(a *AuthConfig) {
	if a.TokenTTL == 0 {
		a.TokenTTL = 12 * time.Hour
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "souqly"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Feed.BaseURL == "" {
		errs = append(errs, fmt.Errorf("feed.base_url is required"))
	}

	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required"))
	}

	return errors.Join(errs...)
}
