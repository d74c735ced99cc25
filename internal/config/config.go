package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Audit sinks
const (
	AuditSinkLog   = "log"
	AuditSinkRedis = "redis"
	AuditSinkNone  = "none"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Sync configuration
	SyncTimeoutSec         int  `mapstructure:"SYNC_TIMEOUT_SEC"`
	SyncEnforceBaseVersion bool `mapstructure:"SYNC_ENFORCE_BASE_VERSION"`

	// Audit configuration
	AuditSink       string `mapstructure:"AUDIT_SINK"`
	AuditTimeoutSec int    `mapstructure:"AUDIT_TIMEOUT_SEC"`
	AuditStream     string `mapstructure:"AUDIT_STREAM"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int    `mapstructure:"REDIS_DB"`

	// Metrics configuration
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "project_planner")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Sync defaults
	viper.SetDefault("SYNC_TIMEOUT_SEC", 60)
	viper.SetDefault("SYNC_ENFORCE_BASE_VERSION", false)

	// Audit defaults
	viper.SetDefault("AUDIT_SINK", AuditSinkLog)
	viper.SetDefault("AUDIT_TIMEOUT_SEC", 5)
	viper.SetDefault("AUDIT_STREAM", "planner:audit")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Metrics defaults
	viper.SetDefault("METRICS_ENABLED", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SyncTimeoutSec <= 0 {
		return fmt.Errorf("SYNC_TIMEOUT_SEC must be positive")
	}

	switch config.AuditSink {
	case AuditSinkLog, AuditSinkNone:
	case AuditSinkRedis:
		if config.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when AUDIT_SINK=redis")
		}
	default:
		return fmt.Errorf("unknown AUDIT_SINK %q (want log, redis or none)", config.AuditSink)
	}

	return nil
}

// SyncTimeout returns the deadline for one change-set transaction
func (c *Config) SyncTimeout() time.Duration {
	return time.Duration(c.SyncTimeoutSec) * time.Second
}

// AuditTimeout returns the deadline for one audit write
func (c *Config) AuditTimeout() time.Duration {
	if c.AuditTimeoutSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.AuditTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
