package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	App       AppConfig
	Scheduler SchedulerConfig
	Shifts    ShiftConfig
	SMTP      SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SchedulerConfig holds the reconciliation loop configuration.
type SchedulerConfig struct {
	// SweepInterval is the single cadence for the auto-checkout sweep.
	SweepInterval time.Duration
	// StaleReportInterval is how often prior-date open sessions are reported.
	StaleReportInterval time.Duration
	// OvertimeGrace pads the approved overtime window.
	OvertimeGrace time.Duration
	// Timezone is the fixed civil timezone all dates and cutoffs live in.
	Timezone string
}

// ShiftConfig maps shift names to "HH:MM" cutoff times. Cutoffs are business
// configuration, not constants baked into the engine.
type ShiftConfig struct {
	Cutoffs map[string]string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func Load() (*Config, error) {
	// .env is optional; deployments set real env vars directly
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "tigercookies"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8090"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Scheduler configuration
	sweepInterval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}
	staleReportInterval, err := time.ParseDuration(getEnv("STALE_REPORT_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STALE_REPORT_INTERVAL: %w", err)
	}
	overtimeGrace, err := time.ParseDuration(getEnv("OVERTIME_GRACE", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_GRACE: %w", err)
	}

	config.Scheduler = SchedulerConfig{
		SweepInterval:       sweepInterval,
		StaleReportInterval: staleReportInterval,
		OvertimeGrace:       overtimeGrace,
		Timezone:            getEnv("TIMEZONE", "Asia/Manila"),
	}

	// Shift cutoff table
	config.Shifts = ShiftConfig{
		Cutoffs: map[string]string{
			"morning":   getEnv("SHIFT_CUTOFF_MORNING", "18:01"),
			"afternoon": getEnv("SHIFT_CUTOFF_AFTERNOON", "22:01"),
			"night":     getEnv("SHIFT_CUTOFF_NIGHT", "22:01"),
		},
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@tigercookiesmnl.com"),
		FromName: getEnv("SMTP_FROM_NAME", "TigerCookies MNL"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Scheduler.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.Scheduler.StaleReportInterval <= 0 {
		return fmt.Errorf("STALE_REPORT_INTERVAL must be positive")
	}
	if c.Scheduler.OvertimeGrace < 0 {
		return fmt.Errorf("OVERTIME_GRACE must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
