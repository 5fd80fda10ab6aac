package database

import (
	"errors"
	"fmt"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string // database name for postgres, file path or DSN for sqlite
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	AutoMigrate     bool
}

// DefaultConfig returns a Config with default pool and retry settings.
// Connection details have no defaults and must come from configuration.
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      5 * time.Second,
		AutoMigrate:     true,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"error":  true,
		"warn":   true,
		"info":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid database log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
