package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Zenospay    ZenospayConfig `mapstructure:"zenospay"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Kafka       KafkaConfig    `mapstructure:"kafka"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThresholdMs"` // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// ZenospayConfig contains payment provider settings
type ZenospayConfig struct {
	BaseURL   string        `mapstructure:"baseUrl"`
	PartnerID string        `mapstructure:"partnerId"`
	Timeout   time.Duration `mapstructure:"timeout"` // seconds

	// PEM text, with literal \n escapes allowed
	PrivateKey string `mapstructure:"privateKey"`
	PublicKey  string `mapstructure:"publicKey"`

	// CallbackPath is the path the provider signs webhook deliveries for
	CallbackPath               string `mapstructure:"callbackPath"`
	DisableWebhookVerification bool   `mapstructure:"disableWebhookVerification"`
}

// AuthConfig contains administrative access token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"tokenTtl"` // minutes
}

// KafkaConfig contains fulfillment event settings
type KafkaConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Brokers        []string      `mapstructure:"brokers"`
	Topic          string        `mapstructure:"topic"`
	ClientID       string        `mapstructure:"clientId"`
	ConnectRetries int           `mapstructure:"connectRetries"`
	RetryDelay     time.Duration `mapstructure:"retryDelay"` // seconds
}

// CacheConfig contains status cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"keyPrefix"`
	TTL       time.Duration `mapstructure:"ttl"` // seconds
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
