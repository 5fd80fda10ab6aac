package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// DefaultCallbackPath is the route the provider posts webhooks to
const DefaultCallbackPath = "/api/transactions/webhook/zenospay"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and the environment apply.
func LoadConfig() (*Config, error) {
	// .env never overrides variables that are already set
	_ = loadDotEnvFile()

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path containing it and applies the
// environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 45)      // seconds, above the provider timeout
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.queryTimeout", 10)   // seconds
	v.SetDefault("database.slowThresholdMs", 200)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 5) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("zenospay.baseUrl", "")
	v.SetDefault("zenospay.partnerId", "")
	v.SetDefault("zenospay.privateKey", "")
	v.SetDefault("zenospay.publicKey", "")
	v.SetDefault("zenospay.timeout", 30) // seconds
	v.SetDefault("zenospay.callbackPath", DefaultCallbackPath)
	v.SetDefault("zenospay.disableWebhookVerification", false)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.issuer", "topup-processor")
	v.SetDefault("auth.tokenTtl", 60) // minutes

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", event.TopicTransactionPaid)
	v.SetDefault("kafka.clientId", "topup-processor")
	v.SetDefault("kafka.connectRetries", 5)
	v.SetDefault("kafka.retryDelay", 2) // seconds

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.keyPrefix", "topup:status:")
	v.SetDefault("cache.ttl", 600) // seconds

	v.SetDefault("metrics.enabled", true)
}

// getEnvironment determines the environment to use based on TP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("TP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// The ZENOS_* names are the provider settings deployments already carry.
func processEnvOverrides(v *viper.Viper) {
	// Database
	setString(v, "database.driver", "TP_DB_DRIVER")
	setString(v, "database.host", "TP_DB_HOST")
	if port := getEnvInt("TP_DB_PORT", 0); port > 0 {
		v.Set("database.port", port)
	}
	setString(v, "database.username", "TP_DB_USERNAME")
	setString(v, "database.password", "TP_DB_PASSWORD")
	setString(v, "database.database", "TP_DB_NAME")
	setString(v, "database.sslMode", "TP_DB_SSL_MODE")
	if maxOpenConns := getEnvInt("TP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("TP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}

	// Server
	setString(v, "server.host", "TP_SERVER_HOST")
	if port := getEnvInt("TP_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}

	// Logger
	setString(v, "logger.level", "TP_LOGGER_LEVEL")

	// Provider
	setString(v, "zenospay.baseUrl", "ZENOS_BASE_URL")
	setString(v, "zenospay.privateKey", "ZENOS_PRIVATE_KEY")
	setString(v, "zenospay.publicKey", "ZENOS_PUBLIC_KEY")
	setString(v, "zenospay.partnerId", "ZENOS_PARTNER_ID")
	setString(v, "zenospay.callbackPath", "ZENOS_WEBHOOK_ENDPOINT")
	if disable, ok := getEnvBool("ZENOS_WEBHOOK_DISABLE_VERIFY"); ok {
		v.Set("zenospay.disableWebhookVerification", disable)
	}

	// Auth
	setString(v, "auth.jwtSecret", "TP_JWT_SECRET")

	// Kafka
	if enabled, ok := getEnvBool("TP_KAFKA_ENABLED"); ok {
		v.Set("kafka.enabled", enabled)
	}
	if brokers := os.Getenv("TP_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", splitList(brokers))
	}
	setString(v, "kafka.topic", "TP_KAFKA_TOPIC")

	// Cache
	if enabled, ok := getEnvBool("TP_CACHE_ENABLED"); ok {
		v.Set("cache.enabled", enabled)
	}
	setString(v, "cache.addr", "TP_REDIS_ADDR")
	setString(v, "cache.password", "TP_REDIS_PASSWORD")
}

func setString(v *viper.Viper, key, env string) {
	if val := os.Getenv(env); val != "" {
		v.Set(key, val)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// getEnvBool reads 1/0, true/false, yes/no; ok is false when unset or unrecognized
func getEnvBool(name string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowThreshold *= time.Millisecond
	config.Database.RetryDelay *= time.Second

	config.Zenospay.Timeout *= time.Second
	config.Auth.TokenTTL *= time.Minute
	config.Kafka.RetryDelay *= time.Second
	config.Cache.TTL *= time.Second
}
