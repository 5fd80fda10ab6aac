package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/provider/zenospay"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
)

// Validate ensures all required configuration values are present and usable.
// Warnings are returned separately; they never stop startup.
func (c *Config) Validate() (warnings []string, err error) {
	var missing []string

	switch c.Environment {
	case Development, Production, Test:
	default:
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Server.Port <= 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ReadTimeout <= 0 {
		missing = append(missing, "server.readTimeout")
	}
	if c.Server.WriteTimeout <= 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if c.Zenospay.BaseURL == "" {
		missing = append(missing, "zenospay.baseUrl (or ZENOS_BASE_URL)")
	}
	if c.Zenospay.Timeout <= 0 {
		missing = append(missing, "zenospay.timeout")
	}
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or TP_JWT_SECRET)")
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		missing = append(missing, "kafka.brokers and kafka.topic")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		missing = append(missing, "cache.addr")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missing)
	}

	if err := c.DatabaseConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	if u, err := url.Parse(c.Zenospay.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("zenospay.baseUrl must be an absolute URL, got %q", c.Zenospay.BaseURL)
	}
	if !strings.HasPrefix(c.Zenospay.CallbackPath, "/") {
		return nil, fmt.Errorf("zenospay.callbackPath must start with /, got %q", c.Zenospay.CallbackPath)
	}

	// Keys are optional, but a configured key must parse
	if c.Zenospay.PrivateKey != "" {
		if _, err := signature.ParsePrivateKey(c.Zenospay.PrivateKey); err != nil {
			return nil, fmt.Errorf("zenospay.privateKey: %w", err)
		}
	} else {
		warnings = append(warnings, "zenospay.privateKey is not set; QRIS payments cannot be created")
	}
	if c.Zenospay.PublicKey != "" {
		if _, err := signature.ParsePublicKey(c.Zenospay.PublicKey); err != nil {
			return nil, fmt.Errorf("zenospay.publicKey: %w", err)
		}
	} else if !c.Zenospay.DisableWebhookVerification {
		warnings = append(warnings, "zenospay.publicKey is not set; every webhook will be rejected")
	}

	if c.Zenospay.DisableWebhookVerification {
		warnings = append(warnings, "webhook signature verification is disabled")
	}

	if c.Environment == Production {
		switch strings.ToLower(c.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			if c.Database.Driver == database.DriverPostgres {
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if len(c.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}
	}

	return warnings, nil
}

// DatabaseConfig converts the database section for the database manager
func (c *Config) DatabaseConfig() *database.Config {
	return &database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Database,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		SlowThreshold:   c.Database.SlowThreshold,
		LogLevel:        c.Database.LogLevel,
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
		AutoMigrate:     c.Database.AutoMigrate,
	}
}

// ProviderConfig converts the provider section for the Zenospay client
func (c *Config) ProviderConfig() zenospay.Config {
	return zenospay.Config{
		BaseURL:   c.Zenospay.BaseURL,
		PartnerID: c.Zenospay.PartnerID,
		Timeout:   c.Zenospay.Timeout,
	}
}

// KafkaPublisherConfig converts the kafka section for the event publisher
func (c *Config) KafkaPublisherConfig() messaging.KafkaConfig {
	return messaging.KafkaConfig{
		Brokers:        c.Kafka.Brokers,
		Topic:          c.Kafka.Topic,
		ClientID:       c.Kafka.ClientID,
		ConnectRetries: c.Kafka.ConnectRetries,
		RetryDelay:     c.Kafka.RetryDelay,
	}
}

// RedisConfig converts the cache section for the status cache
func (c *Config) RedisConfig() cache.RedisConfig {
	return cache.RedisConfig{
		Addr:      c.Cache.Addr,
		Password:  c.Cache.Password,
		DB:        c.Cache.DB,
		KeyPrefix: c.Cache.KeyPrefix,
		TTL:       c.Cache.TTL,
	}
}
