package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	poolMonitor  *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger.With(map[string]any{"component": "database"}),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying up to the configured number of attempts
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err,
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	m.db = gormDB
	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	if sqlDB, err := gormDB.DB(); err == nil {
		m.poolMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
		m.poolMonitor.Start(30 * time.Second)
	}

	if m.config.AutoMigrate {
		if err := m.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, nil
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying connection pool
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	return m.db.DB()
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.poolMonitor != nil {
		m.poolMonitor.Stop()
	}

	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
