package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a manager for a database private to the calling test
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano()),
		MaxOpenConns:    1, // one connection serializes writers, as sqlite requires
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		AutoMigrate:     true,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect opens and migrates the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return db
}

// NewTestDB is a shortcut returning a connected, migrated test database
func NewTestDB(t *testing.T, logger coreport.Logger) *gorm.DB {
	t.Helper()
	return NewTestDBManager(t, logger).Connect(t)
}
