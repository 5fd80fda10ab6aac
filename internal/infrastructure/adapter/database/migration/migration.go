package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion. It is a no-op when the
// database is already there.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := db.AutoMigrate(&model.Transaction{}, &model.PaymentEvent{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err,
		})
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	if err := m.createIndexes(db); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err,
		})
		return fmt.Errorf("create indexes: %w", err)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, fmt.Sprintf("migrated from %q", currentVersion)); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version; empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// createIndexes adds the composite indexes that struct tags cannot express
func (m *MigrationManager) createIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_status_created_at ON transactions (status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_payment_events_transaction_created ON payment_events (transaction_id, created_at)",
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
