package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
)

// ConnectionPoolMonitor periodically checks the connection pool and warns when
// it is close to exhaustion
type ConnectionPoolMonitor struct {
	db       *sql.DB
	logger   coreport.Logger
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

func (m *ConnectionPoolMonitor) check() {
	stats := m.db.Stats()
	if stats.MaxOpenConnections <= 0 {
		return
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
