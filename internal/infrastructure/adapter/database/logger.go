package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a GORM logger. level is one of silent, error, warn, info.
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string, slowThreshold time.Duration) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "gorm"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "gorm"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "gorm"})
	}
}

// Trace logs SQL statements. Missing rows are not errors here, the repositories report them.
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "gorm",
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		fields["error"] = err
		l.coreLogger.Error("SQL error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL query", fields)
	}
}

// extractQueryType determines the statement kind of a SQL query
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, kind) {
			return kind
		}
	}
	return ""
}
