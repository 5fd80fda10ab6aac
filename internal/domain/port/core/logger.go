package core

import "strings"

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors
	LogLevelError
)

// ParseLogLevel maps a configured level name to a LogLevel, defaulting to info
func ParseLogLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// String returns the configured name of the level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger is the structured logging port used by every layer
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// With returns a child logger that adds fields to every entry
	With(fields map[string]any) Logger
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
	// Flush writes any buffered entries
	Flush() error
}
