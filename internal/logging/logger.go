package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// InitLogger initializes the global logger with the level taken from LOG_LEVEL.
func InitLogger() {
	Configure(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// Configure replaces the global logger with one writing to w at the given level.
// Hosts that own the terminal (the debug viewer) point it at a file or io.Discard.
func Configure(w io.Writer, level LogLevel) *log.Logger {
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "worldstream",
	})
	setLogLevel(Logger, level)

	Logger.Debug("Logger initialized", "level", level)
	return Logger
}

// ParseLevel maps a LOG_LEVEL style string to a LogLevel, defaulting to info.
func ParseLevel(raw string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func setLogLevel(logger *log.Logger, level LogLevel) {
	switch level {
	case DebugLevel:
		logger.SetLevel(log.DebugLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// OrDefault returns logger when set, otherwise the global logger.
func OrDefault(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return GetLogger()
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}
