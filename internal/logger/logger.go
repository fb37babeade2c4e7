// Package logger provides leveled logging with debug, info, warn, and error
// levels. It wraps the standard log package with level-based filtering so the
// CLI can stay quiet by default and verbose when asked. Only the package-level
// functions are exposed; before Init runs, all of them are silent no-ops.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are voluminous and usually disabled.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual review.
	WarnLevel
	// ErrorLevel logs are high-priority failures.
	ErrorLevel
)

var (
	minLevel Level
	std      *log.Logger
)

// Init initializes the package logger with the specified level and format
func Init(level string, format string) {
	switch strings.ToLower(level) {
	case "debug":
		minLevel = DebugLevel
	case "info":
		minLevel = InfoLevel
	case "warn":
		minLevel = WarnLevel
	case "error":
		minLevel = ErrorLevel
	default:
		minLevel = InfoLevel
	}

	flags := log.LstdFlags
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}

	std = log.New(os.Stderr, "", flags)
}

func output(level Level, prefix, format string, args ...interface{}) {
	if std == nil || minLevel > level {
		return
	}
	_ = std.Output(3, fmt.Sprintf(prefix+format, args...))
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...interface{}) {
	output(DebugLevel, "[DEBUG] ", format, args...)
}

// Info logs a message at InfoLevel
func Info(format string, args ...interface{}) {
	output(InfoLevel, "[INFO] ", format, args...)
}

// Warn logs a message at WarnLevel
func Warn(format string, args ...interface{}) {
	output(WarnLevel, "[WARN] ", format, args...)
}

// Error logs a message at ErrorLevel
func Error(format string, args ...interface{}) {
	output(ErrorLevel, "[ERROR] ", format, args...)
}

// Fatal logs a message at ErrorLevel and exits
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf("[FATAL] "+format, args...)
	if std != nil {
		_ = std.Output(2, msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
