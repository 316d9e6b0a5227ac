// Package logging provides config-driven categorized file-based logging for
// parley. Logs are written to ~/.parley/logs/ with separate files per
// category. When debug_mode is off, logging is a silent no-op so the TUI
// never contends with disk writes on the hot path.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"parley/internal/config"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup and shutdown
	CategoryUI      Category = "ui"      // Bubble Tea update/view events
	CategorySession Category = "session" // Transcript lifecycle
	CategoryNotify  Category = "notify"  // Notification delivery
	CategoryConfig  Category = "config"  // Config load and hot-reload
)

// Log levels, lowest first.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex

	stateMu  sync.RWMutex
	logsDir  string
	cfg      config.LoggingConfig
	logLevel int
)

// Initialize sets up the logging directory and applies the logging config.
// Should be called once at startup; ReloadConfig applies later changes.
func Initialize(baseDir string, lc config.LoggingConfig) error {
	if baseDir == "" {
		return fmt.Errorf("logging base directory required")
	}

	stateMu.Lock()
	logsDir = filepath.Join(baseDir, "logs")
	applyLocked(lc)
	enabled := cfg.DebugMode
	dir := logsDir
	stateMu.Unlock()

	if !enabled {
		return nil // Silent no-op in production mode
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== parley logging initialized ===")
	boot.Info("Logs directory: %s", dir)
	boot.Info("Level: %s", lc.Level)
	return nil
}

// ReloadConfig applies a new logging config, e.g. after a hot-reload.
// Already-open category files stay open; category and level filtering take
// effect immediately.
func ReloadConfig(lc config.LoggingConfig) {
	stateMu.Lock()
	applyLocked(lc)
	stateMu.Unlock()
}

func applyLocked(lc config.LoggingConfig) {
	cfg = lc
	switch lc.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
}

// IsCategoryEnabled returns whether a category is currently enabled.
func IsCategoryEnabled(category Category) bool {
	stateMu.RLock()
	defer stateMu.RUnlock()

	if !cfg.DebugMode {
		return false
	}
	if cfg.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := cfg.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category}
	}

	stateMu.RLock()
	dir := logsDir
	stateMu.RUnlock()
	if dir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation a matter of deleting old files.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func currentLevel() int {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return logLevel
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || currentLevel() > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] "+format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || currentLevel() > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] "+format, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || currentLevel() > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] "+format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] "+format, args...)
}

// Close flushes and closes all open log files. Call on shutdown.
func Close() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for cat, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
}
