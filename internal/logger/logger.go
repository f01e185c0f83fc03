// Package logger provides standardized logging for the afll front end.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Global logger instance
var defaultLogger *slog.Logger

// logFile is the handle Init opened for Config.LogFile, if any.
var logFile io.Closer

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l LogLevel) String() string {
	if l >= LevelDebug && l <= LevelError {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a level name such as "debug" or "WARN" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg without touching the global one. The
// returned Closer releases the log file; it is a no-op without one.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		output = file
		closer = file
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "text", "":
		handler = slog.NewTextHandler(output, opts)
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return slog.New(handler), closer, nil
}

// Init initializes the global logger with the given configuration.
// A log file opened by an earlier Init is closed.
func Init(cfg Config) error {
	l, closer, err := New(cfg)
	if err != nil {
		return err
	}
	if err := Close(); err != nil {
		closer.Close()
		return err
	}
	defaultLogger = l
	logFile = closer
	slog.SetDefault(defaultLogger)
	return nil
}

// Close releases the log file opened by Init, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(msg, args...)
	}
}

// With returns a new logger with the given attributes
func With(args ...any) *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger.With(args...)
	}
	return slog.Default().With(args...)
}

// Front-end logging helpers

// LogLexing logs a finished scan.
func LogLexing(file string, tokenCount int, elapsed time.Duration) {
	Debug("Lexing complete", "file", file, "tokens", tokenCount, "elapsed", elapsed)
}

// LogParsing logs a finished parse.
func LogParsing(file string, nodeCount int, elapsed time.Duration) {
	Debug("Parsing complete", "file", file, "nodes", nodeCount, "elapsed", elapsed)
}

// LogLexicalError logs a character the scanner skipped. Callers print
// the diagnostic themselves, so the record is debug-only.
func LogLexicalError(file string, line int, msg string) {
	Debug("Lexical error", "file", file, "line", line, "message", msg)
}

// LogSyntaxError logs the error that stopped a parse at debug level.
func LogSyntaxError(file string, line int, msg string) {
	Debug("Syntax error", "file", file, "line", line, "message", msg)
}

// LogFileProcessing logs file processing start
func LogFileProcessing(file string) {
	Info("Processing file", "file", file)
}
