// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures logger creation.
type Option func(*newOptions)

type newOptions struct {
	level  log.Level
	writer io.Writer
	dir    string
	now    func() time.Time
}

// WithLevel sets the minimum level.
func WithLevel(level log.Level) Option {
	return func(opts *newOptions) {
		opts.level = level
	}
}

// WithWriter sends text logs to writer instead of a file.
func WithWriter(writer io.Writer) Option {
	return func(opts *newOptions) {
		opts.writer = writer
	}
}

// WithFileDir sends JSON logs to a timestamped file under dir.
func WithFileDir(dir string) Option {
	return func(opts *newOptions) {
		opts.dir = strings.TrimSpace(dir)
	}
}

func withClock(now func() time.Time) Option {
	return func(opts *newOptions) {
		opts.now = now
	}
}

// RuntimeLogger owns the logger and the file behind it, if any.
type RuntimeLogger struct {
	Logger *log.Logger
	file   *os.File
	path   string
}

// New creates a logger. WithFileDir takes precedence over WithWriter; with
// neither, text logs go to stderr.
func New(options ...Option) (*RuntimeLogger, error) {
	resolved := newOptions{level: log.InfoLevel, writer: os.Stderr, now: time.Now}
	for _, option := range options {
		if option != nil {
			option(&resolved)
		}
	}

	if resolved.dir == "" {
		logger := log.NewWithOptions(resolved.writer, log.Options{
			Level:           resolved.level,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
		return &RuntimeLogger{Logger: logger}, nil
	}

	if err := os.MkdirAll(resolved.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	timestamp := resolved.now().UTC().Format("20060102-150405")
	filePath := filepath.Join(resolved.dir, fmt.Sprintf("pomodoro-%s.log", timestamp))
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           resolved.level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.JSONFormatter,
	})
	logger.With("log_file", filePath).Debug("logger initialized")

	return &RuntimeLogger{Logger: logger, file: file, path: filePath}, nil
}

// ParseLevel maps a flag value to a level. Empty means info.
func ParseLevel(value string) (log.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(value))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q", value)
	}
	return level, nil
}

// Close closes the log file.
func (r *RuntimeLogger) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Path returns the log file path, or "" when logging to a writer.
func (r *RuntimeLogger) Path() string {
	if r == nil {
		return ""
	}
	return r.path
}
