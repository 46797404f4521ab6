package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	consolePrefixes = map[int]string{
		levelDebug: "\033[37m[DBG]\033[0m", // White
		levelInfo:  "\033[36m[INF]\033[0m", // Cyan
		levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
		levelError: "\033[31m[ERR]\033[0m", // Red
	}
	plainPrefixes = map[int]string{
		levelDebug: "[DBG]",
		levelInfo:  "[INF]",
		levelWarn:  "[WRN]",
		levelError: "[ERR]",
	}
)

// Options configures a Logger.
type Options struct {
	// Verbose enables debug messages.
	Verbose bool
	// FilePath is the log file. Messages are appended. Empty disables the file sink.
	FilePath string
	// Stdout receives debug, info and warning messages (default: os.Stdout).
	Stdout io.Writer
	// Stderr receives error messages (default: os.Stderr).
	Stderr io.Writer
	// NoColor disables ANSI colors on the console.
	NoColor bool
}

// Logger writes leveled messages to the console and, optionally, to a log file.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	noColor bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File
	now     func() time.Time
}

// New creates a logger and opens its file sink, if any.
func New(opts Options) (*Logger, error) {
	l := &Logger{
		verbose: opts.Verbose,
		noColor: opts.NoColor,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		now:     time.Now,
	}
	if l.stdout == nil {
		l.stdout = os.Stdout
	}
	if l.stderr == nil {
		l.stderr = os.Stderr
	}

	if opts.FilePath != "" {
		if dir := filepath.Dir(opts.FilePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
	}

	return l, nil
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return &Logger{stdout: io.Discard, stderr: io.Discard, now: time.Now}
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

// IsVerbose returns true if verbose logging is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

// Debugf logs a debug message if verbose is true.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.IsVerbose() {
		l.logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logMessage(levelError, format, args...)
}

// Close flushes and closes the file sink. The console sink keeps working.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	file := l.file
	l.file = nil

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// logMessage formats and writes a log message with the specified log level.
func (l *Logger) logMessage(level int, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format(timestampLayout)

	prefix := consolePrefixes[level]
	if l.noColor {
		prefix = plainPrefixes[level]
	}
	output := timestamp + " " + prefix + " " + message + "\n"

	// Write the output to the appropriate stream
	if level == levelError {
		_, _ = io.WriteString(l.stderr, output)
	} else {
		_, _ = io.WriteString(l.stdout, output)
	}

	if l.file != nil {
		_, _ = l.file.WriteString(timestamp + " " + plainPrefixes[level] + " " + message + "\n")
	}
}
