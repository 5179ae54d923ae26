// Package logger provides leveled logging for the recap CLI.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed to stderr to trace classification and identifier
// resolution. Warnings are always printed.
//
// Components log through a named Logger so each line says where it came
// from:
//
//	var log = logger.Named("resolve")
//	log.Debug("tab %s kind=%s", tabID, kind)  // [DEBUG] resolve: tab 1 kind=DocketDisplay
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is a message severity.
type Level string

// Levels, in increasing severity.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger writes messages tagged with a component name.
type Logger struct {
	component string
}

// Named returns a logger for the component.
func Named(component string) Logger {
	return Logger{component: component}
}

// Debug prints a message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) { l.write(LevelInfo, format, args...) }

// Warn prints a warning regardless of verbose mode.
func (l Logger) Warn(format string, args ...any) { l.write(LevelWarn, format, args...) }

// write holds the exclusive lock so concurrent lines never interleave.
func (l Logger) write(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level != LevelWarn && !verbose {
		return
	}

	prefix := "[" + string(level) + "] "
	if l.component != "" {
		prefix += l.component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

var std Logger

// Debug prints an untagged message if verbose mode is enabled.
func Debug(format string, args ...any) { std.Debug(format, args...) }

// Info prints an untagged informational message if verbose mode is enabled.
func Info(format string, args ...any) { std.Info(format, args...) }

// Warn prints an untagged warning regardless of verbose mode.
func Warn(format string, args ...any) { std.Warn(format, args...) }
