// Package logger writes kith's diagnostic output to stderr.
//
// Nothing is printed unless verbose mode is on (the --verbose flag), so
// command output and the TUI stay clean. Long-running commands such as
// `kith remind` can turn on timestamps.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level tags each line.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose turns logging on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether logging is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTimestamps prefixes every line with the local time.
func SetTimestamps(on bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = on
}

// SetOutput redirects logging. Nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debug logs step-by-step detail such as computed dates.
func Debug(format string, args ...any) { write(LevelDebug, "", format, args...) }

// Info logs a notable event such as a check-in being completed.
func Info(format string, args ...any) { write(LevelInfo, "", format, args...) }

// Warn logs a recoverable problem.
func Warn(format string, args ...any) { write(LevelWarn, "", format, args...) }

// Section prints a header that groups the lines logged after it.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Named logs with a fixed component prefix, e.g. "scheduler: ".
type Named string

func (n Named) Debug(format string, args ...any) { write(LevelDebug, string(n), format, args...) }
func (n Named) Info(format string, args ...any)  { write(LevelInfo, string(n), format, args...) }
func (n Named) Warn(format string, args ...any)  { write(LevelWarn, string(n), format, args...) }

func write(level Level, component, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if component != "" {
		msg = component + ": " + msg
	}
	if timestamps {
		fmt.Fprintf(output, "%s [%s] %s\n", now().Format(time.DateTime), level, msg)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}
