// SPDX-License-Identifier: MIT

// Package logger provides leveled logging for the swalign CLI.
// Warnings are always written; debug and info messages only when verbose
// mode is enabled via the --verbose flag. Output goes to stderr so that
// stdout carries nothing but the alignment report.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = newLevel()
	log     = newLogger(os.Stderr)
)

func newLevel() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}

// newLogger builds a text handler without timestamps.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables debug and info output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs msg with key/value pairs when verbose.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs msg with key/value pairs when verbose.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn always logs msg with key/value pairs.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }
