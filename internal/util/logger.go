// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// InitLogger initializes the global logger with appropriate log level.
// Set ARCWALLET_DEBUG=1 environment variable to enable debug logging.
//
// The core pipeline never logs key material; debug output is limited to
// request/response metadata in the RPC client.
func InitLogger() {
	level := slog.LevelInfo

	if os.Getenv("ARCWALLET_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop timestamps for cleaner CLI output.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	Logger = slog.New(handler)
}

// Debug logs a debug message (only shown when ARCWALLET_DEBUG is set)
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an informational message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
