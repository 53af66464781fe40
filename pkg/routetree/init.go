// Package routetree is the entry point for applications that keep their
// navigation state in a route tree.
//
// The work is done by the subpackages: route holds the immutable
// definition and state trees and the transitions between them, router
// owns the current snapshot and applies actions, loader builds definition
// trees from TOML or YAML files, and labels renders paths for display.
// This package configures logging for all of them and wires a file
// watcher to a router for hot reloading.
package routetree

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
	"github.com/BrandonKowalski/routetree/pkg/routetree/internal"
)

// Options configures the routetree packages.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level: debug|info|warn|error
	Debug    bool   // Log library internals at debug level
}

// Init configures logging. Call it before creating routers or watchers.
// The internal log level is debug when Debug is set, ENVIRONMENT=DEV, or
// ROUTETREE_DEBUG is set, and error otherwise.
func Init(options Options) {
	if options.LogPath == "" {
		options.LogPath = os.Getenv(constants.LogPathEnvVar)
	}
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDevMode() || os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel == "" {
		options.LogLevel = os.Getenv(constants.LogLevelEnvVar)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
