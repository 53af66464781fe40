// Package constants defines shared constants and configuration values
// used throughout the routetree packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Environment variables read by the library and the CLI.
const (
	DebugEnvVar    = "ROUTETREE_DEBUG"     // Any value turns on debug logging for the library
	LogLevelEnvVar = "ROUTETREE_LOG_LEVEL" // Application log level: debug|info|warn|error
	LogPathEnvVar  = "ROUTETREE_LOG_PATH"  // Log file path
	LangEnvVar     = "ROUTETREE_LANG"      // Language for path titles
)

// EnvPrefix is the prefix the CLI binds its flags to.
const EnvPrefix = "ROUTETREE"

const (
	// DefaultHistoryLimit is how many previous snapshots a router keeps.
	DefaultHistoryLimit = 100

	// DefaultReloadDebounce is how long a watcher waits for writes to settle.
	DefaultReloadDebounce = 150 * time.Millisecond

	// DefaultLanguage is the fallback language for titles.
	DefaultLanguage = "en"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "routetree"
