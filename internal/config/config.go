// Package config provides environment variable defaults for camctl
// commands.
package config

import "os"

// Defaults used when the environment variables are not set.
const (
	DefaultLogLevel = "info"
	DefaultSavePath = "results"
)

// LogLevel returns the log level from CAMCTL_LOG_LEVEL or the default.
func LogLevel() string {
	if level := os.Getenv("CAMCTL_LOG_LEVEL"); level != "" {
		return level
	}
	return DefaultLogLevel
}

// SavePath returns the directory in which experiment data is saved
// from CAMCTL_SAVE_PATH or the default.
func SavePath() string {
	if path := os.Getenv("CAMCTL_SAVE_PATH"); path != "" {
		return path
	}
	return DefaultSavePath
}

// Production returns whether GO_ENV is set to production.
func Production() bool {
	return os.Getenv("GO_ENV") == "production"
}
