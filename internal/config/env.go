// Package config centralizes game constants and environment lookups.
package config

import (
	"os"
	"strings"
)

// Environment variables read by the binaries. None of them change gameplay.
const (
	EnvLogLevel   = "ROCKETDODGE_LOG_LEVEL"
	EnvLogFile    = "ROCKETDODGE_LOG_FILE"
	EnvSSHHost    = "SSH_HOST"
	EnvSSHPort    = "SSH_PORT"
	EnvSSHHostKey = "SSH_HOST_KEY"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is unset or blank.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
