package orchestrator

import (
	"os"
	"time"
)

// Timeout constants for the publish workflow
var (
	// DefaultPublishTimeout bounds a complete publish run
	DefaultPublishTimeout = getTimeoutOrDefault("TAGSHIP_PUBLISH_TIMEOUT", 10*time.Minute)
)

// getTimeoutOrDefault returns the env-configured timeout or the default
func getTimeoutOrDefault(envVar string, def time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	return def
}
