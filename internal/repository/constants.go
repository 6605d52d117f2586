package repository

import "time"

// Timeout constants for repository operations
const (
	// DefaultGitTimeout bounds a single local git invocation
	DefaultGitTimeout = 30 * time.Second
	// DefaultGitNetworkTimeout bounds git invocations that talk to the remote
	DefaultGitNetworkTimeout = 2 * time.Minute
)
