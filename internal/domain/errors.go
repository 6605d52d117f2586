package domain

import "errors"

// Error kinds for the publish chain. Every failure is terminal; these exist
// so callers and tests can classify a failure with errors.Is without parsing
// messages.
var (
	// ErrValidation marks a malformed version or major-tag derivation failure.
	ErrValidation = errors.New("validation error")
	// ErrEnvironment marks a missing git binary or a directory that is not a
	// git work tree.
	ErrEnvironment = errors.New("environment error")
	// ErrDirtyWorkTree marks pending tracked or untracked changes.
	ErrDirtyWorkTree = errors.New("work tree has uncommitted changes")
	// ErrUnknownRemote marks a remote name missing from the configured remotes.
	ErrUnknownRemote = errors.New("unknown remote")
	// ErrTagConflict marks an existing version tag pointing at a different
	// commit. The tag is never overwritten implicitly.
	ErrTagConflict = errors.New("tag conflict")
	// ErrGitCommand marks a git invocation that exited non-zero.
	ErrGitCommand = errors.New("git command failed")
	// ErrRaceDetected marks a force-with-lease push rejected because the
	// remote major tag moved after it was observed.
	ErrRaceDetected = errors.New("remote tag moved concurrently")
	// ErrPublishLocked marks another publish already running against the
	// same repository on this machine.
	ErrPublishLocked = errors.New("another publish is in progress")
)
