package repository

import "context"

// GitRepository defines the git operations the publish chain needs. The
// implementation treats the git CLI as an opaque synchronous executor; every
// method maps to a single invocation.

type GitRepository interface {
	// CheckInstalled verifies the git binary is invocable.
	CheckInstalled(ctx context.Context) error
	// IsWorkTree reports whether the working directory is inside a git work tree.
	IsWorkTree(ctx context.Context) (bool, error)
	// GitDir returns the repository's .git directory path.
	GitDir(ctx context.Context) (string, error)
	// IsClean reports whether the work tree has no pending tracked or
	// untracked changes.
	IsClean(ctx context.Context) (bool, error)
	// Remotes lists the configured remote names.
	Remotes(ctx context.Context) ([]string, error)
	// FetchTags synchronizes local tag refs with the remote, forcing updates
	// and pruning tags deleted remotely.
	FetchTags(ctx context.Context, remote string) error
	// ResolveCommit resolves a commit-ish to a full commit hash.
	ResolveCommit(ctx context.Context, commitish string) (string, error)
	// ResolveTag resolves an existing tag to the commit it points at,
	// dereferencing annotated tags. Returns ok=false when the tag does not
	// exist locally.
	ResolveTag(ctx context.Context, tag string) (hash string, ok bool, err error)
	// CreateAnnotatedTag creates an annotated tag at the given commit.
	CreateAnnotatedTag(ctx context.Context, tag, commit, message string) error
	// ForceTag creates or moves a local lightweight tag to the given target.
	ForceTag(ctx context.Context, tag, target string) error
	// PushTag pushes a tag without force. Never overwrites a remote tag.
	PushTag(ctx context.Context, remote, tag string) error
	// PushTagForce pushes a tag with plain force.
	PushTagForce(ctx context.Context, remote, tag string) error
	// PushTagWithLease pushes a tag, succeeding only if the remote ref still
	// points at expectedHash.
	PushTagWithLease(ctx context.Context, remote, tag, expectedHash string) error
	// RemoteTagHash looks up the remote's current hash for a tag via a remote
	// ref listing. Returns ok=false when the remote has no such tag.
	RemoteTagHash(ctx context.Context, remote, tag string) (hash string, ok bool, err error)
}
