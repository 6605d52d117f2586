package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/911218sky/tagship/internal/domain"
)

// gitCLI is the implementation of the GitRepository interface. Each method
// shells out to the git binary; the command line is logged before execution
// so a run leaves a complete audit trail.
type gitCLI struct {
	dir            string
	timeout        time.Duration
	networkTimeout time.Duration
	log            *zap.Logger
}

// NewGitRepository creates a GitRepository operating on the given directory.
func NewGitRepository(dir string, log *zap.Logger) GitRepository {
	if dir == "" {
		dir = "."
	}
	return &gitCLI{
		dir:            dir,
		timeout:        DefaultGitTimeout,
		networkTimeout: DefaultGitNetworkTimeout,
		log:            log,
	}
}

// validRef matches the git ref and remote names this tool is willing to pass
// to a subprocess. Rejecting anything else prevents option and command
// injection through user-supplied arguments.
var validRef = regexp.MustCompile(`^[a-zA-Z0-9._/\-^{}~@+]+$`)

func checkRefArg(kind, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s cannot be empty", domain.ErrValidation, kind)
	}
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("%w: %s %q cannot start with a dash", domain.ErrValidation, kind, value)
	}
	if !validRef.MatchString(value) {
		return fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, kind, value)
	}
	if len(value) > 255 {
		return fmt.Errorf("%w: %s too long: maximum 255 characters", domain.ErrValidation, kind)
	}
	return nil
}

// run executes a git command with a timeout, logging the full command line
// first. Returns trimmed stdout.
func (r *gitCLI) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	full := append([]string{"-C", r.dir}, args...)
	r.log.Info("running git command", zap.String("cmd", "git "+strings.Join(full, " ")))

	cmd := exec.CommandContext(ctx, "git", full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: git %s timed out after %v", domain.ErrGitCommand, args[0], timeout)
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return "", fmt.Errorf("%w: git %s: %v (stderr: %s)", domain.ErrGitCommand, strings.Join(args, " "), err, errMsg)
		}
		return "", fmt.Errorf("%w: git %s: %v", domain.ErrGitCommand, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// runLocal runs a command with the short local timeout.
func (r *gitCLI) runLocal(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, r.timeout, args...)
}

// runNetwork runs a command with the longer network timeout.
func (r *gitCLI) runNetwork(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, r.networkTimeout, args...)
}

// CheckInstalled verifies the git binary is invocable.
func (r *gitCLI) CheckInstalled(ctx context.Context) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("%w: git binary not found in PATH: %v", domain.ErrEnvironment, err)
	}
	if _, err := r.runLocal(ctx, "version"); err != nil {
		return fmt.Errorf("%w: git is not invocable: %v", domain.ErrEnvironment, err)
	}
	return nil
}

// IsWorkTree reports whether the directory is inside a git work tree.
func (r *gitCLI) IsWorkTree(ctx context.Context) (bool, error) {
	out, err := r.runLocal(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		// rev-parse exits 128 outside a repository
		if errors.Is(err, domain.ErrGitCommand) {
			return false, nil
		}
		return false, err
	}
	return out == "true", nil
}

// GitDir returns the repository's .git directory as an absolute path.
func (r *gitCLI) GitDir(ctx context.Context) (string, error) {
	out, err := r.runLocal(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(out) {
		return out, nil
	}
	return filepath.Abs(filepath.Join(r.dir, out))
}

// IsClean reports whether the work tree has no pending changes, untracked
// files included.
func (r *gitCLI) IsClean(ctx context.Context) (bool, error) {
	out, err := r.runLocal(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// Remotes lists the configured remote names.
func (r *gitCLI) Remotes(ctx context.Context) ([]string, error) {
	out, err := r.runLocal(ctx, "remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// FetchTags fetches tags from the remote with force and prune semantics so
// local tag refs mirror remote truth.
func (r *gitCLI) FetchTags(ctx context.Context, remote string) error {
	if err := checkRefArg("remote", remote); err != nil {
		return err
	}
	_, err := r.runNetwork(ctx, "fetch", remote, "--tags", "--force", "--prune", "--prune-tags")
	return err
}

// ResolveCommit resolves a commit-ish to a full commit hash.
func (r *gitCLI) ResolveCommit(ctx context.Context, commitish string) (string, error) {
	if err := checkRefArg("commit-ish", commitish); err != nil {
		return "", err
	}
	out, err := r.runLocal(ctx, "rev-parse", "--verify", "--quiet", commitish+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q to a commit: %w", commitish, err)
	}
	return out, nil
}

// ResolveTag resolves a local tag to its underlying commit, dereferencing
// annotated tags via ^{}. ok is false when the tag does not exist.
func (r *gitCLI) ResolveTag(ctx context.Context, tag string) (string, bool, error) {
	if err := checkRefArg("tag", tag); err != nil {
		return "", false, err
	}
	out, err := r.runLocal(ctx, "rev-parse", "--verify", "--quiet", "refs/tags/"+tag+"^{}")
	if err != nil {
		if errors.Is(err, domain.ErrGitCommand) {
			return "", false, nil
		}
		return "", false, err
	}
	return out, true, nil
}

// CreateAnnotatedTag creates an annotated tag at the given commit.
func (r *gitCLI) CreateAnnotatedTag(ctx context.Context, tag, commit, message string) error {
	if err := checkRefArg("tag", tag); err != nil {
		return err
	}
	if err := checkRefArg("commit", commit); err != nil {
		return err
	}
	_, err := r.runLocal(ctx, "tag", "-a", tag, "-m", message, commit)
	return err
}

// ForceTag creates or moves a local lightweight tag.
func (r *gitCLI) ForceTag(ctx context.Context, tag, target string) error {
	if err := checkRefArg("tag", tag); err != nil {
		return err
	}
	if err := checkRefArg("target", target); err != nil {
		return err
	}
	_, err := r.runLocal(ctx, "tag", "-f", tag, target)
	return err
}

func tagRefspec(tag string) string {
	return fmt.Sprintf("refs/tags/%s:refs/tags/%s", tag, tag)
}

// PushTag pushes a tag without force.
func (r *gitCLI) PushTag(ctx context.Context, remote, tag string) error {
	if err := checkRefArg("remote", remote); err != nil {
		return err
	}
	if err := checkRefArg("tag", tag); err != nil {
		return err
	}
	_, err := r.runNetwork(ctx, "push", remote, tagRefspec(tag))
	return err
}

// PushTagForce pushes a tag with plain force.
func (r *gitCLI) PushTagForce(ctx context.Context, remote, tag string) error {
	if err := checkRefArg("remote", remote); err != nil {
		return err
	}
	if err := checkRefArg("tag", tag); err != nil {
		return err
	}
	_, err := r.runNetwork(ctx, "push", "--force", remote, tagRefspec(tag))
	return err
}

// PushTagWithLease pushes a tag, succeeding only while the remote ref still
// points at expectedHash.
func (r *gitCLI) PushTagWithLease(ctx context.Context, remote, tag, expectedHash string) error {
	if err := checkRefArg("remote", remote); err != nil {
		return err
	}
	if err := checkRefArg("tag", tag); err != nil {
		return err
	}
	if err := checkRefArg("expected hash", expectedHash); err != nil {
		return err
	}
	lease := fmt.Sprintf("--force-with-lease=refs/tags/%s:%s", tag, expectedHash)
	_, err := r.runNetwork(ctx, "push", lease, remote, tagRefspec(tag))
	return err
}

// RemoteTagHash queries the remote's current value for a tag. ok is false
// when the remote has no such tag.
func (r *gitCLI) RemoteTagHash(ctx context.Context, remote, tag string) (string, bool, error) {
	if err := checkRefArg("remote", remote); err != nil {
		return "", false, err
	}
	if err := checkRefArg("tag", tag); err != nil {
		return "", false, err
	}
	out, err := r.runNetwork(ctx, "ls-remote", remote, "refs/tags/"+tag)
	if err != nil {
		return "", false, err
	}
	if out == "" {
		return "", false, nil
	}
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", false, fmt.Errorf("%w: unexpected ls-remote output %q", domain.ErrGitCommand, out)
	}
	return fields[0], true, nil
}
