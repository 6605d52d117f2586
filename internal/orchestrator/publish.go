package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/911218sky/tagship/internal/domain"
	"github.com/911218sky/tagship/internal/repository"
	"github.com/911218sky/tagship/internal/usecase"
)

// PublishConfig contains configuration for one publish run.
type PublishConfig struct {
	Version        string // raw version argument, normalized during the run
	Remote         string
	MajorTag       string // optional override; derived from the version when empty
	Commitish      string // target commit-ish, HEAD when empty
	SkipCleanCheck bool
	DryRun         bool // validate and resolve only, mutate nothing
	GithubRelease  bool // create a GitHub release after the tags are pushed
}

// Locker serializes publish runs on this machine.
type Locker interface {
	Acquire() error
	Release() error
}

// PublishOrchestrator runs the tag publication chain: every step is a hard
// precondition for the next and any failure is terminal. Refs already pushed
// are never rolled back.
type PublishOrchestrator struct {
	gitRepo    repository.GitRepository
	githubRepo repository.GithubRepository
	log        *zap.Logger
	newLocker  func(gitDir string) Locker
}

// NewPublishOrchestrator creates a new publish orchestrator. githubRepo may
// be a noop implementation when no token is configured.
func NewPublishOrchestrator(
	gitRepo repository.GitRepository,
	githubRepo repository.GithubRepository,
	log *zap.Logger,
) *PublishOrchestrator {
	return &PublishOrchestrator{
		gitRepo:    gitRepo,
		githubRepo: githubRepo,
		log:        log,
		newLocker:  func(gitDir string) Locker { return repository.NewPublishLock(gitDir) },
	}
}

// Execute runs the complete publish workflow.
func (o *PublishOrchestrator) Execute(ctx context.Context, cfg PublishConfig) (*domain.Publication, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultPublishTimeout)
	defer cancel()

	// Version validation and major-tag derivation happen before any git
	// command runs.
	version, err := domain.NewReleaseVersion(cfg.Version)
	if err != nil {
		return nil, err
	}
	majorTag := cfg.MajorTag
	if majorTag == "" {
		majorTag = version.MajorTag()
	}
	commitish := cfg.Commitish
	if commitish == "" {
		commitish = "HEAD"
	}
	pub := &domain.Publication{
		Version:  version,
		MajorTag: majorTag,
		Remote:   cfg.Remote,
	}
	o.log.Info("publishing release tag",
		zap.String("version", version.TagName()),
		zap.String("major_tag", majorTag),
		zap.String("remote", cfg.Remote),
		zap.String("commitish", commitish))

	envCheck := &usecase.CheckEnvironmentUseCase{GitRepo: o.gitRepo}
	if err := envCheck.Execute(ctx, cfg.Remote, cfg.SkipCleanCheck); err != nil {
		return nil, err
	}

	if cfg.DryRun {
		commit, err := o.gitRepo.ResolveCommit(ctx, commitish)
		if err != nil {
			return nil, err
		}
		pub.Commit = commit
		o.log.Info("dry run: would tag and push",
			zap.String("tag", version.TagName()),
			zap.String("major_tag", majorTag),
			zap.String("commit", commit))
		return pub, nil
	}

	gitDir, err := o.gitRepo.GitDir(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to locate git directory: %w", err)
	}
	lock := o.newLocker(gitDir)
	if err := lock.Acquire(); err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			o.log.Warn("failed to release publish lock", zap.Error(err))
		}
	}()

	// Sync local tag refs with remote truth before any comparison.
	if err := o.gitRepo.FetchTags(ctx, cfg.Remote); err != nil {
		return nil, fmt.Errorf("failed to fetch tags from %s: %w", cfg.Remote, err)
	}
	commit, err := o.gitRepo.ResolveCommit(ctx, commitish)
	if err != nil {
		return nil, err
	}
	pub.Commit = commit

	ensureTag := &usecase.EnsureTagUseCase{GitRepo: o.gitRepo, Log: o.log}
	created, err := ensureTag.Execute(ctx, cfg.Remote, version.TagName(), commit)
	if err != nil {
		return nil, err
	}
	pub.TagCreated = created

	floatMajor := &usecase.FloatMajorUseCase{GitRepo: o.gitRepo, Log: o.log}
	if err := floatMajor.Execute(ctx, cfg.Remote, majorTag, version.TagName()); err != nil {
		return nil, err
	}
	pub.MajorFloated = true
	o.log.Info("release tag published",
		zap.String("tag", version.TagName()),
		zap.String("major_tag", majorTag),
		zap.String("commit", commit))

	if cfg.GithubRelease {
		url, err := o.githubRepo.CreateRelease(ctx, version.TagName(), version.TagName(), version.IsPrerelease())
		if err != nil {
			// Tags are already pushed and stay pushed, only the release failed.
			return pub, fmt.Errorf("tags published, but GitHub release failed: %w", err)
		}
		o.log.Info("github release created", zap.String("url", url))
	}
	return pub, nil
}
