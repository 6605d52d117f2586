package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/911218sky/tagship/internal/domain"
	"github.com/911218sky/tagship/internal/repository"
)

// EnsureTagUseCase makes sure the annotated version tag exists at the target
// commit and is on the remote. An existing tag at the same commit is an
// idempotent success; an existing tag elsewhere is a conflict and is never
// overwritten.

type EnsureTagUseCase struct {
	GitRepo repository.GitRepository
	Log     *zap.Logger
}

// Execute runs the use case. created reports whether a new tag was made.
func (uc *EnsureTagUseCase) Execute(ctx context.Context, remote, tag, commit string) (created bool, err error) {
	existing, ok, err := uc.GitRepo.ResolveTag(ctx, tag)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tag %s: %w", tag, err)
	}
	switch {
	case ok && existing == commit:
		uc.Log.Info("tag already exists at target commit, reusing it",
			zap.String("tag", tag), zap.String("commit", commit))
	case ok:
		return false, fmt.Errorf("%w: tag %s already points at %s, not %s",
			domain.ErrTagConflict, tag, existing, commit)
	default:
		message := fmt.Sprintf("release %s", tag)
		if err := uc.GitRepo.CreateAnnotatedTag(ctx, tag, commit, message); err != nil {
			return false, fmt.Errorf("failed to create tag %s: %w", tag, err)
		}
		created = true
	}
	// Plain push: new tags only, an existing remote tag is never overwritten.
	if err := uc.GitRepo.PushTag(ctx, remote, tag); err != nil {
		return created, fmt.Errorf("failed to push tag %s to %s: %w", tag, remote, err)
	}
	return created, nil
}
