package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/911218sky/tagship/internal/domain"
	"github.com/911218sky/tagship/internal/repository"
)

// CheckEnvironmentUseCase verifies the run can proceed at all: git is
// invocable, the directory is a work tree, the tree is clean (unless skipped)
// and the requested remote exists.

type CheckEnvironmentUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case.
func (uc *CheckEnvironmentUseCase) Execute(ctx context.Context, remote string, skipCleanCheck bool) error {
	if err := uc.GitRepo.CheckInstalled(ctx); err != nil {
		return err
	}
	inTree, err := uc.GitRepo.IsWorkTree(ctx)
	if err != nil {
		return fmt.Errorf("failed to check work tree: %w", err)
	}
	if !inTree {
		return fmt.Errorf("%w: not inside a git work tree", domain.ErrEnvironment)
	}
	if !skipCleanCheck {
		clean, err := uc.GitRepo.IsClean(ctx)
		if err != nil {
			return fmt.Errorf("failed to check work tree status: %w", err)
		}
		if !clean {
			return fmt.Errorf("%w: commit or stash your changes, or pass --skip-clean-check", domain.ErrDirtyWorkTree)
		}
	}
	remotes, err := uc.GitRepo.Remotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list remotes: %w", err)
	}
	for _, r := range remotes {
		if r == remote {
			return nil
		}
	}
	if len(remotes) == 0 {
		return fmt.Errorf("%w: %q (no remotes configured)", domain.ErrUnknownRemote, remote)
	}
	return fmt.Errorf("%w: %q (available: %s)", domain.ErrUnknownRemote, remote, strings.Join(remotes, ", "))
}
