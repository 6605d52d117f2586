package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/911218sky/tagship/internal/domain"
)

func TestCheckEnvironmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass with clean tree and known remote", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(true, nil)
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("Remotes", ctx).Return([]string{"origin", "upstream"}, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		require.NoError(t, uc.Execute(ctx, "origin", false))
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should fail when git is not invocable", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(domain.ErrEnvironment)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		err := uc.Execute(ctx, "origin", false)
		assert.True(t, errors.Is(err, domain.ErrEnvironment))
		gitRepo.AssertNotCalled(t, "IsWorkTree", ctx)
	})
	t.Run("Should fail outside a work tree", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(false, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		err := uc.Execute(ctx, "origin", false)
		assert.True(t, errors.Is(err, domain.ErrEnvironment))
	})
	t.Run("Should block on dirty tree", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(true, nil)
		gitRepo.On("IsClean", ctx).Return(false, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		err := uc.Execute(ctx, "origin", false)
		assert.True(t, errors.Is(err, domain.ErrDirtyWorkTree))
		assert.Contains(t, err.Error(), "--skip-clean-check")
	})
	t.Run("Should allow dirty tree when check is skipped", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(true, nil)
		gitRepo.On("Remotes", ctx).Return([]string{"origin"}, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		require.NoError(t, uc.Execute(ctx, "origin", true))
		gitRepo.AssertNotCalled(t, "IsClean", ctx)
	})
	t.Run("Should list available remotes on unknown remote", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(true, nil)
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("Remotes", ctx).Return([]string{"origin", "fork"}, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		err := uc.Execute(ctx, "upstream", false)
		assert.True(t, errors.Is(err, domain.ErrUnknownRemote))
		assert.Contains(t, err.Error(), "origin, fork")
	})
	t.Run("Should report when no remotes are configured", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("CheckInstalled", ctx).Return(nil)
		gitRepo.On("IsWorkTree", ctx).Return(true, nil)
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("Remotes", ctx).Return([]string{}, nil)
		uc := &CheckEnvironmentUseCase{GitRepo: gitRepo}
		err := uc.Execute(ctx, "origin", false)
		assert.True(t, errors.Is(err, domain.ErrUnknownRemote))
		assert.Contains(t, err.Error(), "no remotes configured")
	})
}
