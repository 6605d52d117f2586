package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository - implements ALL methods from the GitRepository interface
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) CheckInstalled(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockGitRepository) IsWorkTree(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) GitDir(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) IsClean(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) Remotes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *mockGitRepository) FetchTags(ctx context.Context, remote string) error {
	args := m.Called(ctx, remote)
	return args.Error(0)
}
func (m *mockGitRepository) ResolveCommit(ctx context.Context, commitish string) (string, error) {
	args := m.Called(ctx, commitish)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) ResolveTag(ctx context.Context, tag string) (string, bool, error) {
	args := m.Called(ctx, tag)
	return args.String(0), args.Bool(1), args.Error(2)
}
func (m *mockGitRepository) CreateAnnotatedTag(ctx context.Context, tag, commit, message string) error {
	args := m.Called(ctx, tag, commit, message)
	return args.Error(0)
}
func (m *mockGitRepository) ForceTag(ctx context.Context, tag, target string) error {
	args := m.Called(ctx, tag, target)
	return args.Error(0)
}
func (m *mockGitRepository) PushTag(ctx context.Context, remote, tag string) error {
	args := m.Called(ctx, remote, tag)
	return args.Error(0)
}
func (m *mockGitRepository) PushTagForce(ctx context.Context, remote, tag string) error {
	args := m.Called(ctx, remote, tag)
	return args.Error(0)
}
func (m *mockGitRepository) PushTagWithLease(ctx context.Context, remote, tag, expectedHash string) error {
	args := m.Called(ctx, remote, tag, expectedHash)
	return args.Error(0)
}
func (m *mockGitRepository) RemoteTagHash(ctx context.Context, remote, tag string) (string, bool, error) {
	args := m.Called(ctx, remote, tag)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Mock for GithubRepository
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) CreateRelease(ctx context.Context, tag, name string, prerelease bool) (string, error) {
	args := m.Called(ctx, tag, name, prerelease)
	return args.String(0), args.Error(1)
}

// Fake locker that records acquire/release calls
type fakeLocker struct {
	acquireErr error
	acquired   bool
	released   bool
}

func (l *fakeLocker) Acquire() error {
	if l.acquireErr != nil {
		return l.acquireErr
	}
	l.acquired = true
	return nil
}

func (l *fakeLocker) Release() error {
	l.released = true
	return nil
}
