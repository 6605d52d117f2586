package repository

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/911218sky/tagship/internal/domain"
)

const lockFileName = "tagship.lock"

// PublishLock serializes publish runs against the same repository on the
// same machine. Cross-machine races are left to the force-with-lease push.
type PublishLock struct {
	fl *flock.Flock
}

// NewPublishLock creates a lock rooted in the repository's git directory.
func NewPublishLock(gitDir string) *PublishLock {
	return &PublishLock{fl: flock.New(filepath.Join(gitDir, lockFileName))}
}

// Acquire takes the lock without blocking. A held lock means another publish
// is already running and this one must not proceed.
func (l *PublishLock) Acquire() error {
	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire publish lock %s: %w", l.fl.Path(), err)
	}
	if !locked {
		return fmt.Errorf("%w: lock %s is held", domain.ErrPublishLocked, l.fl.Path())
	}
	return nil
}

// Release releases the lock. Safe to call when the lock was never acquired.
func (l *PublishLock) Release() error {
	return l.fl.Unlock()
}
