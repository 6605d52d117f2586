package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/911218sky/tagship/internal/domain"
	"github.com/911218sky/tagship/internal/repository"
)

// FloatMajorUseCase force-moves the floating major tag onto the freshly
// published version tag, guarding the remote update with a compare-and-swap
// push keyed off the last observed remote hash.

type FloatMajorUseCase struct {
	GitRepo repository.GitRepository
	Log     *zap.Logger
}

// Execute runs the use case. versionTag is the tag the major tag should
// float onto.
func (uc *FloatMajorUseCase) Execute(ctx context.Context, remote, majorTag, versionTag string) error {
	// Local move is always forced: the whole point of the major tag is that
	// it travels.
	if err := uc.GitRepo.ForceTag(ctx, majorTag, "refs/tags/"+versionTag+"^{}"); err != nil {
		return fmt.Errorf("failed to move local tag %s: %w", majorTag, err)
	}
	remoteHash, ok, err := uc.GitRepo.RemoteTagHash(ctx, remote, majorTag)
	if err != nil {
		return fmt.Errorf("failed to query remote tag %s: %w", majorTag, err)
	}
	if !ok {
		// Nothing on the remote to protect, plain force is enough.
		if err := uc.GitRepo.PushTagForce(ctx, remote, majorTag); err != nil {
			return fmt.Errorf("failed to push tag %s to %s: %w", majorTag, remote, err)
		}
		return nil
	}
	uc.Log.Info("remote major tag present, pushing with lease",
		zap.String("tag", majorTag), zap.String("expected", remoteHash))
	if err := uc.GitRepo.PushTagWithLease(ctx, remote, majorTag, remoteHash); err != nil {
		return fmt.Errorf("%w: %s moved on %s after it was observed at %s (a concurrent publish likely won): %v",
			domain.ErrRaceDetected, majorTag, remote, remoteHash, err)
	}
	return nil
}
