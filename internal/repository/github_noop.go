package repository

import (
	"context"
	"errors"
	"fmt"
)

var ErrGithubTokenRequired = errors.New("github token is required for GitHub operations")

type githubNoopRepository struct {
	owner string
	repo  string
}

// NewGithubNoopRepository returns a GithubRepository that fails every
// operation with ErrGithubTokenRequired. Used when no token is configured.
func NewGithubNoopRepository(owner, repo string) GithubRepository {
	return &githubNoopRepository{owner: owner, repo: repo}
}

func (r *githubNoopRepository) CreateRelease(_ context.Context, tag, _ string, _ bool) (string, error) {
	return "", fmt.Errorf("%w: unable to create release %s for %s/%s",
		ErrGithubTokenRequired, tag, r.owner, r.repo)
}
