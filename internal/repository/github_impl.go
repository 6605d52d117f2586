package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"

	"github.com/911218sky/tagship/internal/config"
)

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubRepository creates a new GithubRepository with validation.
func NewGithubRepository(token, owner, repo string) (GithubRepository, error) {
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubRepository{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// CreateRelease publishes a release for a tag that already exists on the
// remote. Idempotent: when a release for the tag exists, its URL is returned.
func (r *githubRepository) CreateRelease(ctx context.Context, tag, name string, prerelease bool) (string, error) {
	if existing, _, err := r.client.Repositories.GetReleaseByTag(ctx, r.owner, r.repo, tag); err == nil && existing != nil {
		return existing.GetHTMLURL(), nil
	}
	release := &github.RepositoryRelease{
		TagName:    github.Ptr(tag),
		Name:       github.Ptr(name),
		Draft:      github.Ptr(false),
		Prerelease: github.Ptr(prerelease),
	}
	created, _, err := r.client.Repositories.CreateRelease(ctx, r.owner, r.repo, release)
	if err != nil {
		return "", fmt.Errorf("failed to create release for %s: %w", tag, err)
	}
	return created.GetHTMLURL(), nil
}
