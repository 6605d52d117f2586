package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/911218sky/tagship/internal/config"
	"github.com/911218sky/tagship/internal/orchestrator"
	"github.com/911218sky/tagship/internal/repository"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	gitRepo repository.GitRepository
	ghRepo  repository.GithubRepository
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	// Every run gets an ID so interleaved CI logs stay attributable.
	log = log.With(zap.String("run_id", uuid.NewString()))

	gitRepo := repository.NewGitRepository(".", log)

	// GitHub repository is optional - real client only when a token is provided
	var ghRepo repository.GithubRepository
	if cfg.GithubToken != "" && cfg.GithubOwner != "" && cfg.GithubRepo != "" {
		ghRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
		if err != nil {
			return nil, err
		}
	} else {
		ghRepo = repository.NewGithubNoopRepository(cfg.GithubOwner, cfg.GithubRepo)
	}

	return &container{
		cfg:     cfg,
		log:     log,
		gitRepo: gitRepo,
		ghRepo:  ghRepo,
	}, nil
}

func newLogger() (*zap.Logger, error) {
	logCfg := zap.NewDevelopmentConfig()
	logCfg.DisableStacktrace = true
	return logCfg.Build()
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	orch := orchestrator.NewPublishOrchestrator(c.gitRepo, c.ghRepo, c.log)
	rootCmd.AddCommand(NewPublishCmd(c, orch))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
