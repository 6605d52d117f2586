package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type Config struct {
	Remote              string `mapstructure:"remote"`
	GithubToken         string `mapstructure:"github_token"`
	GithubOwner         string `mapstructure:"github_owner"`
	GithubRepo          string `mapstructure:"github_repo"`
	CreateGithubRelease bool   `mapstructure:"create_github_release"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Remote: "origin",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	// GitHub settings are optional - only validate what is provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	return nil
}

// ValidateForGitHubRelease validates that everything needed to create a
// GitHub release is present.
func (c *Config) ValidateForGitHubRelease() error {
	if c.GithubToken == "" {
		return fmt.Errorf("github_token is required to create a GitHub release")
	}
	if c.GithubOwner == "" || c.GithubRepo == "" {
		return fmt.Errorf("github_owner and github_repo are required to create a GitHub release")
	}
	return c.Validate()
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// LoadConfig reads .tagship.yaml from the working directory (when present)
// and the TAGSHIP_* environment, with GitHub Actions variables as fallbacks.
func LoadConfig(fs afero.Fs) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(".tagship")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TAGSHIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - it checks them in order
	if err := v.BindEnv("remote", "TAGSHIP_REMOTE"); err != nil {
		return nil, fmt.Errorf("failed to bind remote env: %w", err)
	}
	if err := v.BindEnv("github_token", "TAGSHIP_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := v.BindEnv("github_owner", "TAGSHIP_GITHUB_OWNER", "GITHUB_REPOSITORY_OWNER"); err != nil {
		return nil, fmt.Errorf("failed to bind github_owner env: %w", err)
	}
	if err := v.BindEnv("github_repo", "TAGSHIP_GITHUB_REPO"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repo env: %w", err)
	}
	if err := v.BindEnv("create_github_release", "TAGSHIP_CREATE_GITHUB_RELEASE"); err != nil {
		return nil, fmt.Errorf("failed to bind create_github_release env: %w", err)
	}
	if err := v.BindEnv("github_repository", "GITHUB_REPOSITORY"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repository env: %w", err)
	}
	defaults := DefaultConfig()
	v.SetDefault("remote", defaults.Remote)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	// GITHUB_REPOSITORY ("owner/repo", set by GitHub Actions) fills whatever
	// github_owner/github_repo left blank.
	if ownerRepo := v.GetString("github_repository"); ownerRepo != "" {
		if idx := strings.Index(ownerRepo, "/"); idx > 0 && idx < len(ownerRepo)-1 {
			if config.GithubOwner == "" {
				config.GithubOwner = ownerRepo[:idx]
			}
			if config.GithubRepo == "" {
				config.GithubRepo = ownerRepo[idx+1:]
			}
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
