package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/911218sky/tagship/internal/orchestrator"
)

// NewPublishCmd creates the publish command
func NewPublishCmd(c *container, orch *orchestrator.PublishOrchestrator) *cobra.Command {
	var (
		publishRemote        string
		publishMajorTag      string
		publishCommit        string
		publishSkipClean     bool
		publishDryRun        bool
		publishGithubRelease bool
	)
	cmd := &cobra.Command{
		Use:   "publish <version>",
		Short: "Publish a release tag and float the major tag",
		Long: `Publish a release tag and float the major tag.

This command runs the tag publication chain:
- Validates the version and derives the major tag (v1 from 1.2.3)
- Checks the work tree, the git environment and the remote
- Fetches tags so local refs mirror the remote
- Creates and pushes the annotated version tag (idempotent when it
  already exists at the target commit)
- Force-moves the major tag and pushes it with force-with-lease so a
  concurrent publisher is never silently overwritten

Every failure is terminal; refs already pushed are never rolled back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = c.log.Sync() }()
			cfg := orchestrator.PublishConfig{
				Version:        args[0],
				Remote:         publishRemote,
				MajorTag:       publishMajorTag,
				Commitish:      publishCommit,
				SkipCleanCheck: publishSkipClean,
				DryRun:         publishDryRun,
				GithubRelease:  publishGithubRelease,
			}
			pub, err := orch.Execute(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if publishDryRun {
				fmt.Fprintf(out, "dry run: would publish %s (%s -> %s) on %s\n",
					pub.Version.TagName(), pub.MajorTag, pub.Commit, pub.Remote)
				return nil
			}
			fmt.Fprintf(out, "published %s and floated %s to %s on %s\n",
				pub.Version.TagName(), pub.MajorTag, pub.Commit, pub.Remote)
			return nil
		},
	}

	cmd.Flags().StringVar(&publishRemote, "remote", c.cfg.Remote, "Remote to push tags to")
	cmd.Flags().StringVar(&publishMajorTag, "major-tag", "", "Override the derived major tag (default v<MAJOR>)")
	cmd.Flags().StringVar(&publishCommit, "commit", "HEAD", "Commit-ish to tag")
	cmd.Flags().BoolVar(&publishSkipClean, "skip-clean-check", false, "Allow publishing with uncommitted changes")
	cmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Validate and resolve without creating or pushing anything")
	cmd.Flags().
		BoolVar(&publishGithubRelease, "github-release", c.cfg.CreateGithubRelease, "Create a GitHub release for the published tag")
	return cmd
}
