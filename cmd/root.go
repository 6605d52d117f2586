package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tagship",
	Short: "A CLI tool for publishing floating-major release tags",
	Long: `tagship publishes a release tag and floats the matching major tag
(e.g. v1 -> v1.2.3) so consumers pinning owner/repo@v1 pick up the release.`,
}

func Execute() error {
	return rootCmd.Execute()
}
