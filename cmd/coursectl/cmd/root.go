package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursectl",
	Short: "Courseboard administration tool",
	Long: `coursectl manages a Courseboard installation.

Available commands:
  seed       Create a demo course with lessons and learners
  version    Print the version

Use "coursectl [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
