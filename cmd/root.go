package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "solsite",
	Short: "Daily updater for the puzzle solutions site",
	Long: `solsite - Updater for a static site of daily puzzle solutions.

Given an 8-digit date code it inserts dated entries into each game's index
page, generates the daily solution pages, refreshes the homepage and the
"today" landing page, and commits the changed files on a date-named branch.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", ".", "site root directory")
	rootCmd.SilenceUsage = true
}

// getBaseDir returns the site root directory all operations run against
func getBaseDir() string {
	return baseDir
}
