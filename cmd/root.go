package cmd

import (
	"github.com/gnzdotmx/ytscribe/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// verbosityLevel is the command-line flag for setting the log level
	verbosityLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ytscribe",
	Short: "Download and archive transcripts for a YouTube playlist",
	Long: `ytscribe fetches the transcript of every video in a YouTube playlist
and stores a raw (timestamped JSON) and a clean (plain text) copy on disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set the global log level based on the flag
		logLevel := utils.LogLevelFromString(verbosityLevel)
		utils.SetLogLevel(logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global flags
	rootCmd.PersistentFlags().StringVarP(&verbosityLevel, "log-level", "l", "normal",
		"Set the logging verbosity level: quiet, normal, verbose, debug")
}
