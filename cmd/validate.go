package cmd

import (
	"fmt"

	"github.com/gnzdotmx/ytscribe/internal/config"
	"github.com/gnzdotmx/ytscribe/internal/utils"
	"github.com/gnzdotmx/ytscribe/internal/validator"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate environment setup",
	Long:  `Check if the required credentials and output directory are properly set up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.LogInfo("Validating environment...")

		// Validate environment variables for the YouTube APIs
		if err := validator.ValidateEnvVars(); err != nil {
			return fmt.Errorf("environment variables validation failed: %w", err)
		}
		utils.LogSuccess("Environment variables: OK")

		cfg, err := config.Load("")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Validate that the transcripts directory is writable
		if err := validator.ValidateOutputDir(cfg.OutputDir); err != nil {
			return fmt.Errorf("output directory validation failed: %w", err)
		}
		utils.LogSuccess("Output directory: OK")

		utils.LogSuccess("Environment validation completed successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
